// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vmd

// ShadowKey is one keyframe of the single ground shadow track.
type ShadowKey struct {
	Frame    uint32
	Type     int8
	Distance float32
}

func (k ShadowKey) KeyFrame() uint32 { return k.Frame }

func (d *decoder) decodeShadows() error {
	r := d.r
	n := r.Count(1)

	keys := make([]ShadowKey, n)
	for i := range keys {
		keys[i].Frame = r.U32()
		keys[i].Type = r.I8()
		keys[i].Distance = r.F32()
	}
	for _, k := range keys {
		d.vmd.ShadowTrack.Add(k)
	}
	d.vmd.ShadowTrack.Sort()
	return nil
}

func (e *encoder) encodeShadows() {
	w := e.w
	w.Count(len(e.vmd.ShadowTrack.Keys))
	for _, k := range e.vmd.ShadowTrack.Keys {
		w.U32(k.Frame)
		w.I8(k.Type)
		w.F32(k.Distance)
	}
}
