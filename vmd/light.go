// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vmd

import "github.com/Pachira762/MiniMmdTools/geom"

// LightKey is one keyframe of the single directional light track.
type LightKey struct {
	Frame    uint32
	Color    geom.Vec3
	Position geom.Vec3
}

func (k LightKey) KeyFrame() uint32 { return k.Frame }

func (d *decoder) decodeLights() error {
	r := d.r
	n := r.Count(1)

	keys := make([]LightKey, n)
	for i := range keys {
		keys[i].Frame = r.U32()
		keys[i].Color = readVec3(r)
		keys[i].Position = readVec3(r)
	}
	for _, k := range keys {
		d.vmd.LightTrack.Add(k)
	}
	d.vmd.LightTrack.Sort()
	return nil
}

func (e *encoder) encodeLights() {
	w := e.w
	w.Count(len(e.vmd.LightTrack.Keys))
	for _, k := range e.vmd.LightTrack.Keys {
		w.U32(k.Frame)
		writeVec3(w, k.Color)
		writeVec3(w, k.Position)
	}
}
