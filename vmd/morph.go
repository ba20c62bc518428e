// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vmd

import (
	"github.com/Pachira762/MiniMmdTools/sjis"
	"github.com/Pachira762/MiniMmdTools/track"
)

// MorphKey is one keyframe of a single morph's weight track.
type MorphKey struct {
	Frame uint32
	Value float32
}

func (k MorphKey) KeyFrame() uint32 { return k.Frame }

func (d *decoder) decodeMorphs() error {
	r := d.r
	n := int(r.U32())

	for i := 0; i < n; i++ {
		name := r.TextFixed(trackNameWidth, 1, sjis.Decode)

		var k MorphKey
		k.Frame = r.U32()
		k.Value = r.F32()

		tr := d.vmd.MorphTracks[name]
		if tr == nil {
			tr = &track.Track[MorphKey]{}
			d.vmd.MorphTracks[name] = tr
		}
		tr.Add(k)
	}

	// A morph that never actually moves - its only key sits at frame 0
	// with value 0 - is MMD's serialization of "not used"; drop it rather
	// than keep a phantom track with nothing to interpolate.
	for name, tr := range d.vmd.MorphTracks {
		if len(tr.Keys) == 1 && tr.Keys[0].Frame == 0 && tr.Keys[0].Value == 0 {
			delete(d.vmd.MorphTracks, name)
			continue
		}
		tr.Sort()
	}
	return nil
}

func (e *encoder) encodeMorphs() {
	w := e.w
	names := sortedNames(e.vmd.MorphTracks)

	var total uint32
	for _, name := range names {
		total += uint32(e.vmd.MorphTracks[name].Len())
	}
	w.U32(total)

	for _, name := range names {
		for _, k := range e.vmd.MorphTracks[name].Keys {
			w.TextFixed(name, trackNameWidth, 1, sjis.Encode)
			w.U32(k.Frame)
			w.F32(k.Value)
		}
	}
}
