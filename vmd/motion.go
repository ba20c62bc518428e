// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vmd

import (
	"github.com/Pachira762/MiniMmdTools/bezier"
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/sjis"
	"github.com/Pachira762/MiniMmdTools/track"
)

// MotionKey is one keyframe of a single bone's motion track: a position
// and orientation delta plus a per-axis Bézier curve controlling how the
// channel interpolates from the previous key.
type MotionKey struct {
	Frame       uint32
	Position    geom.Vec3
	Orientation geom.Vec4

	IX, IY, IZ, IR bezier.Curve
	IsPhysics      bool

	// raw is the 64-byte packed table as last seen on the wire, kept so
	// Encode can reproduce its filler bytes exactly on an untouched key.
	raw [interpTableSize]byte
}

func (k MotionKey) KeyFrame() uint32 { return k.Frame }

func (d *decoder) decodeMotions() error {
	r := d.r
	n := int(r.U32())

	for i := 0; i < n; i++ {
		name := r.TextFixed(trackNameWidth, 1, sjis.Decode)

		var k MotionKey
		k.Frame = r.U32()
		k.Position = readVec3(r)
		k.Orientation = readVec4(r)

		var raw [interpTableSize]byte
		copy(raw[:], r.Raw(interpTableSize))
		k.raw = raw
		k.IX = unpackChannel(raw, offsetX)
		k.IY = unpackChannel(raw, offsetY)
		k.IZ = unpackChannel(raw, offsetZ)
		k.IR = unpackChannel(raw, offsetR)
		k.IsPhysics = isPhysicsFlag(raw)

		tr := d.vmd.MotionTracks[name]
		if tr == nil {
			tr = &track.Track[MotionKey]{}
			d.vmd.MotionTracks[name] = tr
		}
		tr.Add(k)
	}

	for _, tr := range d.vmd.MotionTracks {
		tr.Sort()
	}
	return nil
}

func (e *encoder) encodeMotions() {
	w := e.w
	names := sortedNames(e.vmd.MotionTracks)

	var total uint32
	for _, name := range names {
		total += uint32(e.vmd.MotionTracks[name].Len())
	}
	w.U32(total)

	for _, name := range names {
		for _, k := range e.vmd.MotionTracks[name].Keys {
			w.TextFixed(name, trackNameWidth, 1, sjis.Encode)
			w.U32(k.Frame)
			writeVec3(w, k.Position)
			writeVec4(w, k.Orientation)

			base := k.raw
			if base == ([interpTableSize]byte{}) {
				base = defaultInterpTable
			}
			raw := packInterpTable(base, k.IX, k.IY, k.IZ, k.IR, k.IsPhysics)
			w.Raw(raw[:])
		}
	}
}
