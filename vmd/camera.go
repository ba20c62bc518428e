// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vmd

import (
	"github.com/Pachira762/MiniMmdTools/bezier"
	"github.com/Pachira762/MiniMmdTools/geom"
)

// CameraKey is one keyframe of the single camera track: a distance from
// the look-at point, a position and a Euler rotation, one Bézier curve per
// channel (X/Y/Z position, rotation, distance, field of view), a view
// angle and an orthographic flag.
//
// This is the wire-level record; cut-shot semantics (which pair of keys a
// given frame should sample, and where a hard cut holds the earlier key
// instead of blending) are built on top of a sequence of these by the
// camera package, not here.
type CameraKey struct {
	Frame    uint32
	Distance float32
	Position geom.Vec3
	Rotation geom.Vec3

	IX, IY, IZ, IR, ID, IV bezier.Curve

	ViewAngle    int32
	Orthographic bool
}

func (k CameraKey) KeyFrame() uint32 { return k.Frame }

func (d *decoder) decodeCameras() error {
	r := d.r
	n := r.Count(1)

	keys := make([]CameraKey, n)
	for i := range keys {
		k := &keys[i]
		k.Frame = r.U32()
		k.Distance = r.F32()
		k.Position = readVec3(r)
		k.Rotation = readVec3(r)
		k.IX = readByteCurve(r)
		k.IY = readByteCurve(r)
		k.IZ = readByteCurve(r)
		k.IR = readByteCurve(r)
		k.ID = readByteCurve(r)
		k.IV = readByteCurve(r)
		k.ViewAngle = r.I32()
		k.Orthographic = r.Bool()
	}
	for _, k := range keys {
		d.vmd.CameraTrack.Add(k)
	}
	d.vmd.CameraTrack.Sort()
	return nil
}

func (e *encoder) encodeCameras() {
	w := e.w
	w.Count(len(e.vmd.CameraTrack.Keys))
	for _, k := range e.vmd.CameraTrack.Keys {
		w.U32(k.Frame)
		w.F32(k.Distance)
		writeVec3(w, k.Position)
		writeVec3(w, k.Rotation)
		writeByteCurve(w, k.IX)
		writeByteCurve(w, k.IY)
		writeByteCurve(w, k.IZ)
		writeByteCurve(w, k.IR)
		writeByteCurve(w, k.ID)
		writeByteCurve(w, k.IV)
		w.I32(k.ViewAngle)
		w.Bool(k.Orthographic)
	}
}
