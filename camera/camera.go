// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package camera evaluates a VMD camera track into a sampled property at
// an arbitrary frame and subframe, applying cut-shot semantics: two
// consecutive integer frames (f, f+1) mark a hard cut, and sampling across
// a cut holds the earlier key's values instead of blending toward the
// next shot.
package camera

import (
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/track"
	"github.com/Pachira762/MiniMmdTools/vmd"
)

// Key is one camera keyframe with its cut number attached.
type Key struct {
	vmd.CameraKey
	Cut int32
}

func (k Key) KeyFrame() uint32 { return k.Frame }

// Sequence is a cut-annotated, frame-ordered camera track ready to
// evaluate.
type Sequence struct {
	track track.Track[Key]
}

// BuildSequence assigns cut numbers to keys and returns a ready-to-evaluate
// Sequence. keys is sorted by frame internally; the caller's slice is not
// modified. The first key starts at cut 0; every later key whose frame is
// exactly one more than the previous key's frame starts a new cut, and
// every other key continues the previous one.
func BuildSequence(keys []vmd.CameraKey) *Sequence {
	sorted := append([]vmd.CameraKey(nil), keys...)
	tr := &track.Track[vmd.CameraKey]{Keys: sorted}
	tr.Sort()

	s := &Sequence{}
	var cut int32
	for i, k := range tr.Keys {
		if i > 0 && k.Frame == tr.Keys[i-1].Frame+1 {
			cut++
		}
		s.track.Add(Key{CameraKey: k, Cut: cut})
	}
	return s
}

// Property is a fully resolved camera state at one point in time.
type Property struct {
	Position     geom.Vec3
	Rotation     geom.Vec3
	Distance     float32
	ViewAngle    float32
	Orthographic bool
}

// Evaluate samples the sequence at frame plus a fractional subframe
// offset in [0, 1). Each channel is warped through the destination key's
// Bézier curve before a plain linear interpolation between the two
// bracketing keys; camera rotation is Euler lerp, never quaternion slerp,
// matching MMD's own camera evaluator. Evaluating an empty sequence
// returns the zero Property.
func (s *Sequence) Evaluate(frame int32, subframe float32) Property {
	if len(s.track.Keys) == 0 {
		return Property{}
	}

	k0, k1, _ := s.track.Search(clampFrame(frame))
	if k0.Cut != k1.Cut {
		k1 = k0
	}

	t := normalizedTime(k0, k1, frame, subframe)

	return Property{
		Position: geom.Vec3{
			X: geom.Lerp(k0.Position.X, k1.Position.X, k1.IX.Eval(t)),
			Y: geom.Lerp(k0.Position.Y, k1.Position.Y, k1.IY.Eval(t)),
			Z: geom.Lerp(k0.Position.Z, k1.Position.Z, k1.IZ.Eval(t)),
		},
		Rotation: lerpEuler(k0.Rotation, k1.Rotation, k1.IR.Eval(t)),
		Distance: geom.Lerp(k0.Distance, k1.Distance, k1.ID.Eval(t)),
		ViewAngle: geom.Lerp(
			float32(k0.ViewAngle), float32(k1.ViewAngle), k1.IV.Eval(t),
		),
		Orthographic: k1.Orthographic,
	}
}

func lerpEuler(a, b geom.Vec3, t float32) geom.Vec3 {
	return geom.Vec3{
		X: geom.Lerp(a.X, b.X, t),
		Y: geom.Lerp(a.Y, b.Y, t),
		Z: geom.Lerp(a.Z, b.Z, t),
	}
}

// clampFrame guards against a negative frame, which Search has no defined
// behavior for since VMD frames are unsigned.
func clampFrame(frame int32) uint32 {
	if frame < 0 {
		return 0
	}
	return uint32(frame)
}

// normalizedTime returns the fraction of the way from k0 to k1 that frame
// plus subframe represents, clamped to [0, 1]. Two keys sharing a frame
// (a cut boundary holding k0 twice) evaluate to 0, since there is nothing
// to interpolate toward.
func normalizedTime(k0, k1 Key, frame int32, subframe float32) float32 {
	if k0.Frame == k1.Frame {
		return 0
	}
	span := float32(k1.Frame - k0.Frame)
	t := (float32(frame-int32(k0.Frame)) + subframe) / span
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
