// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package vmd decodes and encodes the VMD motion format: bone motion,
// morph, camera, light, shadow and visibility/IK-toggle tracks, each a
// frame-keyed sequence grouped by name where the format allows more than
// one named track (bone motion, morph, IK enable).
//
// VMD is fixed-width: every string field is a null-padded Shift-JIS byte
// run of a fixed length, and every numeric field has a fixed size, unlike
// PMX's per-section variable index width. The one packed field is each
// motion key's 64-byte interpolation table; see interp.go for how this
// package carries it across a decode/encode round trip.
package vmd

import (
	"sort"

	"github.com/Pachira762/MiniMmdTools/binio"
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/mmderr"
	"github.com/Pachira762/MiniMmdTools/sjis"
	"github.com/Pachira762/MiniMmdTools/track"
)

const modelNameWidth = 20
const trackNameWidth = 15
const ikNameWidth = 20

var magic = pad("Vocaloid Motion Data 0002", 30)

func pad(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	return b
}

// Vmd holds one fully decoded motion file. Motion, morph and IK tracks are
// grouped by the bone/morph/IK-chain name they target; camera, light,
// shadow and visibility each have exactly one track.
type Vmd struct {
	Name string

	MotionTracks map[string]*track.Track[MotionKey]
	MorphTracks  map[string]*track.Track[MorphKey]

	CameraTrack     track.Track[CameraKey]
	LightTrack      track.Track[LightKey]
	ShadowTrack     track.Track[ShadowKey]
	VisibilityTrack track.Track[VisibilityKey]
	IKTracks        map[string]*track.Track[IKKey]
}

type decoder struct {
	r   *binio.Reader
	vmd *Vmd
}

// Decode parses buf into a Vmd. Phases run in file order and stop at the
// first failure: header, motions, morphs, camera, light, shadow, then the
// combined visibility/IK extension-key section.
func Decode(buf []byte) (*Vmd, error) {
	d := &decoder{r: binio.NewReader(buf), vmd: &Vmd{
		MotionTracks: map[string]*track.Track[MotionKey]{},
		MorphTracks:  map[string]*track.Track[MorphKey]{},
		IKTracks:     map[string]*track.Track[IKKey]{},
	}}

	steps := []func() error{
		d.decodeHeader,
		d.decodeMotions,
		d.decodeMorphs,
		d.decodeCameras,
		d.decodeLights,
		d.decodeShadows,
		d.decodeExtensionKeys,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	if d.r.Overflown() {
		return nil, mmderr.ErrTruncated
	}
	if !d.r.AtEOF() {
		return nil, mmderr.ErrTrailingData
	}
	return d.vmd, nil
}

func (d *decoder) decodeHeader() error {
	r := d.r
	if !r.Equal(magic) {
		if r.Overflown() {
			return mmderr.ErrTruncated
		}
		return mmderr.ErrBadMagic
	}
	d.vmd.Name = r.TextFixed(modelNameWidth, 1, sjis.Decode)
	if r.Overflown() {
		return mmderr.ErrTruncated
	}
	return nil
}

type encoder struct {
	w   *binio.Writer
	vmd *Vmd
}

// Encode serializes vmd. Motion and morph tracks are emitted grouped by
// name in ascending Go string order (sortedNames). For ASCII names this is
// the order a C++ std::map of Shift-JIS names produces; for non-ASCII names
// the two orders can differ.
func Encode(vmd *Vmd) []byte {
	e := &encoder{w: binio.NewWriter(), vmd: vmd}
	e.encodeHeader()
	e.encodeMotions()
	e.encodeMorphs()
	e.encodeCameras()
	e.encodeLights()
	e.encodeShadows()
	e.encodeExtensionKeys()
	return e.w.Bytes()
}

func (e *encoder) encodeHeader() {
	w := e.w
	w.Raw(magic)
	w.TextFixed(e.vmd.Name, modelNameWidth, 1, sjis.Encode)
}

func readVec3(r *binio.Reader) geom.Vec3 { return geom.Vec3{X: r.F32(), Y: r.F32(), Z: r.F32()} }
func readVec4(r *binio.Reader) geom.Vec4 {
	return geom.Vec4{X: r.F32(), Y: r.F32(), Z: r.F32(), W: r.F32()}
}
func writeVec3(w *binio.Writer, v geom.Vec3) { w.F32(v.X); w.F32(v.Y); w.F32(v.Z) }
func writeVec4(w *binio.Writer, v geom.Vec4) {
	w.F32(v.X)
	w.F32(v.Y)
	w.F32(v.Z)
	w.F32(v.W)
}

// sortedNames returns m's keys in ascending order, so a map of named
// tracks encodes deterministically.
func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
