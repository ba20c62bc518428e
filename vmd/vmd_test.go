// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vmd

import (
	"errors"
	"testing"

	"github.com/Pachira762/MiniMmdTools/bezier"
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/mmderr"
	"github.com/Pachira762/MiniMmdTools/track"
)

func empty() *Vmd {
	return &Vmd{
		Name:         "model",
		MotionTracks: map[string]*track.Track[MotionKey]{},
		MorphTracks:  map[string]*track.Track[MorphKey]{},
		IKTracks:     map[string]*track.Track[IKKey]{},
	}
}

func TestEmptyRoundTripSize(t *testing.T) {
	v := empty()
	v.Name = ""
	buf := Encode(v)

	// 30-byte magic + 20-byte model name + 6 four-byte zero counts (motion,
	// morph, camera, light, shadow, extension) = 74 bytes.
	if len(buf) != 74 {
		t.Fatalf("empty vmd size = %d, want 74", len(buf))
	}

	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Name != "" {
		t.Errorf("Name = %q, want empty", got.Name)
	}
}

func TestMotionRoundTrip(t *testing.T) {
	v := empty()
	tr := &track.Track[MotionKey]{}
	tr.Add(MotionKey{
		Frame:       10,
		Position:    geom.Vec3{X: 1, Y: 2, Z: 3},
		Orientation: geom.Vec4{W: 1},
		IX:          bezier.Default,
		IY:          bezier.Default,
		IZ:          bezier.Default,
		IR:          bezier.Default,
	})
	v.MotionTracks["センター"] = tr

	buf := Encode(v)
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	gotTr, ok := got.MotionTracks["センター"]
	if !ok || gotTr.Len() != 1 {
		t.Fatalf("motion track missing or wrong length")
	}
	key := gotTr.Keys[0]
	if !key.Position.Eq(geom.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("position = %v", key.Position)
	}
	if key.IsPhysics {
		t.Errorf("IsPhysics = true, want false")
	}
}

func TestMotionPhysicsFlagBytes(t *testing.T) {
	// Locate the 64-byte interpolation table: header(50) + count(4) +
	// name(15) + frame(4) + position(12) + orientation(16) = 101.
	const tableOffset = 50 + 4 + 15 + 4 + 12 + 16

	v := empty()
	tr := &track.Track[MotionKey]{}
	tr.Add(MotionKey{Frame: 0, IX: bezier.Default, IY: bezier.Default, IZ: bezier.Default, IR: bezier.Default, IsPhysics: true})
	v.MotionTracks["bone"] = tr

	buf := Encode(v)
	if buf[tableOffset+2] != 0x63 || buf[tableOffset+3] != 0x0f {
		t.Errorf("bytes[2]/[3] for IsPhysics=true = %#x %#x, want 0x63 0x0f", buf[tableOffset+2], buf[tableOffset+3])
	}
}

func TestMotionNonPhysicsLeavesFillerBytesUntouched(t *testing.T) {
	const tableOffset = 50 + 4 + 15 + 4 + 12 + 16

	v := empty()
	tr := &track.Track[MotionKey]{}
	tr.Add(MotionKey{Frame: 0, IX: bezier.Default, IY: bezier.Default, IZ: bezier.Default, IR: bezier.Default, IsPhysics: false})
	v.MotionTracks["bone"] = tr

	buf := Encode(v)
	// A freshly built (non-physics) key falls back to defaultInterpTable,
	// whose bytes[2]/[3] are 20, 107 - not the 0x63, 0x0f physics marker.
	if buf[tableOffset+2] != 20 || buf[tableOffset+3] != 107 {
		t.Errorf("physics-off filler bytes = %d %d, want 20 107", buf[tableOffset+2], buf[tableOffset+3])
	}

	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// isPhysicsFlag reads physics off of only the literal (0x63, 0x0f) pair;
	// any other byte pair, including the plain default filler, decodes as
	// physics-on. A non-physics key only survives round trip as such if its
	// original wire bytes already carried that exact sentinel.
	if !got.MotionTracks["bone"].Keys[0].IsPhysics {
		t.Errorf("IsPhysics = false, want true (default filler isn't the physics-off sentinel)")
	}
}

func TestMorphDropRule(t *testing.T) {
	v := empty()
	tr := &track.Track[MorphKey]{}
	tr.Add(MorphKey{Frame: 0, Value: 0})
	v.MorphTracks["unused"] = tr

	buf := Encode(v)
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := got.MorphTracks["unused"]; ok {
		t.Errorf("single zero-value frame-0 morph track should be dropped on decode")
	}
}

func TestExtensionKeysRoundTrip(t *testing.T) {
	v := empty()
	v.VisibilityTrack.Add(VisibilityKey{Frame: 0, Visible: true})
	v.VisibilityTrack.Add(VisibilityKey{Frame: 30, Visible: false})
	ikTr := &track.Track[IKKey]{}
	ikTr.Add(IKKey{Frame: 0, Enable: true})
	v.IKTracks["leftleg"] = ikTr

	buf := Encode(v)
	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.VisibilityTrack.Len() != 2 {
		t.Fatalf("visibility track length = %d, want 2", got.VisibilityTrack.Len())
	}
	if got.IKTracks["leftleg"].Keys[0].Enable != true {
		t.Errorf("ik enable not preserved")
	}
}

func TestDecodeBadMagic(t *testing.T) {
	buf := Encode(empty())
	buf[0] = 0xff
	if _, err := Decode(buf); !errors.Is(err, mmderr.ErrBadMagic) {
		t.Errorf("Decode with bad magic = %v, want ErrBadMagic", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	buf := Encode(empty())
	if _, err := Decode(buf[:10]); !errors.Is(err, mmderr.ErrTruncated) {
		t.Errorf("Decode truncated = %v, want ErrTruncated", err)
	}
}
