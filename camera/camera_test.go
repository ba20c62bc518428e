// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/Pachira762/MiniMmdTools/bezier"
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/vmd"
)

func linearKey(frame uint32, x float32) vmd.CameraKey {
	return vmd.CameraKey{
		Frame:     frame,
		Distance:  x,
		Position:  geom.Vec3{X: x, Y: x, Z: x},
		Rotation:  geom.Vec3{X: x, Y: x, Z: x},
		IX:        bezier.Default,
		IY:        bezier.Default,
		IZ:        bezier.Default,
		IR:        bezier.Default,
		ID:        bezier.Default,
		IV:        bezier.Default,
		ViewAngle: int32(x),
	}
}

func TestEvaluateEmptySequence(t *testing.T) {
	s := BuildSequence(nil)
	got := s.Evaluate(0, 0)
	if got != (Property{}) {
		t.Errorf("empty sequence Evaluate = %+v, want zero value", got)
	}
}

func TestEvaluateSingleKey(t *testing.T) {
	s := BuildSequence([]vmd.CameraKey{linearKey(10, 5)})
	got := s.Evaluate(100, 0.5)
	want := Property{
		Position:  geom.Vec3{X: 5, Y: 5, Z: 5},
		Rotation:  geom.Vec3{X: 5, Y: 5, Z: 5},
		Distance:  5,
		ViewAngle: 5,
	}
	if got != want {
		t.Errorf("single key Evaluate = %+v, want %+v", got, want)
	}
}

func TestEvaluateHardCutHoldsEarlierKey(t *testing.T) {
	keys := []vmd.CameraKey{
		linearKey(10, 0),
		linearKey(11, 100),
		linearKey(20, 200),
	}
	s := BuildSequence(keys)

	if s.track.Keys[0].Cut != 0 || s.track.Keys[1].Cut != 1 || s.track.Keys[2].Cut != 1 {
		t.Fatalf("cut assignment = %d,%d,%d, want 0,1,1",
			s.track.Keys[0].Cut, s.track.Keys[1].Cut, s.track.Keys[2].Cut)
	}

	// Sampling between frame 10 (cut 0) and frame 11 (cut 1) must hold the
	// earlier key's values rather than blend across the cut.
	got := s.Evaluate(10, 0.9)
	if got.Distance != 0 {
		t.Errorf("Distance across cut = %v, want 0 (held at earlier key)", got.Distance)
	}
}

func TestEvaluateInterpolatesBetweenKeys(t *testing.T) {
	keys := []vmd.CameraKey{
		linearKey(0, 0),
		linearKey(10, 100),
	}
	s := BuildSequence(keys)

	got := s.Evaluate(5, 0)
	if got.Distance <= 0 || got.Distance >= 100 {
		t.Errorf("Distance at midpoint = %v, want strictly between 0 and 100", got.Distance)
	}

	atStart := s.Evaluate(0, 0)
	if atStart.Distance != 0 {
		t.Errorf("Distance at start key = %v, want 0", atStart.Distance)
	}

	atEnd := s.Evaluate(10, 0)
	if atEnd.Distance != 100 {
		t.Errorf("Distance at end key = %v, want 100", atEnd.Distance)
	}
}

func TestEvaluateClampsPastLastKey(t *testing.T) {
	keys := []vmd.CameraKey{
		linearKey(0, 0),
		linearKey(10, 100),
	}
	s := BuildSequence(keys)

	got := s.Evaluate(999, 0)
	if got.Distance != 100 {
		t.Errorf("Distance past last key = %v, want 100", got.Distance)
	}
}
