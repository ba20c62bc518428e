// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package track

import "testing"

type testKey struct {
	Frame uint32
	Value int
}

func (k testKey) KeyFrame() uint32 { return k.Frame }

func TestSearchEmpty(t *testing.T) {
	var tr Track[testKey]
	if _, _, ok := tr.Search(5); ok {
		t.Error("Search on empty track should return ok=false")
	}
}

func TestSearchExactFrames(t *testing.T) {
	var tr Track[testKey]
	for _, f := range []uint32{10, 20, 30} {
		tr.Add(testKey{Frame: f, Value: int(f)})
	}
	tr.Sort()

	for _, f := range []uint32{10, 20, 30} {
		k0, k1, ok := tr.Search(f)
		if !ok || k0.Frame != f || k1.Frame != f {
			t.Errorf("Search(%d) = (%+v, %+v, %v), want exact match", f, k0, k1, ok)
		}
	}
}

func TestSearchBeforeAndAfter(t *testing.T) {
	var tr Track[testKey]
	tr.Add(testKey{Frame: 10})
	tr.Add(testKey{Frame: 20})
	tr.Add(testKey{Frame: 30})
	tr.Sort()

	k0, k1, _ := tr.Search(5)
	if k0.Frame != 10 || k1.Frame != 10 {
		t.Errorf("Search(5) = (%d, %d), want (10, 10)", k0.Frame, k1.Frame)
	}

	k0, k1, _ = tr.Search(35)
	if k0.Frame != 30 || k1.Frame != 30 {
		t.Errorf("Search(35) = (%d, %d), want (30, 30)", k0.Frame, k1.Frame)
	}
}

func TestSearchBetween(t *testing.T) {
	var tr Track[testKey]
	tr.Add(testKey{Frame: 10})
	tr.Add(testKey{Frame: 20})
	tr.Sort()

	k0, k1, ok := tr.Search(15)
	if !ok || k0.Frame != 10 || k1.Frame != 20 {
		t.Errorf("Search(15) = (%d, %d, %v), want (10, 20, true)", k0.Frame, k1.Frame, ok)
	}
}

func TestSearchSingleKey(t *testing.T) {
	var tr Track[testKey]
	tr.Add(testKey{Frame: 7})
	tr.Sort()

	k0, k1, ok := tr.Search(100)
	if !ok || k0.Frame != 7 || k1.Frame != 7 {
		t.Errorf("Search with single key = (%d, %d, %v), want (7, 7, true)", k0.Frame, k1.Frame, ok)
	}
}

func TestInsertThenResort(t *testing.T) {
	var tr Track[testKey]
	tr.Add(testKey{Frame: 30})
	tr.Add(testKey{Frame: 10})
	tr.Sort()

	tr.Add(testKey{Frame: 20})
	tr.Sort()

	k0, k1, _ := tr.Search(15)
	if k0.Frame != 10 || k1.Frame != 20 {
		t.Errorf("Search(15) after insert = (%d, %d), want (10, 20)", k0.Frame, k1.Frame)
	}
}
