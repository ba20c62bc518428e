// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package track provides the keyframe container shared by every VMD track
// kind: an ordered sequence of keys, a stable sort by frame, and the
// upper-bound-then-step-back neighbour lookup spec.md §4.3 describes.
package track

import "sort"

// Keyed is implemented by any keyframe type so Track can sort and search it
// without knowing its payload.
type Keyed interface {
	KeyFrame() uint32
}

// Track is a densely-owned, frame-ordered sequence of keys.
type Track[K Keyed] struct {
	Keys []K
}

// Add appends a key. Sort must be called before Search sees it.
func (t *Track[K]) Add(key K) { t.Keys = append(t.Keys, key) }

// Len returns the number of keys.
func (t *Track[K]) Len() int { return len(t.Keys) }

// Sort stably sorts the keys by frame.
func (t *Track[K]) Sort() {
	sort.SliceStable(t.Keys, func(i, j int) bool {
		return t.Keys[i].KeyFrame() < t.Keys[j].KeyFrame()
	})
}

// Search returns the pair of keys bracketing frame:
//   - no keys: the zero value of K for both, ok=false;
//   - one key: that key for both;
//   - frame at or before the first key: the first key for both;
//   - frame at or after the last key: the last key for both;
//   - frame exactly matching some key's frame: that key for both;
//   - otherwise: the key immediately before, and the first key whose frame
//     is strictly greater than frame (the "upper bound, step back one" rule).
func (t *Track[K]) Search(frame uint32) (k0, k1 K, ok bool) {
	n := len(t.Keys)
	if n == 0 {
		return k0, k1, false
	}
	if n == 1 {
		return t.Keys[0], t.Keys[0], true
	}
	if frame <= t.Keys[0].KeyFrame() {
		return t.Keys[0], t.Keys[0], true
	}
	if frame >= t.Keys[n-1].KeyFrame() {
		return t.Keys[n-1], t.Keys[n-1], true
	}

	i := sort.Search(n, func(i int) bool { return t.Keys[i].KeyFrame() >= frame })
	if t.Keys[i].KeyFrame() == frame {
		return t.Keys[i], t.Keys[i], true
	}
	return t.Keys[i-1], t.Keys[i], true
}
