// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vmd

import (
	"sort"

	"github.com/Pachira762/MiniMmdTools/sjis"
	"github.com/Pachira762/MiniMmdTools/track"
)

// VisibilityKey is one keyframe of the single model-visibility track.
type VisibilityKey struct {
	Frame   uint32
	Visible bool
}

func (k VisibilityKey) KeyFrame() uint32 { return k.Frame }

// IKKey is one keyframe of a single IK chain's enable/disable track.
type IKKey struct {
	Frame  uint32
	Enable bool
}

func (k IKKey) KeyFrame() uint32 { return k.Frame }

// decodeExtensionKeys reads VMD's combined "extension" section: each
// record bundles one visibility toggle with zero or more named IK
// enable/disable toggles that all share its frame. This package expands
// that per-frame bundle into the separate VisibilityTrack and IKTracks
// the rest of the API works with.
func (d *decoder) decodeExtensionKeys() error {
	r := d.r
	n := int(r.U32())

	for i := 0; i < n; i++ {
		frame := r.U32()
		visible := r.Bool()
		d.vmd.VisibilityTrack.Add(VisibilityKey{Frame: frame, Visible: visible})

		numIK := int(r.U32())
		for j := 0; j < numIK; j++ {
			name := r.TextFixed(ikNameWidth, 1, sjis.Decode)
			enable := r.Bool()

			tr := d.vmd.IKTracks[name]
			if tr == nil {
				tr = &track.Track[IKKey]{}
				d.vmd.IKTracks[name] = tr
			}
			tr.Add(IKKey{Frame: frame, Enable: enable})
		}
	}

	d.vmd.VisibilityTrack.Sort()
	for _, tr := range d.vmd.IKTracks {
		tr.Sort()
	}
	return nil
}

type extensionKey struct {
	visible bool
	iks     map[string]bool
}

// encodeExtensionKeys re-aggregates VisibilityTrack and IKTracks by frame,
// the inverse of decodeExtensionKeys. A frame with no explicit visibility
// key defaults to visible, matching the zero-value ExKey MMD itself uses.
func (e *encoder) encodeExtensionKeys() {
	keys := map[uint32]*extensionKey{}
	order := func(frame uint32) *extensionKey {
		k, ok := keys[frame]
		if !ok {
			k = &extensionKey{visible: true, iks: map[string]bool{}}
			keys[frame] = k
		}
		return k
	}

	for _, v := range e.vmd.VisibilityTrack.Keys {
		order(v.Frame).visible = v.Visible
	}
	for _, name := range sortedNames(e.vmd.IKTracks) {
		for _, k := range e.vmd.IKTracks[name].Keys {
			order(k.Frame).iks[name] = k.Enable
		}
	}

	frames := make([]uint32, 0, len(keys))
	for frame := range keys {
		frames = append(frames, frame)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i] < frames[j] })

	w := e.w
	w.U32(uint32(len(frames)))
	for _, frame := range frames {
		k := keys[frame]
		w.U32(frame)
		w.Bool(k.visible)

		names := make([]string, 0, len(k.iks))
		for name := range k.iks {
			names = append(names, name)
		}
		sort.Strings(names)

		w.U32(uint32(len(names)))
		for _, name := range names {
			w.TextFixed(name, ikNameWidth, 1, sjis.Encode)
			w.Bool(k.iks[name])
		}
	}
}
