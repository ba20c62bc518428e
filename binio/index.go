// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package binio

// IndexWidth is one of PMX's six runtime-selected index widths: 1, 2 or 4
// bytes. Any other value is a decode failure.
type IndexWidth uint8

// ValidIndexWidth reports whether w is one of the three widths PMX allows.
func ValidIndexWidth(w uint8) bool {
	return w == 1 || w == 2 || w == 4
}

// SignedIndex reads a width-dispatched signed index and widens it to a
// uniform int32, so that the -1 "no index" sentinel is representable
// regardless of the on-wire width. This is the mechanism behind PMX's
// texture/material/bone/morph/body index fields.
func (r *Reader) SignedIndex(width uint8) int32 {
	switch width {
	case 1:
		return int32(r.I8())
	case 2:
		return int32(r.I16())
	case 4:
		return r.I32()
	default:
		r.over = true
		return 0
	}
}

// WriteIndex appends idx as a plain signed 32-bit integer. The encoder
// always emits width-4 indices (spec.md §4.4's encoder note) so there is no
// write-side width dispatch to mirror SignedIndex/VertexIndex.
func (w *Writer) WriteIndex(idx int32) { w.I32(idx) }

// VertexIndex reads a width-dispatched vertex index: unsigned at 1 and 2
// bytes, signed at 4 bytes (so a 4-byte vertex index can still carry -1 for
// "none", while the narrower widths have no such sentinel need).
func (r *Reader) VertexIndex(width uint8) int32 {
	switch width {
	case 1:
		return int32(r.U8())
	case 2:
		return int32(r.U16())
	case 4:
		return r.I32()
	default:
		r.over = true
		return 0
	}
}
