// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package mmderr defines the sentinel error kinds shared by the pmx and vmd
// decoders, so callers can classify a decode failure with errors.Is
// regardless of which format produced it (spec.md §7).
package mmderr

import "errors"

var (
	// ErrTruncated means the cursor ran past the end of the buffer.
	ErrTruncated = errors.New("truncated input")

	// ErrTrailingData means decoding finished before reaching EOF.
	ErrTrailingData = errors.New("trailing data after decode")

	// ErrBadMagic means the header signature did not match.
	ErrBadMagic = errors.New("bad magic")

	// ErrUnsupportedFormat means a version or encoding byte this
	// implementation does not support.
	ErrUnsupportedFormat = errors.New("unsupported version or encoding")

	// ErrInvalidIndexWidth means an index-width byte was not 1, 2 or 4.
	ErrInvalidIndexWidth = errors.New("invalid index width")

	// ErrInvalidEnum means an enum byte did not match any known value.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrInvalidCount means a count field violated a multiple-of-3 or
	// similar structural invariant.
	ErrInvalidCount = errors.New("invalid count")
)
