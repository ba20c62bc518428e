// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package binio

import (
	"bytes"
	"testing"
)

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.U8(1)
	w.I8(-1)
	w.U16(2)
	w.U32(3)
	w.F32(1.5)

	r := NewReader(w.Bytes())
	if got := r.U8(); got != 1 {
		t.Errorf("U8 = %d, want 1", got)
	}
	if got := r.I8(); got != -1 {
		t.Errorf("I8 = %d, want -1", got)
	}
	if got := r.U16(); got != 2 {
		t.Errorf("U16 = %d, want 2", got)
	}
	if got := r.U32(); got != 3 {
		t.Errorf("U32 = %d, want 3", got)
	}
	if got := r.F32(); got != 1.5 {
		t.Errorf("F32 = %v, want 1.5", got)
	}
}

func TestWriterTextFixedPadsAndTruncates(t *testing.T) {
	ascii := func(s string) ([]byte, error) { return []byte(s), nil }

	w := NewWriter()
	w.TextFixed("ab", 5, 1, ascii)
	if !bytes.Equal(w.Bytes(), []byte{'a', 'b', 0, 0, 0}) {
		t.Errorf("TextFixed padding = %v", w.Bytes())
	}

	w2 := NewWriter()
	w2.TextFixed("abcdef", 3, 1, ascii)
	if !bytes.Equal(w2.Bytes(), []byte{'a', 'b', 'c'}) {
		t.Errorf("TextFixed truncation = %v", w2.Bytes())
	}
}

func TestWriterTextPrefixedUsesByteLength(t *testing.T) {
	w := NewWriter()
	utf16 := func(s string) ([]byte, error) { return []byte{'a', 0, 'b', 0}, nil } // pretend 2 UTF-16 code units.
	w.TextPrefixed("ab", utf16)

	r := NewReader(w.Bytes())
	if n := r.I32(); n != 4 {
		t.Errorf("prefix should be byte length 4, got %d", n)
	}
}
