// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package binio

import "testing"

func TestReaderPrimitives(t *testing.T) {
	buf := []byte{0x01, 0xff, 0x02, 0x00, 0x03, 0x00, 0x00, 0x00}
	r := NewReader(buf)

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
	if r.Overflown() {
		t.Error("reader overflown after exact-length reads")
	}
	if !r.AtEOF() {
		t.Error("reader should be at EOF")
	}
}

func TestReaderOverflow(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	r.U32() // needs 4 bytes, only 2 available.
	if !r.Overflown() {
		t.Error("expected reader to be overflown")
	}
}

func TestReaderEqual(t *testing.T) {
	r := NewReader([]byte("PMX "))
	if !r.Equal([]byte("PMX ")) {
		t.Error("Equal should match identical bytes")
	}

	r2 := NewReader([]byte("PMX "))
	if r2.Equal([]byte("VMD ")) {
		t.Error("Equal should not match differing bytes")
	}
}

func TestReaderCountRejectsOverlarge(t *testing.T) {
	// count says 1000000 elements of 12 bytes each, but no bytes remain after it.
	buf := []byte{0x40, 0x42, 0x0f, 0x00}
	r := NewReader(buf)
	n := r.Count(12)
	if n != 0 || !r.Overflown() {
		t.Errorf("Count should reject an overlarge count, got n=%d overflown=%v", n, r.Overflown())
	}
}

func TestTrimAtNull(t *testing.T) {
	got := trimAtNull([]byte{'a', 'b', 0, 'c'}, 1)
	if string(got) != "ab" {
		t.Errorf("trimAtNull = %q, want %q", got, "ab")
	}
}

func TestTextFixedRoundTrip(t *testing.T) {
	ascii := func(b []byte) (string, error) { return string(b), nil }
	r := NewReader([]byte("hello\x00\x00\x00"))
	got := r.TextFixed(8, 1, ascii)
	if got != "hello" {
		t.Errorf("TextFixed = %q, want %q", got, "hello")
	}
}
