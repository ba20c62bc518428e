// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sjis

import "testing"

func TestASCIIRoundTrip(t *testing.T) {
	want := "Center"
	enc, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestUTF16LERoundTrip(t *testing.T) {
	want := "left leg"
	enc, err := EncodeUTF16LE(want)
	if err != nil {
		t.Fatalf("EncodeUTF16LE: %v", err)
	}
	if len(enc) != len(want)*2 {
		t.Fatalf("encoded length = %d, want %d", len(enc), len(want)*2)
	}
	got, err := DecodeUTF16LE(enc)
	if err != nil {
		t.Fatalf("DecodeUTF16LE: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if got, _ := Decode(nil); got != "" {
		t.Errorf("Decode(nil) = %q, want empty", got)
	}
	if got, _ := DecodeUTF16LE(nil); got != "" {
		t.Errorf("DecodeUTF16LE(nil) = %q, want empty", got)
	}
}
