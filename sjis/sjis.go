// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package sjis supplies the Shift-JIS decoder/encoder VMD's fixed-length
// name fields need. spec.md calls this out as an injected dependency rather
// than something the core implements; this package is that injected
// implementation, built on golang.org/x/text/encoding/japanese.
package sjis

import (
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Decode converts Shift-JIS bytes (already trimmed of trailing nulls) to a
// Go string. Bytes that are not valid Shift-JIS are replaced rather than
// rejected, matching the lossy-fallback allowance of spec.md §9.
func Decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode converts a Go string to Shift-JIS bytes.
func Encode(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
}

// DecodeUTF16LE converts raw UTF-16LE bytes to a Go string, the encoding
// PMX uses for every name, comment and note field.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeUTF16LE converts a Go string to raw UTF-16LE bytes.
func EncodeUTF16LE(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
}
