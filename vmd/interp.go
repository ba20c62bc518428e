// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package vmd

import (
	"github.com/Pachira762/MiniMmdTools/binio"
	"github.com/Pachira762/MiniMmdTools/bezier"
)

// interpTableSize is the packed size of a motion key's interpolation
// table: four channels (X, Y, Z, rotation), each a 16-byte block of which
// this package reads and writes only the first byte of each 4-byte row.
const interpTableSize = 64

// channel offsets into the 64-byte table, one per motion axis.
const (
	offsetX = 0
	offsetY = 16
	offsetZ = 32
	offsetR = 48
)

// defaultInterpTable is the filler MMD itself writes for a key with no
// custom interpolation: the four corner bytes repeated, with a handful of
// trailing bytes forced to 0. A decoder that reads this exact table and
// re-encodes it without modification must reproduce it byte-for-byte.
var defaultInterpTable = [interpTableSize]byte{
	20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 107,
	20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 0,
	20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 0, 0,
	20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 107, 20, 0, 0, 0,
}

// unpackChannel reads the curve stored at a channel's four corner bytes
// (offsets +0 x1, +4 y1, +8 x2, +12 y2 within the channel's 16-byte
// block), reading each byte as a signed int8 and dividing by 127, so the
// usual 0-127 values map to bezier.Curve's 0-1 range.
func unpackChannel(raw [interpTableSize]byte, base int) bezier.Curve {
	const scale = 1.0 / 127.0
	return bezier.Curve{
		X1: float32(int8(raw[base+0])) * scale,
		Y1: float32(int8(raw[base+4])) * scale,
		X2: float32(int8(raw[base+8])) * scale,
		Y2: float32(int8(raw[base+12])) * scale,
	}
}

// packChannel writes c's four corner values into raw at the given channel
// base offset, rounding back to the 0-127 byte range.
func packChannel(raw *[interpTableSize]byte, base int, c bezier.Curve) {
	raw[base+0] = packByte(c.X1)
	raw[base+4] = packByte(c.Y1)
	raw[base+8] = packByte(c.X2)
	raw[base+12] = packByte(c.Y2)
}

func packByte(v float32) byte {
	n := int32(v*127 + 0.5)
	if v < 0 {
		n = int32(v*127 - 0.5)
	}
	return byte(int8(n))
}

// isPhysicsFlag reports whether raw encodes a physics-driven key: MMD
// repurposes the interpolation table's bytes [2] and [3] as a flag, where
// anything other than the literal pair (0x63, 0x0f) means physics.
func isPhysicsFlag(raw [interpTableSize]byte) bool {
	return !(raw[2] == 0x63 && raw[3] == 0x0f)
}

// packInterpTable starts from raw (the table as last decoded, or
// defaultInterpTable for a key built fresh), overlays the four channel
// curves' corner bytes, and, only when physics is true, forces bytes[2]/[3]
// to (0x63, 0x0f). When physics is false those two bytes are left exactly
// as raw already has them, matching VmdExporter::export_motions (poml.h):
// it memcpy's the prior table and only ever writes interp[2]/interp[3]
// inside "if (key.is_physics)". An unmodified decode/encode round trip of
// a non-physics key never touches those bytes, so its table is re-encoded
// byte-exact. A key decoded as physics is not: its bytes[2]/[3] become
// (0x63, 0x0f), which isPhysicsFlag reads back as non-physics.
func packInterpTable(raw [interpTableSize]byte, ix, iy, iz, ir bezier.Curve, physics bool) [interpTableSize]byte {
	packChannel(&raw, offsetX, ix)
	packChannel(&raw, offsetY, iy)
	packChannel(&raw, offsetZ, iz)
	packChannel(&raw, offsetR, ir)

	if physics {
		raw[2], raw[3] = 0x63, 0x0f
	}
	return raw
}

// readByteCurve/writeByteCurve handle the unpacked 4-byte interpolation
// record camera, as opposed to motion, keys carry: one curve per channel
// written as four raw bytes in declaration order x1, x2, y1, y2 (not the
// x1, y1, x2, y2 corner order of the packed 64-byte motion table).
func readByteCurve(r *binio.Reader) bezier.Curve {
	const scale = 1.0 / 127.0
	x1 := float32(r.I8()) * scale
	x2 := float32(r.I8()) * scale
	y1 := float32(r.I8()) * scale
	y2 := float32(r.I8()) * scale
	return bezier.Curve{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func writeByteCurve(w *binio.Writer, c bezier.Curve) {
	w.I8(int8(packByte(c.X1)))
	w.I8(int8(packByte(c.X2)))
	w.I8(int8(packByte(c.Y1)))
	w.I8(int8(packByte(c.Y2)))
}
