// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import (
	"encoding/binary"
	"math"
)

// rawWriter hand-assembles a PMX byte stream for tests that need to probe
// narrow index widths Encode never produces on its own (Encode always
// writes width-4 indices per spec.md §4.4).
type rawWriter struct {
	buf []byte
}

func newRawWriter() *rawWriter { return &rawWriter{} }

func (w *rawWriter) raw(b []byte) { w.buf = append(w.buf, b...) }
func (w *rawWriter) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *rawWriter) i32(v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.raw(b[:])
}
func (w *rawWriter) f32(v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.raw(b[:])
}
func (w *rawWriter) vec2(x, y float32)    { w.f32(x); w.f32(y) }
func (w *rawWriter) vec3(x, y, z float32) { w.f32(x); w.f32(y); w.f32(z) }

// header writes a full PMX header with the given index widths and no
// ex-UVs, zero-length name/comment strings.
func (w *rawWriter) header(vertexW, textureW, materialW, boneW, morphW, bodyW uint8) {
	w.raw(magic[:])
	w.f32(fileVersion)
	w.u8(dataCount)
	w.u8(0) // encoding
	w.u8(0) // num ex uvs
	w.u8(vertexW)
	w.u8(textureW)
	w.u8(materialW)
	w.u8(boneW)
	w.u8(morphW)
	w.u8(bodyW)
	w.i32(0) // name
	w.i32(0) // name_en
	w.i32(0) // comment
	w.i32(0) // comment_en
}
