// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package pmx decodes and encodes the PMX 2.0 model format: geometry,
// materials, skeleton, morphs, display nodes, rigid bodies and joints.
//
// PMX is a variable-width binary format: the header picks a byte width
// (1, 2 or 4) independently for each of six index kinds, and every
// section that stores an index reads it at that section's chosen width.
// Decode dispatches on the stored width and widens every index to a
// uniform signed int32 internally; Encode always emits width-4 indices
// (spec.md §4.4) rather than attempting to recompress them.
package pmx

import (
	"fmt"

	"github.com/Pachira762/MiniMmdTools/binio"
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/mmderr"
	"github.com/Pachira762/MiniMmdTools/sjis"
)

// magic is the 4-byte PMX signature.
var magic = [4]byte{0x50, 0x4d, 0x58, 0x20}

const fileVersion float32 = 2.0
const dataCount uint8 = 8

// Pmx holds one fully decoded model.
type Pmx struct {
	Header Header

	Vertices  []Vertex
	Faces     []int32 // length is always a multiple of 3.
	Textures  []string
	Materials []Material
	Bones     []Bone

	VertexMorphs   []Morph[VertexMorphData]
	UVMorphs       []Morph[UVMorphData]
	BoneMorphs     []Morph[BoneMorphData]
	MaterialMorphs []Morph[MaterialMorphData]
	GroupMorphs    []Morph[GroupMorphData]

	Nodes   []Node
	Bodies  []Body
	Joints  []Joint
}

// Header carries the ex-UV count, the six runtime index widths, and the
// four localized name/comment strings. The format version is not stored:
// Decode accepts only 2.0 and Encode always writes 2.0.
type Header struct {
	NumExUVs           uint8
	VertexIndexWidth   uint8
	TextureIndexWidth  uint8
	MaterialIndexWidth uint8
	BoneIndexWidth     uint8
	MorphIndexWidth    uint8
	BodyIndexWidth     uint8

	Name, NameEn       string
	Comment, CommentEn string
}

// decoder carries the shared cursor and the header widths every later
// phase dispatches on.
type decoder struct {
	r   *binio.Reader
	pmx *Pmx
}

// Decode parses buf into a Pmx. Phases run in file order and stop at the
// first failure: header, vertices, faces, textures, materials, bones,
// morphs, display nodes, rigid bodies, joints, then an EOF check.
func Decode(buf []byte) (*Pmx, error) {
	d := &decoder{r: binio.NewReader(buf), pmx: &Pmx{}}

	steps := []func() error{
		d.decodeHeader,
		d.decodeVertices,
		d.decodeFaces,
		d.decodeTextures,
		d.decodeMaterials,
		d.decodeBones,
		d.decodeMorphs,
		d.decodeNodes,
		d.decodeBodies,
		d.decodeJoints,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	if d.r.Overflown() {
		return nil, mmderr.ErrTruncated
	}
	if !d.r.AtEOF() {
		return nil, mmderr.ErrTrailingData
	}
	return d.pmx, nil
}

func (d *decoder) decodeHeader() error {
	r := d.r
	if !r.Equal(magic[:]) {
		if r.Overflown() {
			return mmderr.ErrTruncated
		}
		return mmderr.ErrBadMagic
	}
	if r.F32() != fileVersion {
		return fmt.Errorf("%w: pmx version must be 2.0", mmderr.ErrUnsupportedFormat)
	}
	if r.U8() != dataCount {
		return fmt.Errorf("%w: pmx data count must be 8", mmderr.ErrUnsupportedFormat)
	}

	encoding := r.U8()
	h := Header{}
	h.NumExUVs = r.U8()
	h.VertexIndexWidth = r.U8()
	h.TextureIndexWidth = r.U8()
	h.MaterialIndexWidth = r.U8()
	h.BoneIndexWidth = r.U8()
	h.MorphIndexWidth = r.U8()
	h.BodyIndexWidth = r.U8()

	if encoding != 0 {
		return fmt.Errorf("%w: only UTF-16LE encoding is supported", mmderr.ErrUnsupportedFormat)
	}
	for _, w := range []uint8{h.VertexIndexWidth, h.TextureIndexWidth, h.MaterialIndexWidth, h.BoneIndexWidth, h.MorphIndexWidth, h.BodyIndexWidth} {
		if !binio.ValidIndexWidth(w) {
			return mmderr.ErrInvalidIndexWidth
		}
	}

	h.Name = r.TextPrefixed(sjis.DecodeUTF16LE)
	h.NameEn = r.TextPrefixed(sjis.DecodeUTF16LE)
	h.Comment = r.TextPrefixed(sjis.DecodeUTF16LE)
	h.CommentEn = r.TextPrefixed(sjis.DecodeUTF16LE)

	if r.Overflown() {
		return mmderr.ErrTruncated
	}
	d.pmx.Header = h
	return nil
}

// readVec2/readVec3/readVec4 centralize the component-at-a-time reads every
// section uses for positions, normals, colors and offsets.
func readVec2(r *binio.Reader) geom.Vec2 { return geom.Vec2{X: r.F32(), Y: r.F32()} }
func readVec3(r *binio.Reader) geom.Vec3 { return geom.Vec3{X: r.F32(), Y: r.F32(), Z: r.F32()} }
func readVec4(r *binio.Reader) geom.Vec4 {
	return geom.Vec4{X: r.F32(), Y: r.F32(), Z: r.F32(), W: r.F32()}
}

func writeVec2(w *binio.Writer, v geom.Vec2) { w.F32(v.X); w.F32(v.Y) }
func writeVec3(w *binio.Writer, v geom.Vec3) { w.F32(v.X); w.F32(v.Y); w.F32(v.Z) }
func writeVec4(w *binio.Writer, v geom.Vec4) {
	w.F32(v.X)
	w.F32(v.Y)
	w.F32(v.Z)
	w.F32(v.W)
}

func readText(r *binio.Reader) string { return r.TextPrefixed(sjis.DecodeUTF16LE) }
func writeText(w *binio.Writer, s string) { w.TextPrefixed(s, sjis.EncodeUTF16LE) }

// encoder carries the growing buffer; the encoder never fails for data
// reasons (spec.md §7), only I/O at the filesystem boundary.
type encoder struct {
	w   *binio.Writer
	pmx *Pmx
}

// Encode serializes pmx, always emitting data count 8 and width-4 indices.
func Encode(pmx *Pmx) []byte {
	e := &encoder{w: binio.NewWriter(), pmx: pmx}
	e.encodeHeader()
	e.encodeVertices()
	e.encodeFaces()
	e.encodeTextures()
	e.encodeMaterials()
	e.encodeBones()
	e.encodeMorphs()
	e.encodeNodes()
	e.encodeBodies()
	e.encodeJoints()
	return e.w.Bytes()
}

func (e *encoder) encodeHeader() {
	w := e.w
	w.Raw(magic[:])
	w.F32(fileVersion)
	w.U8(dataCount)
	w.U8(0) // encoding: UTF-16LE.
	w.U8(e.pmx.Header.NumExUVs)
	w.U8(4) // vertex index width.
	w.U8(4) // texture index width.
	w.U8(4) // material index width.
	w.U8(4) // bone index width.
	w.U8(4) // morph index width.
	w.U8(4) // body index width.

	writeText(w, e.pmx.Header.Name)
	writeText(w, e.pmx.Header.NameEn)
	writeText(w, e.pmx.Header.Comment)
	writeText(w, e.pmx.Header.CommentEn)
}
