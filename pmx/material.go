// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import (
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/mmderr"
)

// MaterialOp selects how a material morph's delta combines with the base
// material value: multiplicative or additive.
type MaterialOp uint8

const (
	OpMult MaterialOp = iota
	OpAdd
)

// Material flag bits, read/written as a single byte.
const (
	flagTwoSide            = 0x01
	flagCastGroundShadow   = 0x02
	flagCastSelfShadow     = 0x04
	flagReceiveSelfShadow  = 0x08
	flagDrawEdge           = 0x10
)

// Material describes one drawable surface range of the mesh: shading
// colors, edge outline, texture references and the run of face indices
// (NumVertices, always a multiple of 3) it covers.
type Material struct {
	Name, NameEn string

	Diffuse  geom.Vec4
	Specular geom.Vec4
	Ambient  geom.Vec3

	TwoSide            bool
	CastGroundShadow   bool
	CastSelfShadow     bool
	ReceiveSelfShadow  bool
	DrawEdge           bool
	EdgeColor          geom.Vec4
	EdgeSize           float32

	BaseTextureIndex   int32
	SphereTextureIndex int32
	SphereMode         uint8

	UseSharedToon    bool
	ToonTextureIndex int32

	Note        string
	NumVertices int32
}

func (d *decoder) decodeMaterials() error {
	r := d.r
	n := r.Count(4)
	width := d.pmx.Header.TextureIndexWidth

	materials := make([]Material, n)
	for i := range materials {
		m := &materials[i]
		m.Name = readText(r)
		m.NameEn = readText(r)
		m.Diffuse = readVec4(r)
		m.Specular = readVec4(r)
		m.Ambient = readVec3(r)

		flags := r.U8()
		m.TwoSide = flags&flagTwoSide != 0
		m.CastGroundShadow = flags&flagCastGroundShadow != 0
		m.CastSelfShadow = flags&flagCastSelfShadow != 0
		m.ReceiveSelfShadow = flags&flagReceiveSelfShadow != 0
		m.DrawEdge = flags&flagDrawEdge != 0

		m.EdgeColor = readVec4(r)
		m.EdgeSize = r.F32()
		m.BaseTextureIndex = r.SignedIndex(width)
		m.SphereTextureIndex = r.SignedIndex(width)
		m.SphereMode = r.U8()
		m.UseSharedToon = r.Bool()
		if m.UseSharedToon {
			m.ToonTextureIndex = int32(r.U8())
		} else {
			m.ToonTextureIndex = r.SignedIndex(width)
		}
		m.Note = readText(r)
		m.NumVertices = r.I32()
		if m.NumVertices%3 != 0 {
			return mmderr.ErrInvalidCount
		}
	}
	d.pmx.Materials = materials
	return nil
}

func (e *encoder) encodeMaterials() {
	w := e.w
	w.Count(len(e.pmx.Materials))
	for _, m := range e.pmx.Materials {
		writeText(w, m.Name)
		writeText(w, m.NameEn)
		writeVec4(w, m.Diffuse)
		writeVec4(w, m.Specular)
		writeVec3(w, m.Ambient)

		var flags uint8
		if m.TwoSide {
			flags |= flagTwoSide
		}
		if m.CastGroundShadow {
			flags |= flagCastGroundShadow
		}
		if m.CastSelfShadow {
			flags |= flagCastSelfShadow
		}
		if m.ReceiveSelfShadow {
			flags |= flagReceiveSelfShadow
		}
		if m.DrawEdge {
			flags |= flagDrawEdge
		}
		w.U8(flags)

		writeVec4(w, m.EdgeColor)
		w.F32(m.EdgeSize)
		w.WriteIndex(m.BaseTextureIndex)
		w.WriteIndex(m.SphereTextureIndex)
		w.U8(m.SphereMode)
		w.Bool(m.UseSharedToon)
		if m.UseSharedToon {
			w.U8(uint8(m.ToonTextureIndex))
		} else {
			w.WriteIndex(m.ToonTextureIndex)
		}
		writeText(w, m.Note)
		w.I32(m.NumVertices)
	}
}
