// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import (
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/mmderr"
)

// MorphKind tags which of the five data shapes a Morph carries, and for the
// UV family which of the four extended UV channels it targets.
type MorphKind uint8

const (
	MorphGroup MorphKind = iota
	MorphVertex
	MorphBone
	MorphUV
	MorphExUV1
	MorphExUV2
	MorphExUV3
	MorphExUV4
	MorphMaterial
)

// MorphPanel groups a morph under one of the four standard UI tabs.
type MorphPanel uint8

const (
	PanelEyebrow MorphPanel = iota + 1
	PanelEye
	PanelMouth
	PanelOther
)

type VertexMorphData struct {
	Index  int32
	Offset geom.Vec3
}

type UVMorphData struct {
	Index  int32
	Offset geom.Vec4
}

type BoneMorphData struct {
	Index       int32
	Translation geom.Vec3
	Rotation    geom.Vec4
}

type MaterialMorphData struct {
	Index    int32
	Op       MaterialOp
	Diffuse  geom.Vec4
	Specular geom.Vec4
	Ambient  geom.Vec4
	EdgeColor geom.Vec4
	EdgeSize float32
	Tex      geom.Vec4
	Sphere   geom.Vec4
	Toon     geom.Vec4
}

type GroupMorphData struct {
	Index int32
	Rate  float32
}

// Morph is a named, panel-grouped sequence of one of the five data shapes.
// PMX stores all five shapes interleaved in a single morph section ordered
// by declaration; this package splits them into five typed arenas
// (Pmx.VertexMorphs, UVMorphs, ...) so each carries its Data slice without
// a sum type, and Encode re-serializes them in vertex/UV/bone/material/group
// order (spec.md §4.5).
type Morph[Data any] struct {
	Name, NameEn string
	Panel        MorphPanel
	Kind         MorphKind
	Data         []Data
}

func (d *decoder) decodeMorphs() error {
	r := d.r
	n := r.Count(4)

	vertexWidth := d.pmx.Header.VertexIndexWidth
	boneWidth := d.pmx.Header.BoneIndexWidth
	materialWidth := d.pmx.Header.MaterialIndexWidth
	morphWidth := d.pmx.Header.MorphIndexWidth

	for i := 0; i < n; i++ {
		name := readText(r)
		nameEn := readText(r)
		panel := MorphPanel(r.U8())
		kind := MorphKind(r.U8())

		switch kind {
		case MorphGroup:
			data := make([]GroupMorphData, r.Count(4))
			for j := range data {
				data[j].Index = r.SignedIndex(morphWidth)
				data[j].Rate = r.F32()
			}
			d.pmx.GroupMorphs = append(d.pmx.GroupMorphs, Morph[GroupMorphData]{name, nameEn, panel, kind, data})

		case MorphVertex:
			data := make([]VertexMorphData, r.Count(4))
			for j := range data {
				data[j].Index = r.VertexIndex(vertexWidth)
				data[j].Offset = readVec3(r)
			}
			d.pmx.VertexMorphs = append(d.pmx.VertexMorphs, Morph[VertexMorphData]{name, nameEn, panel, kind, data})

		case MorphBone:
			data := make([]BoneMorphData, r.Count(4))
			for j := range data {
				data[j].Index = r.SignedIndex(boneWidth)
				data[j].Translation = readVec3(r)
				data[j].Rotation = readVec4(r)
			}
			d.pmx.BoneMorphs = append(d.pmx.BoneMorphs, Morph[BoneMorphData]{name, nameEn, panel, kind, data})

		case MorphUV, MorphExUV1, MorphExUV2, MorphExUV3, MorphExUV4:
			data := make([]UVMorphData, r.Count(4))
			for j := range data {
				data[j].Index = r.VertexIndex(vertexWidth)
				data[j].Offset = readVec4(r)
			}
			d.pmx.UVMorphs = append(d.pmx.UVMorphs, Morph[UVMorphData]{name, nameEn, panel, kind, data})

		case MorphMaterial:
			data := make([]MaterialMorphData, r.Count(4))
			for j := range data {
				data[j].Index = r.SignedIndex(materialWidth)
				data[j].Op = MaterialOp(r.U8())
				data[j].Diffuse = readVec4(r)
				data[j].Specular = readVec4(r)
				data[j].Ambient = readVec4(r)
				data[j].EdgeColor = readVec4(r)
				data[j].EdgeSize = r.F32()
				data[j].Tex = readVec4(r)
				data[j].Sphere = readVec4(r)
				data[j].Toon = readVec4(r)
			}
			d.pmx.MaterialMorphs = append(d.pmx.MaterialMorphs, Morph[MaterialMorphData]{name, nameEn, panel, kind, data})

		default:
			return mmderr.ErrInvalidEnum
		}
	}
	return nil
}

func (e *encoder) encodeMorphs() {
	w := e.w
	total := len(e.pmx.VertexMorphs) + len(e.pmx.UVMorphs) + len(e.pmx.BoneMorphs) +
		len(e.pmx.MaterialMorphs) + len(e.pmx.GroupMorphs)
	w.Count(total)

	for _, m := range e.pmx.VertexMorphs {
		writeText(w, m.Name)
		writeText(w, m.NameEn)
		w.U8(uint8(m.Panel))
		w.U8(uint8(m.Kind))
		w.Count(len(m.Data))
		for _, data := range m.Data {
			w.WriteIndex(data.Index)
			writeVec3(w, data.Offset)
		}
	}

	for _, m := range e.pmx.UVMorphs {
		writeText(w, m.Name)
		writeText(w, m.NameEn)
		w.U8(uint8(m.Panel))
		w.U8(uint8(m.Kind))
		w.Count(len(m.Data))
		for _, data := range m.Data {
			w.WriteIndex(data.Index)
			writeVec4(w, data.Offset)
		}
	}

	for _, m := range e.pmx.BoneMorphs {
		writeText(w, m.Name)
		writeText(w, m.NameEn)
		w.U8(uint8(m.Panel))
		w.U8(uint8(m.Kind))
		w.Count(len(m.Data))
		for _, data := range m.Data {
			w.WriteIndex(data.Index)
			writeVec3(w, data.Translation)
			writeVec4(w, data.Rotation)
		}
	}

	for _, m := range e.pmx.MaterialMorphs {
		writeText(w, m.Name)
		writeText(w, m.NameEn)
		w.U8(uint8(m.Panel))
		w.U8(uint8(m.Kind))
		w.Count(len(m.Data))
		for _, data := range m.Data {
			w.WriteIndex(data.Index)
			w.U8(uint8(data.Op))
			writeVec4(w, data.Diffuse)
			writeVec4(w, data.Specular)
			writeVec4(w, data.Ambient)
			writeVec4(w, data.EdgeColor)
			w.F32(data.EdgeSize)
			writeVec4(w, data.Tex)
			writeVec4(w, data.Sphere)
			writeVec4(w, data.Toon)
		}
	}

	for _, m := range e.pmx.GroupMorphs {
		writeText(w, m.Name)
		writeText(w, m.NameEn)
		w.U8(uint8(m.Panel))
		w.U8(uint8(m.Kind))
		w.Count(len(m.Data))
		for _, data := range m.Data {
			w.WriteIndex(data.Index)
			w.F32(data.Rate)
		}
	}
}
