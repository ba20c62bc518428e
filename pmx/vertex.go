// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import (
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/mmderr"
)

// WeightKind selects which of a vertex's bone_indices/bone_weights slots are
// meaningful and how they combine to drive skinning.
type WeightKind uint8

const (
	BDEF1 WeightKind = iota
	BDEF2
	BDEF4
	SDEF
)

// Vertex is one point of the mesh: position, normal, primary UV, up to four
// extended UV channels, a bone weight scheme, and an edge-scale factor.
// BoneIndices and BoneWeights are always 4 wide regardless of WeightKind;
// unused slots are -1 / 0 as poml's importer leaves them.
type Vertex struct {
	Position geom.Vec3
	Normal   geom.Vec3
	UV       geom.Vec2
	ExUVs    [4]geom.Vec4

	WeightKind  WeightKind
	BoneIndices [4]int32
	BoneWeights [4]float32

	// SDEF-only soft deform correction terms; zero for every other kind.
	SDEFC  geom.Vec3
	SDEFR0 geom.Vec3
	SDEFR1 geom.Vec3

	Edge float32
}

func (d *decoder) decodeVertices() error {
	r := d.r
	n := r.Count(4)
	boneWidth := d.pmx.Header.BoneIndexWidth
	numExUVs := int(d.pmx.Header.NumExUVs)

	vertices := make([]Vertex, n)
	for i := range vertices {
		v := &vertices[i]
		v.Position = readVec3(r)
		v.Normal = readVec3(r)
		v.UV = readVec2(r)
		for j := 0; j < numExUVs && j < 4; j++ {
			v.ExUVs[j] = readVec4(r)
		}

		v.WeightKind = WeightKind(r.U8())
		switch v.WeightKind {
		case BDEF1:
			v.BoneIndices = [4]int32{r.SignedIndex(boneWidth), -1, -1, -1}
			v.BoneWeights = [4]float32{1, 0, 0, 0}

		case BDEF2:
			v.BoneIndices = [4]int32{r.SignedIndex(boneWidth), r.SignedIndex(boneWidth), -1, -1}
			w0 := r.F32()
			v.BoneWeights = [4]float32{w0, 1 - w0, 0, 0}

		case BDEF4:
			v.BoneIndices = [4]int32{
				r.SignedIndex(boneWidth), r.SignedIndex(boneWidth),
				r.SignedIndex(boneWidth), r.SignedIndex(boneWidth),
			}
			v.BoneWeights = [4]float32{r.F32(), r.F32(), r.F32(), r.F32()}

		case SDEF:
			v.BoneIndices = [4]int32{r.SignedIndex(boneWidth), r.SignedIndex(boneWidth), -1, -1}
			w0 := r.F32()
			v.BoneWeights = [4]float32{w0, 0, 0, 0}
			v.SDEFC = readVec3(r)
			v.SDEFR0 = readVec3(r)
			v.SDEFR1 = readVec3(r)

		default:
			return mmderr.ErrInvalidEnum
		}

		v.Edge = r.F32()
	}
	d.pmx.Vertices = vertices
	return nil
}

func (e *encoder) encodeVertices() {
	w := e.w
	vertices := e.pmx.Vertices
	numExUVs := int(e.pmx.Header.NumExUVs)

	w.Count(len(vertices))
	for _, v := range vertices {
		writeVec3(w, v.Position)
		writeVec3(w, v.Normal)
		writeVec2(w, v.UV)
		for j := 0; j < numExUVs && j < 4; j++ {
			writeVec4(w, v.ExUVs[j])
		}

		w.U8(uint8(v.WeightKind))
		switch v.WeightKind {
		case BDEF1:
			w.WriteIndex(v.BoneIndices[0])

		case BDEF2:
			w.WriteIndex(v.BoneIndices[0])
			w.WriteIndex(v.BoneIndices[1])
			w.F32(v.BoneWeights[0])

		case BDEF4:
			for _, idx := range v.BoneIndices {
				w.WriteIndex(idx)
			}
			for _, wt := range v.BoneWeights {
				w.F32(wt)
			}

		case SDEF:
			w.WriteIndex(v.BoneIndices[0])
			w.WriteIndex(v.BoneIndices[1])
			w.F32(v.BoneWeights[0])
			writeVec3(w, v.SDEFC)
			writeVec3(w, v.SDEFR0)
			writeVec3(w, v.SDEFR1)
		}

		w.F32(v.Edge)
	}
}
