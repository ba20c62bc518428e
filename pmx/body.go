// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import "github.com/Pachira762/MiniMmdTools/geom"

// BodyMode selects how a rigid body participates in the physics
// simulation relative to its bone: following it, driving it, or both.
type BodyMode uint8

const (
	BodyStatic BodyMode = iota
	BodyDynamic
	BodyCombine
)

// Body is one rigid body of the physics rig, anchored to a bone.
type Body struct {
	Name, NameEn string

	BoneIndex int32
	Group     uint8
	PassGroup uint16
	Shape     uint8

	Size     geom.Vec3
	Position geom.Vec3
	Rotation geom.Vec3

	Mass           float32
	LinearDamping  float32
	AngularDamping float32
	Restitution    float32
	Friction       float32

	Mode BodyMode
}

func (d *decoder) decodeBodies() error {
	r := d.r
	n := r.Count(4)
	boneWidth := d.pmx.Header.BoneIndexWidth

	bodies := make([]Body, n)
	for i := range bodies {
		b := &bodies[i]
		b.Name = readText(r)
		b.NameEn = readText(r)
		b.BoneIndex = r.SignedIndex(boneWidth)
		b.Group = r.U8()
		b.PassGroup = r.U16()
		b.Shape = r.U8()
		b.Size = readVec3(r)
		b.Position = readVec3(r)
		b.Rotation = readVec3(r)
		b.Mass = r.F32()
		b.LinearDamping = r.F32()
		b.AngularDamping = r.F32()
		b.Restitution = r.F32()
		b.Friction = r.F32()
		b.Mode = BodyMode(r.U8())
	}
	d.pmx.Bodies = bodies
	return nil
}

func (e *encoder) encodeBodies() {
	w := e.w
	w.Count(len(e.pmx.Bodies))
	for _, b := range e.pmx.Bodies {
		writeText(w, b.Name)
		writeText(w, b.NameEn)
		w.WriteIndex(b.BoneIndex)
		w.U8(b.Group)
		w.U16(b.PassGroup)
		w.U8(b.Shape)
		writeVec3(w, b.Size)
		writeVec3(w, b.Position)
		writeVec3(w, b.Rotation)
		w.F32(b.Mass)
		w.F32(b.LinearDamping)
		w.F32(b.AngularDamping)
		w.F32(b.Restitution)
		w.F32(b.Friction)
		w.U8(uint8(b.Mode))
	}
}
