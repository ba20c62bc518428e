// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import (
	"github.com/Pachira762/MiniMmdTools/geom"
	"github.com/Pachira762/MiniMmdTools/mmderr"
)

// JointKind selects the constraint model a Joint uses. Spring6DOF is the
// only kind PMX 2.0 defines.
type JointKind uint8

const (
	JointSpring6DOF JointKind = iota
)

// Joint constrains two rigid bodies together.
type Joint struct {
	Name, NameEn string
	Kind         JointKind

	BodyIndexA int32
	BodyIndexB int32

	Position geom.Vec3
	Rotation geom.Vec3

	LinearMin geom.Vec3
	LinearMax geom.Vec3

	AngularMin geom.Vec3
	AngularMax geom.Vec3

	LinearSpringConst  geom.Vec3
	AngularSpringConst geom.Vec3
}

func (d *decoder) decodeJoints() error {
	r := d.r
	n := r.Count(4)
	bodyWidth := d.pmx.Header.BodyIndexWidth

	joints := make([]Joint, n)
	for i := range joints {
		j := &joints[i]
		j.Name = readText(r)
		j.NameEn = readText(r)

		j.Kind = JointKind(r.U8())
		switch j.Kind {
		case JointSpring6DOF:
			j.BodyIndexA = r.SignedIndex(bodyWidth)
			j.BodyIndexB = r.SignedIndex(bodyWidth)
			j.Position = readVec3(r)
			j.Rotation = readVec3(r)
			j.LinearMin = readVec3(r)
			j.LinearMax = readVec3(r)
			j.AngularMin = readVec3(r)
			j.AngularMax = readVec3(r)
			j.LinearSpringConst = readVec3(r)
			j.AngularSpringConst = readVec3(r)

		default:
			return mmderr.ErrInvalidEnum
		}
	}
	d.pmx.Joints = joints
	return nil
}

func (e *encoder) encodeJoints() {
	w := e.w
	w.Count(len(e.pmx.Joints))
	for _, j := range e.pmx.Joints {
		writeText(w, j.Name)
		writeText(w, j.NameEn)
		w.U8(uint8(j.Kind))

		switch j.Kind {
		case JointSpring6DOF:
			w.WriteIndex(j.BodyIndexA)
			w.WriteIndex(j.BodyIndexB)
			writeVec3(w, j.Position)
			writeVec3(w, j.Rotation)
			writeVec3(w, j.LinearMin)
			writeVec3(w, j.LinearMax)
			writeVec3(w, j.AngularMin)
			writeVec3(w, j.AngularMax)
			writeVec3(w, j.LinearSpringConst)
			writeVec3(w, j.AngularSpringConst)
		}
	}
}
