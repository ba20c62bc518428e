// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pmx

import "github.com/Pachira762/MiniMmdTools/geom"

// Bone flag bits, read/written as a single little-endian uint16.
const (
	boneHasTipBone          = 0x0001
	boneRotatable           = 0x0002
	boneTranslatable        = 0x0004
	boneVisible             = 0x0008
	boneOperable            = 0x0010
	boneIsIK                = 0x0020
	boneLocalDriven         = 0x0080
	boneDrivenRotation      = 0x0100
	boneDrivenTranslation   = 0x0200
	boneHasFixedAxis        = 0x0400
	boneHasLocalAxis        = 0x0800
	bonePostPhysicsTransform = 0x1000
	boneExternalTransform   = 0x2000
)

// IKLink is one bone in an IK chain, with an optional per-axis angle limit.
type IKLink struct {
	Index        int32
	AngleLimited bool
	AngleMin     geom.Vec3
	AngleMax     geom.Vec3
}

// Bone is one joint of the skeleton. Fields gated by a flag bit hold their
// zero value (and the matching index holds -1) when that bit is clear, the
// same convention poml's importer uses so a Bone is always fully populated
// regardless of which optional sections were present on disk.
type Bone struct {
	Name, NameEn string
	Position     geom.Vec3

	ParentBoneIndex int32
	Level           int32

	HasTipBone           bool
	Rotatable            bool
	Translatable         bool
	Visible              bool
	Operable             bool
	IsIK                 bool
	LocalDriven          bool
	DrivenRotation       bool
	DrivenTranslation    bool
	HasFixedAxis         bool
	HasLocalAxis         bool
	PostPhysicsTransform bool
	ExternalTransform    bool

	TipOffset    geom.Vec3
	TipBoneIndex int32

	DriveBoneIndex int32
	DriveRate      float32

	FixedAxis geom.Vec3

	LocalAxisX geom.Vec3
	LocalAxisZ geom.Vec3

	ExternalKey int32

	IKTargetBoneIndex int32
	IKIterationCount  int32
	IKAngleLimit      float32
	IKLinks           []IKLink
}

func (d *decoder) decodeBones() error {
	r := d.r
	n := r.Count(4)
	width := d.pmx.Header.BoneIndexWidth

	bones := make([]Bone, n)
	for i := range bones {
		b := &bones[i]
		b.Name = readText(r)
		b.NameEn = readText(r)
		b.Position = readVec3(r)
		b.ParentBoneIndex = r.SignedIndex(width)
		b.Level = r.I32()

		flags := r.U16()
		b.HasTipBone = flags&boneHasTipBone != 0
		b.Rotatable = flags&boneRotatable != 0
		b.Translatable = flags&boneTranslatable != 0
		b.Visible = flags&boneVisible != 0
		b.Operable = flags&boneOperable != 0
		b.IsIK = flags&boneIsIK != 0
		b.LocalDriven = flags&boneLocalDriven != 0
		b.DrivenRotation = flags&boneDrivenRotation != 0
		b.DrivenTranslation = flags&boneDrivenTranslation != 0
		b.HasFixedAxis = flags&boneHasFixedAxis != 0
		b.HasLocalAxis = flags&boneHasLocalAxis != 0
		b.PostPhysicsTransform = flags&bonePostPhysicsTransform != 0
		b.ExternalTransform = flags&boneExternalTransform != 0

		if b.HasTipBone {
			b.TipBoneIndex = r.SignedIndex(width)
		} else {
			b.TipOffset = readVec3(r)
			b.TipBoneIndex = -1
		}

		if b.DrivenRotation || b.DrivenTranslation {
			b.DriveBoneIndex = r.SignedIndex(width)
			b.DriveRate = r.F32()
		} else {
			b.DriveBoneIndex = -1
		}

		if b.HasFixedAxis {
			b.FixedAxis = readVec3(r)
		}

		if b.HasLocalAxis {
			b.LocalAxisX = readVec3(r)
			b.LocalAxisZ = readVec3(r)
		}

		if b.ExternalTransform {
			b.ExternalKey = r.I32()
		}

		if b.IsIK {
			b.IKTargetBoneIndex = r.SignedIndex(width)
			b.IKIterationCount = r.I32()
			b.IKAngleLimit = r.F32()

			links := make([]IKLink, r.Count(4))
			for j := range links {
				links[j].Index = r.SignedIndex(width)
				links[j].AngleLimited = r.Bool()
				if links[j].AngleLimited {
					links[j].AngleMin = readVec3(r)
					links[j].AngleMax = readVec3(r)
				}
			}
			b.IKLinks = links
		} else {
			b.IKTargetBoneIndex = -1
		}
	}
	d.pmx.Bones = bones
	return nil
}

func (e *encoder) encodeBones() {
	w := e.w
	w.Count(len(e.pmx.Bones))
	for _, b := range e.pmx.Bones {
		writeText(w, b.Name)
		writeText(w, b.NameEn)
		writeVec3(w, b.Position)
		w.WriteIndex(b.ParentBoneIndex)
		w.I32(b.Level)

		var flags uint16
		if b.HasTipBone {
			flags |= boneHasTipBone
		}
		if b.Rotatable {
			flags |= boneRotatable
		}
		if b.Translatable {
			flags |= boneTranslatable
		}
		if b.Visible {
			flags |= boneVisible
		}
		if b.Operable {
			flags |= boneOperable
		}
		if b.IsIK {
			flags |= boneIsIK
		}
		if b.LocalDriven {
			flags |= boneLocalDriven
		}
		if b.DrivenRotation {
			flags |= boneDrivenRotation
		}
		if b.DrivenTranslation {
			flags |= boneDrivenTranslation
		}
		if b.HasFixedAxis {
			flags |= boneHasFixedAxis
		}
		if b.HasLocalAxis {
			flags |= boneHasLocalAxis
		}
		if b.PostPhysicsTransform {
			flags |= bonePostPhysicsTransform
		}
		if b.ExternalTransform {
			flags |= boneExternalTransform
		}
		w.U16(flags)

		if b.HasTipBone {
			w.WriteIndex(b.TipBoneIndex)
		} else {
			writeVec3(w, b.TipOffset)
		}

		if b.DrivenRotation || b.DrivenTranslation {
			w.WriteIndex(b.DriveBoneIndex)
			w.F32(b.DriveRate)
		}

		if b.HasFixedAxis {
			writeVec3(w, b.FixedAxis)
		}

		if b.HasLocalAxis {
			writeVec3(w, b.LocalAxisX)
			writeVec3(w, b.LocalAxisZ)
		}

		if b.ExternalTransform {
			w.I32(b.ExternalKey)
		}

		if b.IsIK {
			w.WriteIndex(b.IKTargetBoneIndex)
			w.I32(b.IKIterationCount)
			w.F32(b.IKAngleLimit)

			w.Count(len(b.IKLinks))
			for _, link := range b.IKLinks {
				w.WriteIndex(link.Index)
				w.Bool(link.AngleLimited)
				if link.AngleLimited {
					writeVec3(w, link.AngleMin)
					writeVec3(w, link.AngleMax)
				}
			}
		}
	}
}
