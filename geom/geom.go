// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package geom provides the small set of vector and quaternion math needed
// to hold and interpolate MMD model and motion data: 2, 3 and 4 element
// float32 vectors and a quaternion, plus linear and spherical interpolation.
//
// Package geom deliberately stops short of a full 3D math library: it has
// no matrices and no transform hierarchy, since composing bone hierarchies
// into world-space transforms is a hosting engine's job, not this library's.
package geom

import "math"

// Epsilon distinguishes a float32 from zero for almost-equal comparisons.
const Epsilon float32 = 1e-6

// Vec2 is a 2 element vector, used for PMX UV coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3 element vector, used for positions, normals and rotations
// stored in Euler form.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4 element vector, used for ex-UVs and morph offsets that carry
// a 4th channel.
type Vec4 struct {
	X, Y, Z, W float32
}

// Quat is a unit quaternion with Slerp support. The codecs do not use it:
// VMD bone orientation is stored as a Vec4 and camera rotation as an Euler
// Vec3.
type Quat struct {
	X, Y, Z, W float32
}

// Eq (==) returns true if v and o have identical components.
func (v Vec3) Eq(o Vec3) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

// Aeq (~=) returns true if v and o are within Epsilon of each other.
func (v Vec3) Aeq(o Vec3) bool {
	return aeq(v.X, o.X) && aeq(v.Y, o.Y) && aeq(v.Z, o.Z)
}

func aeq(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Epsilon
}

// LerpVec3 returns the linear interpolation from a to b at ratio t.
func LerpVec3(a, b Vec3, t float32) Vec3 {
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// LerpVec4 returns the linear interpolation from a to b at ratio t.
func LerpVec4(a, b Vec4, t float32) Vec4 {
	return Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}

// Lerp returns the linear interpolation from a to b at ratio t.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

// Eq (==) returns true if q and r have identical components.
func (q Quat) Eq(r Quat) bool { return q.X == r.X && q.Y == r.Y && q.Z == r.Z && q.W == r.W }

// Aeq (~=) returns true if q and r are within Epsilon of each other.
func (q Quat) Aeq(r Quat) bool {
	return aeq(q.X, r.X) && aeq(q.Y, r.Y) && aeq(q.Z, r.Z) && aeq(q.W, r.W)
}

// Dot returns the dot product of q and r.
func (q Quat) Dot(r Quat) float32 { return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W }

// Neg returns the component-wise negation of q.
func (q Quat) Neg() Quat { return Quat{-q.X, -q.Y, -q.Z, -q.W} }

// Slerp returns the spherical linear interpolation from a to b at ratio t.
// Falls back to a normalized linear interpolation when a and b are nearly
// parallel, since the spherical formula is numerically unstable there.
func Slerp(a, b Quat, t float32) Quat {
	cosHalfTheta := a.Dot(b)

	// Take the short path: negating both terms of a quaternion yields the
	// same rotation, and the short path avoids unwinding through the long
	// way around the sphere.
	if cosHalfTheta < 0 {
		b = b.Neg()
		cosHalfTheta = -cosHalfTheta
	}

	if cosHalfTheta > 1-1e-4 {
		return nlerp(a, b, t)
	}

	halfTheta := float32(math.Acos(float64(cosHalfTheta)))
	sinHalfTheta := float32(math.Sin(float64(halfTheta)))

	ra := float32(math.Sin(float64((1-t)*halfTheta))) / sinHalfTheta
	rb := float32(math.Sin(float64(t*halfTheta))) / sinHalfTheta

	return Quat{
		X: a.X*ra + b.X*rb,
		Y: a.Y*ra + b.Y*rb,
		Z: a.Z*ra + b.Z*rb,
		W: a.W*ra + b.W*rb,
	}
}

func nlerp(a, b Quat, t float32) Quat {
	q := Quat{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
	length := float32(math.Sqrt(float64(q.Dot(q))))
	if length < Epsilon {
		return a
	}
	return Quat{q.X / length, q.Y / length, q.Z / length, q.W / length}
}
