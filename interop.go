package gmath

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// Conversions to the float32 types of golang.org/x/image/math/f32 and
// github.com/go-gl/mathgl/mgl32.
//
// f32.Mat4 is plain row-major storage and maps element for element.
//
// mgl32 uses column vectors and column-major storage. A row-vector matrix
// is the transpose of the equivalent column-vector matrix, and column-major
// storage of that transpose is the row-major storage of the original, so
// the 16 floats are copied in order in both directions. This is the only
// place the two conventions meet.

// F32 returns m as an f32.Mat4.
func (m Matrix) F32() f32.Mat4 {
	return f32.Mat4(m.array())
}

// MatrixFromF32 converts an f32.Mat4.
func MatrixFromF32(a f32.Mat4) Matrix {
	return matrixFromArray(a)
}

// Mgl32 returns m as the equivalent column-vector mgl32.Mat4.
func (m Matrix) Mgl32() mgl32.Mat4 {
	return mgl32.Mat4(m.array())
}

// MatrixFromMgl32 converts a column-vector mgl32.Mat4.
func MatrixFromMgl32(a mgl32.Mat4) Matrix {
	return matrixFromArray(a)
}

func (m Matrix) array() [16]float32 {
	return [16]float32{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

func matrixFromArray(a [16]float32) Matrix {
	return Matrix{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
}

// F32 returns v as an f32.Vec3.
func (v Vector3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }

// Vector3FromF32 converts an f32.Vec3.
func Vector3FromF32(a f32.Vec3) Vector3 { return Vector3{a[0], a[1], a[2]} }

// F32 returns v as an f32.Vec4.
func (v Vector4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

// Vector4FromF32 converts an f32.Vec4.
func Vector4FromF32(a f32.Vec4) Vector4 { return Vector4{a[0], a[1], a[2], a[3]} }

// Mgl32 returns v as an mgl32.Vec3.
func (v Vector3) Mgl32() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

// Vector3FromMgl32 converts an mgl32.Vec3.
func Vector3FromMgl32(a mgl32.Vec3) Vector3 { return Vector3{a[0], a[1], a[2]} }

// Mgl32 returns v as an mgl32.Vec4.
func (v Vector4) Mgl32() mgl32.Vec4 { return mgl32.Vec4{v.X, v.Y, v.Z, v.W} }

// Vector4FromMgl32 converts an mgl32.Vec4.
func Vector4FromMgl32(a mgl32.Vec4) Vector4 { return Vector4{a[0], a[1], a[2], a[3]} }

// Mgl32 returns q as an mgl32.Quat.
func (q Quaternion) Mgl32() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// QuaternionFromMgl32 converts an mgl32.Quat.
func QuaternionFromMgl32(q mgl32.Quat) Quaternion {
	return Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
