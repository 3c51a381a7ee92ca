package gmath

import "fmt"

// MinimalSkewAngle is the smallest rotated-projection denominator Skew accepts.
const MinimalSkewAngle = 1e-6

// Translation returns the identity matrix with row 4 set to v.
func Translation(v Vector3) Matrix {
	var m Matrix
	TranslationTo(v, &m)
	return m
}

// TranslationXYZ returns the identity matrix with row 4 set to (x, y, z).
func TranslationXYZ(x, y, z float32) Matrix {
	return Translation(Vector3{x, y, z})
}

// TranslationTo writes Translation(v) into result.
func TranslationTo(v Vector3, result *Matrix) {
	*result = Identity
	result.M41 = v.X
	result.M42 = v.Y
	result.M43 = v.Z
}

// Scaling returns a matrix scaling each axis independently.
func Scaling(x, y, z float32) Matrix {
	var m Matrix
	ScalingTo(x, y, z, &m)
	return m
}

// ScalingVector returns Scaling(v.X, v.Y, v.Z).
func ScalingVector(v Vector3) Matrix {
	return Scaling(v.X, v.Y, v.Z)
}

// ScalingUniform returns a matrix scaling all three axes by s.
func ScalingUniform(s float32) Matrix {
	return Scaling(s, s, s)
}

// ScalingTo writes Scaling(x, y, z) into result.
func ScalingTo(x, y, z float32, result *Matrix) {
	*result = Identity
	result.M11 = x
	result.M22 = y
	result.M33 = z
}

// The three axis rotations place the sine terms as follows:
//
//	X: M23 = +sin, M32 = -sin
//	Y: M13 = -sin, M31 = +sin
//	Z: M12 = +sin, M21 = -sin
//
// Y looks transposed next to X and Z but all three are the same
// counter-clockwise rotation about their axis for row vectors. Content
// built against this table depends on it, so keep it as is.

// RotationX returns a rotation of angle radians around the X axis.
func RotationX(angle float32) Matrix {
	var m Matrix
	RotationXTo(angle, &m)
	return m
}

// RotationXTo writes RotationX(angle) into result.
func RotationXTo(angle float32, result *Matrix) {
	cosA, sinA := cosf(angle), sinf(angle)
	*result = Identity
	result.M22 = cosA
	result.M23 = sinA
	result.M32 = -sinA
	result.M33 = cosA
}

// RotationY returns a rotation of angle radians around the Y axis.
func RotationY(angle float32) Matrix {
	var m Matrix
	RotationYTo(angle, &m)
	return m
}

// RotationYTo writes RotationY(angle) into result.
func RotationYTo(angle float32, result *Matrix) {
	cosA, sinA := cosf(angle), sinf(angle)
	*result = Identity
	result.M11 = cosA
	result.M13 = -sinA
	result.M31 = sinA
	result.M33 = cosA
}

// RotationZ returns a rotation of angle radians around the Z axis.
func RotationZ(angle float32) Matrix {
	var m Matrix
	RotationZTo(angle, &m)
	return m
}

// RotationZTo writes RotationZ(angle) into result.
func RotationZTo(angle float32, result *Matrix) {
	cosA, sinA := cosf(angle), sinf(angle)
	*result = Identity
	result.M11 = cosA
	result.M12 = sinA
	result.M21 = -sinA
	result.M22 = cosA
}

// RotationAxis returns a rotation of angle radians around axis.
// The axis must be unit length; it is not normalized here.
func RotationAxis(axis Vector3, angle float32) Matrix {
	var m Matrix
	RotationAxisTo(axis, angle, &m)
	return m
}

// RotationAxisTo writes RotationAxis(axis, angle) into result.
func RotationAxisTo(axis Vector3, angle float32, result *Matrix) {
	x, y, z := axis.X, axis.Y, axis.Z
	cosA, sinA := cosf(angle), sinf(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	*result = Identity
	result.M11 = xx + cosA*(1-xx)
	result.M12 = xy - cosA*xy + sinA*z
	result.M13 = xz - cosA*xz - sinA*y
	result.M21 = xy - cosA*xy - sinA*z
	result.M22 = yy + cosA*(1-yy)
	result.M23 = yz - cosA*yz + sinA*x
	result.M31 = xz - cosA*xz + sinA*y
	result.M32 = yz - cosA*yz - sinA*x
	result.M33 = zz + cosA*(1-zz)
}

// RotationQuaternion returns the rotation matrix of q.
// q must be unit length for the result to be orthonormal.
func RotationQuaternion(q Quaternion) Matrix {
	var m Matrix
	RotationQuaternionTo(q, &m)
	return m
}

// RotationQuaternionTo writes RotationQuaternion(q) into result.
func RotationQuaternionTo(q Quaternion, result *Matrix) {
	*result = Identity
	setRotation(q, result)
}

// setRotation writes the 3×3 rotation block of q and leaves the rest of m alone.
func setRotation(q Quaternion, m *Matrix) {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	zw := q.Z * q.W
	zx := q.Z * q.X
	yw := q.Y * q.W
	yz := q.Y * q.Z
	xw := q.X * q.W

	m.M11 = 1 - 2*(yy+zz)
	m.M12 = 2 * (xy + zw)
	m.M13 = 2 * (zx - yw)
	m.M21 = 2 * (xy - zw)
	m.M22 = 1 - 2*(zz+xx)
	m.M23 = 2 * (yz + xw)
	m.M31 = 2 * (zx + yw)
	m.M32 = 2 * (yz - xw)
	m.M33 = 1 - 2*(yy+xx)
}

// RotationYawPitchRoll returns the rotation that applies roll around Z,
// then pitch around X, then yaw around Y.
func RotationYawPitchRoll(yaw, pitch, roll float32) Matrix {
	return RotationQuaternion(QuaternionYawPitchRoll(yaw, pitch, roll))
}

// Skew returns a shear along transVec tilted by angle radians around
// rotationVec.
//
// Skew panics when the configuration is degenerate, that is when the
// rotated projection of rotationVec falls below MinimalSkewAngle. Callers
// are expected to keep angle well inside the valid range.
func Skew(angle float32, rotationVec, transVec Vector3) Matrix {
	var m Matrix
	SkewTo(angle, rotationVec, transVec, &m)
	return m
}

// SkewTo writes Skew(angle, rotationVec, transVec) into result.
func SkewTo(angle float32, rotationVec, transVec Vector3, result *Matrix) {
	e1 := transVec.Normalize()
	rv1 := rotationVec.Dot(e1)
	e0 := rotationVec.Add(e1.Mul(rv1))
	rv0 := rotationVec.Dot(e0)

	cosA, sinA := cosf(angle), sinf(angle)
	rr0 := rv0*cosA - rv1*sinA
	rr1 := rv0*sinA + rv1*cosA

	if rr0 < MinimalSkewAngle {
		panic(fmt.Sprintf("gmath: degenerate skew (angle=%g, rr0=%g)", angle, rr0))
	}

	d := rr1/rr0 - rv1/rv0

	*result = Identity
	result.M11 = d*e1.X*e0.X + 1
	result.M12 = d * e1.X * e0.Y
	result.M13 = d * e1.X * e0.Z
	result.M21 = d * e1.Y * e0.X
	result.M22 = d*e1.Y*e0.Y + 1
	result.M23 = d * e1.Y * e0.Z
	result.M31 = d * e1.Z * e0.X
	result.M32 = d * e1.Z * e0.Y
	result.M33 = d*e1.Z*e0.Z + 1
}

// Transformation returns Scaling(scale) * RotationQuaternion(rotation) *
// Translation(translation), computed in closed form.
func Transformation(scale Vector3, rotation Quaternion, translation Vector3) Matrix {
	var m Matrix
	TransformationTo(scale, rotation, translation, &m)
	return m
}

// TransformationTo writes Transformation(scale, rotation, translation) into result.
func TransformationTo(scale Vector3, rotation Quaternion, translation Vector3, result *Matrix) {
	*result = Identity
	setRotation(rotation, result)

	result.M41 = translation.X
	result.M42 = translation.Y
	result.M43 = translation.Z

	result.M11 *= scale.X
	result.M12 *= scale.X
	result.M13 *= scale.X
	result.M21 *= scale.Y
	result.M22 *= scale.Y
	result.M23 *= scale.Y
	result.M31 *= scale.Z
	result.M32 *= scale.Z
	result.M33 *= scale.Z
}

// chain multiplies the matrices left to right.
func chain(ms ...Matrix) Matrix {
	r := ms[0]
	for i := 1; i < len(ms); i++ {
		MultiplyTo(&r, &ms[i], &r)
	}
	return r
}

// AffineTransformation returns a uniform scale, then rotation, then translation.
func AffineTransformation(scaling float32, rotation Quaternion, translation Vector3) Matrix {
	return chain(
		ScalingUniform(scaling),
		RotationQuaternion(rotation),
		Translation(translation),
	)
}

// AffineTransformationCenter is AffineTransformation with the rotation
// performed around rotationCenter.
func AffineTransformationCenter(scaling float32, rotationCenter Vector3, rotation Quaternion, translation Vector3) Matrix {
	return chain(
		ScalingUniform(scaling),
		Translation(rotationCenter.Neg()),
		RotationQuaternion(rotation),
		Translation(rotationCenter),
		Translation(translation),
	)
}

// AffineTransformation2D returns a uniform XY scale, then a rotation of
// rotation radians in the XY plane, then translation.
func AffineTransformation2D(scaling, rotation float32, translation Vector2) Matrix {
	return chain(
		Scaling(scaling, scaling, 1),
		RotationZ(rotation),
		Translation(translation.Vec3()),
	)
}

// AffineTransformation2DCenter is AffineTransformation2D with the rotation
// performed around rotationCenter.
func AffineTransformation2DCenter(scaling float32, rotationCenter Vector2, rotation float32, translation Vector2) Matrix {
	return chain(
		Scaling(scaling, scaling, 1),
		Translation(rotationCenter.Neg().Vec3()),
		RotationZ(rotation),
		Translation(rotationCenter.Vec3()),
		Translation(translation.Vec3()),
	)
}

// TransformationCenters returns a transformation that scales around
// scalingCenter along the axes of scalingRotation, then rotates around
// rotationCenter, then translates.
func TransformationCenters(scalingCenter Vector3, scalingRotation Quaternion, scaling Vector3,
	rotationCenter Vector3, rotation Quaternion, translation Vector3) Matrix {
	sr := RotationQuaternion(scalingRotation)
	return chain(
		Translation(scalingCenter.Neg()),
		Transpose(sr),
		ScalingVector(scaling),
		sr,
		Translation(scalingCenter),
		Translation(rotationCenter.Neg()),
		RotationQuaternion(rotation),
		Translation(rotationCenter),
		Translation(translation),
	)
}

// Transformation2D is the XY-plane form of TransformationCenters. Z
// contamination from the 3D rotation primitives is cancelled by forcing
// M33 and M44 to 1.
func Transformation2D(scalingCenter Vector2, scalingRotation float32, scaling Vector2,
	rotationCenter Vector2, rotation float32, translation Vector2) Matrix {
	r := chain(
		Translation(scalingCenter.Neg().Vec3()),
		RotationZ(-scalingRotation),
		ScalingVector(scaling.Vec3()),
		RotationZ(scalingRotation),
		Translation(scalingCenter.Vec3()),
		Translation(rotationCenter.Neg().Vec3()),
		RotationZ(rotation),
		Translation(rotationCenter.Vec3()),
		Translation(translation.Vec3()),
	)
	r.M33 = 1
	r.M44 = 1
	return r
}
