package gmath

// Quaternion is a rotation represented as X*i + Y*j + Z*k + W.
//
// Matrix builders take quaternions as given: a quaternion that is not
// unit length produces a rotation block that is not orthonormal.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity is the rotation that leaves every vector unchanged.
var QuaternionIdentity = Quaternion{W: 1}

// QuaternionRotationAxis returns the rotation of angle radians around axis.
// The axis must be unit length.
func QuaternionRotationAxis(axis Vector3, angle float32) Quaternion {
	half := angle * 0.5
	s := sinf(half)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: cosf(half),
	}
}

// QuaternionYawPitchRoll returns the rotation that applies roll around Z,
// then pitch around X, then yaw around Y. Angles are in radians.
func QuaternionYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	halfRoll := roll * 0.5
	halfPitch := pitch * 0.5
	halfYaw := yaw * 0.5

	sinRoll, cosRoll := sinf(halfRoll), cosf(halfRoll)
	sinPitch, cosPitch := sinf(halfPitch), cosf(halfPitch)
	sinYaw, cosYaw := sinf(halfYaw), cosf(halfYaw)

	return Quaternion{
		X: cosYaw*sinPitch*cosRoll + sinYaw*cosPitch*sinRoll,
		Y: sinYaw*cosPitch*cosRoll - cosYaw*sinPitch*sinRoll,
		Z: cosYaw*cosPitch*sinRoll - sinYaw*sinPitch*cosRoll,
		W: cosYaw*cosPitch*cosRoll + sinYaw*sinPitch*sinRoll,
	}
}

// QuaternionFromMatrix extracts the rotation held in the upper 3×3 block of m.
// The block must be orthonormal; scale should be removed first (see
// Matrix.DecomposeMatrix).
func QuaternionFromMatrix(m Matrix) Quaternion {
	var q Quaternion
	trace := m.M11 + m.M22 + m.M33
	switch {
	case trace > 0:
		s := sqrtf(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m.M23 - m.M32) * s
		q.Y = (m.M31 - m.M13) * s
		q.Z = (m.M12 - m.M21) * s
	case m.M11 >= m.M22 && m.M11 >= m.M33:
		s := sqrtf(1 + m.M11 - m.M22 - m.M33)
		half := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m.M12 + m.M21) * half
		q.Z = (m.M13 + m.M31) * half
		q.W = (m.M23 - m.M32) * half
	case m.M22 > m.M33:
		s := sqrtf(1 + m.M22 - m.M11 - m.M33)
		half := 0.5 / s
		q.X = (m.M21 + m.M12) * half
		q.Y = 0.5 * s
		q.Z = (m.M32 + m.M23) * half
		q.W = (m.M31 - m.M13) * half
	default:
		s := sqrtf(1 + m.M33 - m.M11 - m.M22)
		half := 0.5 / s
		q.X = (m.M31 + m.M13) * half
		q.Y = (m.M32 + m.M23) * half
		q.Z = 0.5 * s
		q.W = (m.M12 - m.M21) * half
	}
	return q
}

// Dot returns the four-component dot product.
func (q Quaternion) Dot(r Quaternion) float32 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// LengthSquared returns the squared norm.
func (q Quaternion) LengthSquared() float32 {
	return q.Dot(q)
}

// Length returns the norm.
func (q Quaternion) Length() float32 {
	return sqrtf(q.LengthSquared())
}

// IsNormalized reports whether q is unit length within ZeroTolerance*10.
func (q Quaternion) IsNormalized() bool {
	return absf(q.LengthSquared()-1) < ZeroTolerance*10
}

// Normalize returns q scaled to unit length.
// A quaternion with zero length is returned unchanged.
func (q Quaternion) Normalize() Quaternion {
	length := q.Length()
	if IsZero(length) {
		return q
	}
	inv := 1 / length
	return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Conjugate returns q with the vector part negated. For a unit quaternion
// this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Multiply returns the Hamilton product q*r: the rotation that applies r
// first and then q. In matrix terms
// RotationQuaternion(q.Multiply(r)) == Multiply(RotationQuaternion(r), RotationQuaternion(q)).
func (q Quaternion) Multiply(r Quaternion) Quaternion {
	return Quaternion{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// AngleBetween returns the angle in radians of the rotation that takes a
// to b. Both must be unit length. q and -q are treated as the same rotation.
func AngleBetween(a, b Quaternion) float32 {
	d := a.Conjugate().Multiply(b)
	v := sqrtf(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
	return 2 * atan2f(v, absf(d.W))
}
