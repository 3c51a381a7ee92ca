package gmath

// gimbalLockCos is the cos(pitch) at or below which DecomposeYawPitchRoll
// treats yaw and roll as coupled.
const gimbalLockCos = 1e-12

// pitchSinSnap is how far sin(pitch) may sit from ±1 and still be read as
// exactly ±1. A rotation block built in float32 at pitch ±π/2 lands a few
// ulps away from 1, which would otherwise keep cos(pitch) near 3e-4.
const pitchSinSnap = 0x1p-20

// DecomposeScaleTranslation returns the per-row scale of the 3×3 block and
// the translation row. Shear is ignored, so the result is only meaningful
// for scale-rotation-translation matrices.
func (m Matrix) DecomposeScaleTranslation() (scale, translation Vector3) {
	translation = m.TranslationVector()
	scale = Vector3{
		X: sqrtf(m.M11*m.M11 + m.M12*m.M12 + m.M13*m.M13),
		Y: sqrtf(m.M21*m.M21 + m.M22*m.M22 + m.M23*m.M23),
		Z: sqrtf(m.M31*m.M31 + m.M32*m.M32 + m.M33*m.M33),
	}
	return scale, translation
}

// DecomposeMatrix splits m, assumed to be scale then rotation then
// translation, into its three parts. The rotation is rebuilt as an
// orthonormal basis from rows 3 and 1; an axis whose rebuilt direction
// points against the original row gets a negative scale, which is how
// reflections are reported.
//
// When a scale component is exactly zero the rotation cannot be recovered:
// rotation is Identity and the scale is returned uncorrected.
func (m Matrix) DecomposeMatrix() (scale Vector3, rotation Matrix, translation Vector3) {
	scale, translation = m.DecomposeScaleTranslation()

	rotation = Identity
	if scale.IsAnyZero() {
		Logger().Debug("gmath: decompose with zero scale axis",
			"scale_x", scale.X, "scale_y", scale.Y, "scale_z", scale.Z)
		return scale, rotation, translation
	}

	at := Vector3{m.M31 / scale.Z, m.M32 / scale.Z, m.M33 / scale.Z}
	up := at.Cross(Vector3{m.M11 / scale.X, m.M12 / scale.X, m.M13 / scale.X})
	right := up.Cross(at)
	rotation.SetRight(right)
	rotation.SetUp(up)
	rotation.SetBackward(at)

	if right.Dot(m.Right()) <= 0 {
		scale.X = -scale.X
	}
	if up.Dot(m.Up()) <= 0 {
		scale.Y = -scale.Y
	}
	if at.Dot(m.Backward()) <= 0 {
		scale.Z = -scale.Z
	}
	return scale, rotation, translation
}

// Decompose splits m into scale, rotation quaternion and translation.
// See DecomposeMatrix for the reflection and zero-scale rules.
func (m Matrix) Decompose() (scale Vector3, rotation Quaternion, translation Vector3) {
	scale, rm, translation := m.DecomposeMatrix()
	return scale, QuaternionFromMatrix(rm), translation
}

// DecomposeTransform returns m as a Transform.
func (m Matrix) DecomposeTransform() Transform {
	scale, rotation, translation := m.Decompose()
	return Transform{Translation: translation, Orientation: rotation, Scale: scale}
}

// DecomposeYawPitchRoll extracts Euler angles from the rotation part of m,
// ignoring scale and translation. It inverts RotationYawPitchRoll away
// from pitch = ±π/2.
//
// At gimbal lock (cos(pitch) <= 1e-12) yaw and roll are indistinguishable;
// yaw is reported as 0 and the whole rotation goes into roll.
func (m Matrix) DecomposeYawPitchRoll() (yaw, pitch, roll float32) {
	sinPitch := -m.M32
	if 1-absf(sinPitch) <= pitchSinSnap {
		if sinPitch < 0 {
			sinPitch = -1
		} else {
			sinPitch = 1
		}
	}
	pitch = asinf(sinPitch)
	if cosf(pitch) > gimbalLockCos {
		roll = atan2f(m.M12, m.M22)
		yaw = atan2f(m.M31, m.M33)
	} else {
		roll = atan2f(-m.M21, m.M11)
		yaw = 0
	}
	return yaw, pitch, roll
}

// NormalizeScale divides each column of the 3×3 block by its length.
func (m *Matrix) NormalizeScale() {
	sx := 1 / Vector3{m.M11, m.M21, m.M31}.Length()
	sy := 1 / Vector3{m.M12, m.M22, m.M32}.Length()
	sz := 1 / Vector3{m.M13, m.M23, m.M33}.Length()

	m.M11 *= sx
	m.M21 *= sx
	m.M31 *= sx

	m.M12 *= sy
	m.M22 *= sy
	m.M32 *= sy

	m.M13 *= sz
	m.M23 *= sz
	m.M33 *= sz
}

// NormalizedScale returns a copy of m with NormalizeScale applied.
func (m Matrix) NormalizedScale() Matrix {
	m.NormalizeScale()
	return m
}
