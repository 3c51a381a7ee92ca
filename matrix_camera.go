package gmath

// LookAt returns a view matrix for a camera at eye looking at target.
// The view-space Z axis points from eye toward target. up must not be
// parallel to that direction; no fallback basis is chosen.
func LookAt(eye, target, up Vector3) Matrix {
	var m Matrix
	LookAtTo(eye, target, up, &m)
	return m
}

// LookAtTo writes LookAt(eye, target, up) into result.
func LookAtTo(eye, target, up Vector3, result *Matrix) {
	zaxis := target.Sub(eye).Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	*result = Identity

	result.M11 = xaxis.X
	result.M21 = xaxis.Y
	result.M31 = xaxis.Z

	result.M12 = yaxis.X
	result.M22 = yaxis.Y
	result.M32 = yaxis.Z

	result.M13 = zaxis.X
	result.M23 = zaxis.Y
	result.M33 = zaxis.Z

	result.M41 = -xaxis.Dot(eye)
	result.M42 = -yaxis.Dot(eye)
	result.M43 = -zaxis.Dot(eye)
}

// Billboard returns a world matrix placing an object at objectPosition and
// turning its backward axis toward cameraPosition. When the two positions
// coincide the facing direction falls back to -cameraForward.
func Billboard(objectPosition, cameraPosition, cameraUp, cameraForward Vector3) Matrix {
	var m Matrix
	BillboardTo(objectPosition, cameraPosition, cameraUp, cameraForward, &m)
	return m
}

// BillboardTo writes Billboard(...) into result.
func BillboardTo(objectPosition, cameraPosition, cameraUp, cameraForward Vector3, result *Matrix) {
	difference := cameraPosition.Sub(objectPosition)

	lengthSq := difference.LengthSquared()
	if IsZero(lengthSq) {
		Logger().Debug("gmath: billboard at camera position, using camera forward")
		difference = cameraForward.Neg()
	} else {
		difference = difference.Mul(1 / sqrtf(lengthSq))
	}

	crossed := cameraUp.Cross(difference).Normalize()
	final := difference.Cross(crossed)

	*result = Matrix{
		crossed.X, crossed.Y, crossed.Z, 0,
		final.X, final.Y, final.Z, 0,
		difference.X, difference.Y, difference.Z, 0,
		objectPosition.X, objectPosition.Y, objectPosition.Z, 1,
	}
}

// OrthoOffCenter returns an orthographic projection of the box
// [left,right]×[bottom,top]×[zNear,zFar] onto clip space with depth in [0, 1].
func OrthoOffCenter(left, right, bottom, top, zNear, zFar float32) Matrix {
	var m Matrix
	OrthoOffCenterTo(left, right, bottom, top, zNear, zFar, &m)
	return m
}

// OrthoOffCenterTo writes OrthoOffCenter(...) into result.
func OrthoOffCenterTo(left, right, bottom, top, zNear, zFar float32, result *Matrix) {
	zRange := 1 / (zFar - zNear)

	*result = Identity
	result.M11 = 2 / (right - left)
	result.M22 = 2 / (top - bottom)
	result.M33 = zRange
	result.M41 = (left + right) / (left - right)
	result.M42 = (top + bottom) / (bottom - top)
	result.M43 = -zNear * zRange
}

// Ortho returns a centered orthographic projection of a width×height view.
func Ortho(width, height, zNear, zFar float32) Matrix {
	halfWidth := width * 0.5
	halfHeight := height * 0.5
	return OrthoOffCenter(-halfWidth, halfWidth, -halfHeight, halfHeight, zNear, zFar)
}

// PerspectiveOffCenter returns a perspective projection of the frustum
// whose near plane spans [left,right]×[bottom,top]. Depth maps to [0, 1]
// and w receives the view-space z.
func PerspectiveOffCenter(left, right, bottom, top, zNear, zFar float32) Matrix {
	var m Matrix
	PerspectiveOffCenterTo(left, right, bottom, top, zNear, zFar, &m)
	return m
}

// PerspectiveOffCenterTo writes PerspectiveOffCenter(...) into result.
func PerspectiveOffCenterTo(left, right, bottom, top, zNear, zFar float32, result *Matrix) {
	zRange := zFar / (zFar - zNear)

	*result = Zero
	result.M11 = 2 * zNear / (right - left)
	result.M22 = 2 * zNear / (top - bottom)
	result.M31 = (left + right) / (left - right)
	result.M32 = (top + bottom) / (bottom - top)
	result.M33 = zRange
	result.M34 = 1
	result.M43 = -zNear * zRange
}

// PerspectiveFov returns a symmetric perspective projection with a vertical
// field of view of fov radians.
func PerspectiveFov(fov, aspect, zNear, zFar float32) Matrix {
	var m Matrix
	PerspectiveFovTo(fov, aspect, zNear, zFar, &m)
	return m
}

// PerspectiveFovTo writes PerspectiveFov(...) into result.
func PerspectiveFovTo(fov, aspect, zNear, zFar float32, result *Matrix) {
	yScale := 1 / tanf(fov*0.5)
	xScale := yScale / aspect

	halfWidth := zNear / xScale
	halfHeight := zNear / yScale

	PerspectiveOffCenterTo(-halfWidth, halfWidth, -halfHeight, halfHeight, zNear, zFar, result)
}

// CreateWorld returns a world matrix at position whose forward axis is
// forward. The right axis is derived from up first and up is then
// recomputed from it, so the basis is orthonormal even when up and forward
// are not perpendicular.
func CreateWorld(position, forward, up Vector3) Matrix {
	var m Matrix
	CreateWorldTo(position, forward, up, &m)
	return m
}

// CreateWorldTo writes CreateWorld(position, forward, up) into result.
func CreateWorldTo(position, forward, up Vector3, result *Matrix) {
	backward := forward.Normalize().Neg()
	right := up.Cross(backward).Normalize()
	newUp := backward.Cross(right)

	*result = Matrix{
		right.X, right.Y, right.Z, 0,
		newUp.X, newUp.Y, newUp.Z, 0,
		backward.X, backward.Y, backward.Z, 0,
		position.X, position.Y, position.Z, 1,
	}
}

// CreateFromAxisAngle returns a rotation of angle radians around the unit
// axis. It computes the same matrix as RotationAxis.
func CreateFromAxisAngle(axis Vector3, angle float32) Matrix {
	var m Matrix
	CreateFromAxisAngleTo(axis, angle, &m)
	return m
}

// CreateFromAxisAngleTo writes CreateFromAxisAngle(axis, angle) into result.
func CreateFromAxisAngleTo(axis Vector3, angle float32, result *Matrix) {
	x, y, z := axis.X, axis.Y, axis.Z
	s := sinf(angle)
	c := cosf(angle)
	omc := 1 - c

	*result = Matrix{
		M11: x*x*omc + c,
		M12: x*y*omc + s*z,
		M13: x*z*omc - s*y,

		M21: x*y*omc - s*z,
		M22: y*y*omc + c,
		M23: y*z*omc + s*x,

		M31: x*z*omc + s*y,
		M32: y*z*omc - s*x,
		M33: z*z*omc + c,

		M44: 1,
	}
}

// TransformPosition returns the row vector (v, 1) multiplied by m.
// The W component is left undivided.
func TransformPosition(m Matrix, v Vector3) Vector4 {
	return Vector4{
		X: m.M11*v.X + m.M21*v.Y + m.M31*v.Z + m.M41,
		Y: m.M12*v.X + m.M22*v.Y + m.M32*v.Z + m.M42,
		Z: m.M13*v.X + m.M23*v.Y + m.M33*v.Z + m.M43,
		W: m.M14*v.X + m.M24*v.Y + m.M34*v.Z + m.M44,
	}
}

// TransformPosition4 returns the row vector v multiplied by m.
func TransformPosition4(m Matrix, v Vector4) Vector4 {
	return Vector4{
		X: m.M11*v.X + m.M21*v.Y + m.M31*v.Z + m.M41*v.W,
		Y: m.M12*v.X + m.M22*v.Y + m.M32*v.Z + m.M42*v.W,
		Z: m.M13*v.X + m.M23*v.Y + m.M33*v.Z + m.M43*v.W,
		W: m.M14*v.X + m.M24*v.Y + m.M34*v.Z + m.M44*v.W,
	}
}

// TransformNormal multiplies v by the 3×3 block of m, ignoring translation.
func TransformNormal(m Matrix, v Vector3) Vector3 {
	return Vector3{
		X: m.M11*v.X + m.M21*v.Y + m.M31*v.Z,
		Y: m.M12*v.X + m.M22*v.Y + m.M32*v.Z,
		Z: m.M13*v.X + m.M23*v.Y + m.M33*v.Z,
	}
}
