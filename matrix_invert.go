package gmath

// singularDeterminant is the magnitude at or below which Invert treats a
// matrix as singular.
const singularDeterminant = 1e-12

// Determinant returns the determinant of the full 4×4 matrix, expanded
// along the first row.
func (m Matrix) Determinant() float32 {
	t1 := m.M33*m.M44 - m.M34*m.M43
	t2 := m.M32*m.M44 - m.M34*m.M42
	t3 := m.M32*m.M43 - m.M33*m.M42
	t4 := m.M31*m.M44 - m.M34*m.M41
	t5 := m.M31*m.M43 - m.M33*m.M41
	t6 := m.M31*m.M42 - m.M32*m.M41
	return m.M11*(m.M22*t1-m.M23*t2+m.M24*t3) -
		m.M12*(m.M21*t1-m.M23*t4+m.M24*t5) +
		m.M13*(m.M21*t2-m.M22*t4+m.M24*t6) -
		m.M14*(m.M21*t3-m.M22*t5+m.M23*t6)
}

// RotDeterminant returns the determinant of the upper 3×3 block. It is
// negative when the linear part contains a reflection.
func (m Matrix) RotDeterminant() float32 {
	return m.M11*(m.M22*m.M33-m.M23*m.M32) -
		m.M21*(m.M12*m.M33-m.M13*m.M32) +
		m.M31*(m.M12*m.M23-m.M13*m.M22)
}

// Invert returns the inverse of m, or Zero when |det(m)| <= 1e-12.
// Callers that can receive singular input must compare the result with Zero.
func Invert(m Matrix) Matrix {
	var r Matrix
	InvertTo(&m, &r)
	return r
}

// InvertTo writes the inverse of value into result, or Zero when value is
// singular. result must not alias value.
func InvertTo(value, result *Matrix) {
	v := value

	b0 := v.M31*v.M42 - v.M32*v.M41
	b1 := v.M31*v.M43 - v.M33*v.M41
	b2 := v.M34*v.M41 - v.M31*v.M44
	b3 := v.M32*v.M43 - v.M33*v.M42
	b4 := v.M34*v.M42 - v.M32*v.M44
	b5 := v.M33*v.M44 - v.M34*v.M43

	d11 := v.M22*b5 + v.M23*b4 + v.M24*b3
	d12 := v.M21*b5 + v.M23*b2 + v.M24*b1
	d13 := v.M21*-b4 + v.M22*b2 + v.M24*b0
	d14 := v.M21*b3 + v.M22*-b1 + v.M23*b0

	det := v.M11*d11 - v.M12*d12 + v.M13*d13 - v.M14*d14
	if absf(det) <= singularDeterminant {
		Logger().Debug("gmath: inverting singular matrix", "det", det)
		*result = Zero
		return
	}
	det = 1 / det

	a0 := v.M11*v.M22 - v.M12*v.M21
	a1 := v.M11*v.M23 - v.M13*v.M21
	a2 := v.M14*v.M21 - v.M11*v.M24
	a3 := v.M12*v.M23 - v.M13*v.M22
	a4 := v.M14*v.M22 - v.M12*v.M24
	a5 := v.M13*v.M24 - v.M14*v.M23

	d21 := v.M12*b5 + v.M13*b4 + v.M14*b3
	d22 := v.M11*b5 + v.M13*b2 + v.M14*b1
	d23 := v.M11*-b4 + v.M12*b2 + v.M14*b0
	d24 := v.M11*b3 + v.M12*-b1 + v.M13*b0

	d31 := v.M42*a5 + v.M43*a4 + v.M44*a3
	d32 := v.M41*a5 + v.M43*a2 + v.M44*a1
	d33 := v.M41*-a4 + v.M42*a2 + v.M44*a0
	d34 := v.M41*a3 + v.M42*-a1 + v.M43*a0

	d41 := v.M32*a5 + v.M33*a4 + v.M34*a3
	d42 := v.M31*a5 + v.M33*a2 + v.M34*a1
	d43 := v.M31*-a4 + v.M32*a2 + v.M34*a0
	d44 := v.M31*a3 + v.M32*-a1 + v.M33*a0

	result.M11 = +d11 * det
	result.M12 = -d21 * det
	result.M13 = +d31 * det
	result.M14 = -d41 * det
	result.M21 = -d12 * det
	result.M22 = +d22 * det
	result.M23 = -d32 * det
	result.M24 = +d42 * det
	result.M31 = +d13 * det
	result.M32 = -d23 * det
	result.M33 = +d33 * det
	result.M34 = -d43 * det
	result.M41 = -d14 * det
	result.M42 = +d24 * det
	result.M43 = -d34 * det
	result.M44 = +d44 * det
}

// Transpose returns m with rows and columns swapped.
func Transpose(m Matrix) Matrix {
	var r Matrix
	TransposeTo(&m, &r)
	return r
}

// TransposeTo writes the transpose of value into result. result may alias value.
func TransposeTo(value, result *Matrix) {
	*result = Matrix{
		value.M11, value.M21, value.M31, value.M41,
		value.M12, value.M22, value.M32, value.M42,
		value.M13, value.M23, value.M33, value.M43,
		value.M14, value.M24, value.M34, value.M44,
	}
}
