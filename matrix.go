package gmath

import "fmt"

// Matrix is a 4×4 single-precision matrix stored row-major:
//
//	| M11 M12 M13 M14 |
//	| M21 M22 M23 M24 |
//	| M31 M32 M33 M34 |
//	| M41 M42 M43 M44 |
//
// Vectors are rows and are transformed as v' = v * M, so Multiply(a, b)
// applies a first and then b. Rows 1-3 hold the right, up and backward
// basis vectors (rotation, scale and skew); row 4 holds the translation.
// Column 4 is (0, 0, 0, 1) for affine matrices and carries the projective
// terms for projection matrices.
type Matrix struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// Identity is the identity matrix.
var Identity = Matrix{
	M11: 1,
	M22: 1,
	M33: 1,
	M44: 1,
}

// Zero is the matrix with every element set to zero. Invert returns it for
// singular input.
var Zero = Matrix{}

// MatrixFromValues builds a matrix from a [row][column] array.
func MatrixFromValues(v [4][4]float32) Matrix {
	return Matrix{
		v[0][0], v[0][1], v[0][2], v[0][3],
		v[1][0], v[1][1], v[1][2], v[1][3],
		v[2][0], v[2][1], v[2][2], v[2][3],
		v[3][0], v[3][1], v[3][2], v[3][3],
	}
}

// Values returns the elements as a [row][column] array.
func (m Matrix) Values() [4][4]float32 {
	return [4][4]float32{
		{m.M11, m.M12, m.M13, m.M14},
		{m.M21, m.M22, m.M23, m.M24},
		{m.M31, m.M32, m.M33, m.M34},
		{m.M41, m.M42, m.M43, m.M44},
	}
}

// Row returns row i (0-based). It panics if i is out of range.
func (m Matrix) Row(i int) Vector4 {
	switch i {
	case 0:
		return Vector4{m.M11, m.M12, m.M13, m.M14}
	case 1:
		return Vector4{m.M21, m.M22, m.M23, m.M24}
	case 2:
		return Vector4{m.M31, m.M32, m.M33, m.M34}
	case 3:
		return Vector4{m.M41, m.M42, m.M43, m.M44}
	}
	panic(fmt.Sprintf("gmath: matrix row %d out of range", i))
}

// Column returns column i (0-based). It panics if i is out of range.
func (m Matrix) Column(i int) Vector4 {
	switch i {
	case 0:
		return Vector4{m.M11, m.M21, m.M31, m.M41}
	case 1:
		return Vector4{m.M12, m.M22, m.M32, m.M42}
	case 2:
		return Vector4{m.M13, m.M23, m.M33, m.M43}
	case 3:
		return Vector4{m.M14, m.M24, m.M34, m.M44}
	}
	panic(fmt.Sprintf("gmath: matrix column %d out of range", i))
}

// Right returns the first row of the 3×3 block.
func (m Matrix) Right() Vector3 { return Vector3{m.M11, m.M12, m.M13} }

// Up returns the second row of the 3×3 block.
func (m Matrix) Up() Vector3 { return Vector3{m.M21, m.M22, m.M23} }

// Backward returns the third row of the 3×3 block.
func (m Matrix) Backward() Vector3 { return Vector3{m.M31, m.M32, m.M33} }

// Forward returns the negated third row of the 3×3 block.
func (m Matrix) Forward() Vector3 { return Vector3{-m.M31, -m.M32, -m.M33} }

// TranslationVector returns row 4.
func (m Matrix) TranslationVector() Vector3 { return Vector3{m.M41, m.M42, m.M43} }

// SetRight overwrites the first row of the 3×3 block.
func (m *Matrix) SetRight(v Vector3) { m.M11, m.M12, m.M13 = v.X, v.Y, v.Z }

// SetUp overwrites the second row of the 3×3 block.
func (m *Matrix) SetUp(v Vector3) { m.M21, m.M22, m.M23 = v.X, v.Y, v.Z }

// SetBackward overwrites the third row of the 3×3 block.
func (m *Matrix) SetBackward(v Vector3) { m.M31, m.M32, m.M33 = v.X, v.Y, v.Z }

// SetTranslationVector overwrites row 4 columns 1-3.
func (m *Matrix) SetTranslationVector(v Vector3) { m.M41, m.M42, m.M43 = v.X, v.Y, v.Z }

// Multiply returns a * b. Applied to a row vector, a acts first.
func Multiply(a, b Matrix) Matrix {
	var r Matrix
	MultiplyTo(&a, &b, &r)
	return r
}

// MultiplyTo writes a * b into result. result may alias a or b.
func MultiplyTo(a, b, result *Matrix) {
	*result = Matrix{
		M11: a.M11*b.M11 + a.M12*b.M21 + a.M13*b.M31 + a.M14*b.M41,
		M12: a.M11*b.M12 + a.M12*b.M22 + a.M13*b.M32 + a.M14*b.M42,
		M13: a.M11*b.M13 + a.M12*b.M23 + a.M13*b.M33 + a.M14*b.M43,
		M14: a.M11*b.M14 + a.M12*b.M24 + a.M13*b.M34 + a.M14*b.M44,

		M21: a.M21*b.M11 + a.M22*b.M21 + a.M23*b.M31 + a.M24*b.M41,
		M22: a.M21*b.M12 + a.M22*b.M22 + a.M23*b.M32 + a.M24*b.M42,
		M23: a.M21*b.M13 + a.M22*b.M23 + a.M23*b.M33 + a.M24*b.M43,
		M24: a.M21*b.M14 + a.M22*b.M24 + a.M23*b.M34 + a.M24*b.M44,

		M31: a.M31*b.M11 + a.M32*b.M21 + a.M33*b.M31 + a.M34*b.M41,
		M32: a.M31*b.M12 + a.M32*b.M22 + a.M33*b.M32 + a.M34*b.M42,
		M33: a.M31*b.M13 + a.M32*b.M23 + a.M33*b.M33 + a.M34*b.M43,
		M34: a.M31*b.M14 + a.M32*b.M24 + a.M33*b.M34 + a.M34*b.M44,

		M41: a.M41*b.M11 + a.M42*b.M21 + a.M43*b.M31 + a.M44*b.M41,
		M42: a.M41*b.M12 + a.M42*b.M22 + a.M43*b.M32 + a.M44*b.M42,
		M43: a.M41*b.M13 + a.M42*b.M23 + a.M43*b.M33 + a.M44*b.M43,
		M44: a.M41*b.M14 + a.M42*b.M24 + a.M43*b.M34 + a.M44*b.M44,
	}
}

// Mul returns m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	return Multiply(m, other)
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// IsAffine returns true if column 4 is exactly (0, 0, 0, 1).
func (m Matrix) IsAffine() bool {
	return m.M14 == 0 && m.M24 == 0 && m.M34 == 0 && m.M44 == 1
}

// Approx reports whether every element of m is within epsilon of other.
func (m Matrix) Approx(other Matrix, epsilon float32) bool {
	a, b := m.Values(), other.Values()
	for r := range 4 {
		for c := range 4 {
			if !NearEqual(a[r][c], b[r][c], epsilon) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix as its 16 named elements.
func (m Matrix) String() string {
	return fmt.Sprintf("[M11:%g M12:%g M13:%g M14:%g] [M21:%g M22:%g M23:%g M24:%g] "+
		"[M31:%g M32:%g M33:%g M34:%g] [M41:%g M42:%g M43:%g M44:%g]",
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44)
}
