package gmath

import "testing"

var (
	benchMatrix Matrix
	benchFloat  float32
	benchVec    Vector4
)

func benchInput() Matrix {
	return Transformation(V3(1.5, 2, 0.5), QuaternionYawPitchRoll(0.3, 0.2, 0.1), V3(10, 20, 30))
}

func BenchmarkMultiply(b *testing.B) {
	m1 := benchInput()
	m2 := LookAt(V3(1, 2, 3), V3(0, 0, 0), V3(0, 1, 0))
	b.ReportAllocs()
	for b.Loop() {
		benchMatrix = Multiply(m1, m2)
	}
}

func BenchmarkMultiplyTo(b *testing.B) {
	m1 := benchInput()
	m2 := LookAt(V3(1, 2, 3), V3(0, 0, 0), V3(0, 1, 0))
	b.ReportAllocs()
	for b.Loop() {
		MultiplyTo(&m1, &m2, &benchMatrix)
	}
}

func BenchmarkInvert(b *testing.B) {
	m := benchInput()
	b.ReportAllocs()
	for b.Loop() {
		InvertTo(&m, &benchMatrix)
	}
}

func BenchmarkDeterminant(b *testing.B) {
	m := benchInput()
	b.ReportAllocs()
	for b.Loop() {
		benchFloat = m.Determinant()
	}
}

func BenchmarkTransformation(b *testing.B) {
	q := QuaternionYawPitchRoll(0.3, 0.2, 0.1)
	b.ReportAllocs()
	for b.Loop() {
		TransformationTo(V3(1, 2, 3), q, V3(4, 5, 6), &benchMatrix)
	}
}

func BenchmarkDecompose(b *testing.B) {
	m := benchInput()
	b.ReportAllocs()
	for b.Loop() {
		_, benchMatrix, _ = m.DecomposeMatrix()
	}
}

func BenchmarkTransformPosition(b *testing.B) {
	m := benchInput()
	v := V3(1, 2, 3)
	b.ReportAllocs()
	for b.Loop() {
		benchVec = TransformPosition(m, v)
	}
}
