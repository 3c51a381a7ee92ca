package gmath

import (
	"math"
	"testing"
)

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	tests := []struct {
		name             string
		eye, forward, up Vector3
	}{
		{"origin looking +z", V3(0, 0, 0), V3(0, 0, 1), V3(0, 1, 0)},
		{"offset looking -z", V3(1, 2, 3), V3(0, 0, -1), V3(0, 1, 0)},
		{"oblique", V3(-4, 7, 2.5), V3(1, -0.5, 2), V3(0, 1, 0)},
		{"z up", V3(10, -3, 6), V3(-1, 1, 0), V3(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.eye.Add(tt.forward)
			view := LookAt(tt.eye, target, tt.up)

			assertVec4(t, "eye in view space", TransformPosition(view, tt.eye), V4(0, 0, 0, 1), 1e-5)

			// The target lies on the +Z view axis at its distance from the eye.
			p := TransformPosition(view, target)
			assertVec4(t, "target in view space", p, V4(0, 0, tt.forward.Length(), 1), 1e-5)

			if d := view.RotDeterminant(); !NearEqual(d, 1, 1e-5) {
				t.Errorf("RotDeterminant() = %v, want 1", d)
			}
		})
	}
}

func TestLookAtUpStaysUp(t *testing.T) {
	view := LookAt(V3(0, 0, -5), V3(0, 0, 0), V3(0, 1, 0))
	// A point above the target appears above the view axis.
	p := TransformPosition(view, V3(0, 1, 0))
	assertVec4(t, "above target", p, V4(0, 1, 5, 1), 1e-6)
	// And a point to the right (+x) appears at +x.
	p = TransformPosition(view, V3(1, 0, 0))
	assertVec4(t, "right of target", p, V4(1, 0, 5, 1), 1e-6)
}

func TestBillboard(t *testing.T) {
	m := Billboard(V3(0, 0, 0), V3(0, 0, 10), V3(0, 1, 0), V3(0, 0, -1))
	assertMatrix(t, "facing +z camera", m, Identity, 1e-6)

	obj := V3(4, 1, -2)
	cam := V3(-3, 5, 8)
	m = Billboard(obj, cam, V3(0, 1, 0), V3(0, 0, 1))
	assertVec3(t, "backward faces camera", m.Backward(), cam.Sub(obj).Normalize(), 1e-6)
	assertVec3(t, "positioned at object", m.TranslationVector(), obj, 0)
	if d := m.RotDeterminant(); !NearEqual(d, 1, 1e-5) {
		t.Errorf("RotDeterminant() = %v, want 1", d)
	}
}

func TestBillboardAtCameraFallsBackToForward(t *testing.T) {
	pos := V3(1, 2, 3)
	forward := V3(0, 0, 1)
	m := Billboard(pos, pos, V3(0, 1, 0), forward)

	want := Matrix{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		1, 2, 3, 1,
	}
	assertMatrix(t, "fallback", m, want, 1e-6)
	for _, v := range m.Values() {
		for _, x := range v {
			if math.IsNaN(float64(x)) {
				t.Fatalf("fallback produced NaN: %v", m)
			}
		}
	}
}

func TestOrthoOffCenter(t *testing.T) {
	m := OrthoOffCenter(-10, 30, -5, 15, 1, 101)
	assertVec4(t, "near bottom left", TransformPosition(m, V3(-10, -5, 1)), V4(-1, -1, 0, 1), 1e-6)
	assertVec4(t, "far top right", TransformPosition(m, V3(30, 15, 101)), V4(1, 1, 1, 1), 1e-6)
	assertVec4(t, "center", TransformPosition(m, V3(10, 5, 51)), V4(0, 0, 0.5, 1), 1e-6)

	assertMatrix(t, "Ortho", Ortho(8, 6, 0.5, 20), OrthoOffCenter(-4, 4, -3, 3, 0.5, 20), 0)
}

func TestPerspectiveOffCenter(t *testing.T) {
	tests := []struct {
		name                                 string
		left, right, bottom, top, zNear, zFar float32
	}{
		{"symmetric", -1, 1, -1, 1, 1, 100},
		{"off-center", -0.2, 0.6, -0.1, 0.3, 0.5, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := PerspectiveOffCenter(tt.left, tt.right, tt.bottom, tt.top, tt.zNear, tt.zFar)

			ndc := func(p Vector4) Vector3 { return p.Vec3().Mul(1 / p.W) }

			near := TransformPosition(m, V3(tt.left, tt.bottom, tt.zNear))
			assertVec3(t, "near corner", ndc(near), V3(-1, -1, 0), 1e-5)

			near = TransformPosition(m, V3(tt.right, tt.top, tt.zNear))
			assertVec3(t, "opposite near corner", ndc(near), V3(1, 1, 0), 1e-5)

			s := tt.zFar / tt.zNear
			far := TransformPosition(m, V3(tt.right*s, tt.bottom*s, tt.zFar))
			assertVec3(t, "far corner", ndc(far), V3(1, -1, 1), 1e-4)

			if far.W != tt.zFar {
				t.Errorf("w = %v, want view z %v", far.W, tt.zFar)
			}
		})
	}
}

func TestPerspectiveFov(t *testing.T) {
	m := PerspectiveFov(math.Pi/2, 1, 1, 10)
	if !NearEqual(m.M11, 1, 1e-6) || !NearEqual(m.M22, 1, 1e-6) {
		t.Errorf("90° square fov: M11=%v M22=%v, want 1", m.M11, m.M22)
	}
	if m.M34 != 1 || m.M44 != 0 {
		t.Errorf("projective column = (%v, %v), want (1, 0)", m.M34, m.M44)
	}

	fov, aspect, zn, zf := float32(1.1), float32(16.0/9.0), float32(0.1), float32(500)
	got := PerspectiveFov(fov, aspect, zn, zf)
	yScale := 1 / tanf(fov/2)
	if !NearEqual(got.M22, yScale, 1e-5) || !NearEqual(got.M11, yScale/aspect, 1e-5) {
		t.Errorf("scales: M11=%v M22=%v, want %v %v", got.M11, got.M22, yScale/aspect, yScale)
	}
	if got.M31 != 0 || got.M32 != 0 {
		t.Errorf("symmetric frustum has off-center terms: M31=%v M32=%v", got.M31, got.M32)
	}
}

func TestCreateWorld(t *testing.T) {
	pos := V3(5, 6, 7)
	m := CreateWorld(pos, V3(0, 0, -1), V3(0, 1, 0))
	assertMatrix(t, "canonical", m, Translation(pos), 1e-6)

	forward := V3(1, 0, 1)
	m = CreateWorld(V3(0, 0, 0), forward, V3(0, 1, 0.3))
	assertVec3(t, "forward", m.Forward(), forward.Normalize(), 1e-6)
	if d := m.RotDeterminant(); !NearEqual(d, 1, 1e-5) {
		t.Errorf("RotDeterminant() = %v, want 1", d)
	}
	r, u, b := m.Right(), m.Up(), m.Backward()
	if !NearEqual(r.Dot(u), 0, 1e-6) || !NearEqual(u.Dot(b), 0, 1e-6) || !NearEqual(r.Dot(b), 0, 1e-6) {
		t.Errorf("basis not orthogonal: %v %v %v", r, u, b)
	}
	if !NearEqual(u.Length(), 1, 1e-6) {
		t.Errorf("|up| = %v, want 1", u.Length())
	}
}

func TestTransformPosition4(t *testing.T) {
	m := Multiply(RotationZ(math.Pi/2), TranslationXYZ(10, 0, 0))

	// Directions (w = 0) ignore translation.
	assertVec4(t, "direction", TransformPosition4(m, V4(1, 0, 0, 0)), V4(0, 1, 0, 0), 1e-6)
	// Points (w = 1) do not.
	assertVec4(t, "point", TransformPosition4(m, V4(1, 0, 0, 1)), V4(10, 1, 0, 1), 1e-6)
	assertVec4(t, "3-component", TransformPosition(m, V3(1, 0, 0)), V4(10, 1, 0, 1), 1e-6)
	assertVec3(t, "normal", TransformNormal(m, V3(1, 0, 0)), V3(0, 1, 0), 1e-6)
}
