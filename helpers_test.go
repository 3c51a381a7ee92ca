package gmath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares float32 fields with an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func assertMatrix(t *testing.T, name string, got, want Matrix, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx(margin)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

func assertVec3(t *testing.T, name string, got, want Vector3, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx(margin)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

func assertVec4(t *testing.T, name string, got, want Vector4, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx(margin)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// sampleMatrices are well-conditioned matrices covering every builder family.
func sampleMatrices() map[string]Matrix {
	return map[string]Matrix{
		"identity":    Identity,
		"translation": TranslationXYZ(1, -2, 3),
		"scaling":     Scaling(2, 0.5, 4),
		"rotation x":  RotationX(0.7),
		"rotation y":  RotationY(-1.1),
		"rotation z":  RotationZ(2.3),
		"axis":        RotationAxis(V3(1, 2, 2).Normalize(), 0.9),
		"trs": Transformation(V3(1.5, 2, 0.75),
			QuaternionYawPitchRoll(0.4, -0.3, 1.2), V3(10, -4, 7)),
		"perspective": PerspectiveFov(1.2, 1.5, 0.5, 200),
		"ortho":       OrthoOffCenter(-4, 6, -2, 3, 1, 50),
		"look at":     LookAt(V3(3, 4, -5), V3(0, 1, 0), V3(0, 1, 0)),
		"dense": {
			2, 1, 0, 3,
			-1, 4, 2, 0,
			0.5, -2, 3, 1,
			1, 0, -1, 5,
		},
	}
}
