package gmath

// Transform is a scale, rotation and translation applied in that order.
type Transform struct {
	Translation Vector3
	Orientation Quaternion
	Scale       Vector3
}

// TransformIdentity leaves every point unchanged.
var TransformIdentity = Transform{
	Orientation: QuaternionIdentity,
	Scale:       Vector3{1, 1, 1},
}

// Matrix returns the equivalent affine matrix.
func (t Transform) Matrix() Matrix {
	return Transformation(t.Scale, t.Orientation, t.Translation)
}

// TransformPoint applies the transform to a point.
func (t Transform) TransformPoint(p Vector3) Vector3 {
	return TransformPosition(t.Matrix(), p).Vec3()
}
