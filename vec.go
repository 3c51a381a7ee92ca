package gmath

// Vector2 is a 2-component single-precision vector.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a 3-component single-precision vector.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is a 4-component single-precision vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// V2 is a convenience function to create a Vector2.
func V2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// V3 is a convenience function to create a Vector3.
func V3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// V4 is a convenience function to create a Vector4.
func V4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vector2) Mul(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// LengthSquared returns the squared length of the vector.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of the vector.
func (v Vector2) Length() float32 {
	return sqrtf(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// A vector whose length is within ZeroTolerance of zero is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if IsZero(length) {
		return v
	}
	inv := 1 / length
	return Vector2{X: v.X * inv, Y: v.Y * inv}
}

// IsZero reports whether both components are within ZeroTolerance of zero.
func (v Vector2) IsZero() bool {
	return IsZero(v.X) && IsZero(v.Y)
}

// Approx reports whether v and w are equal within epsilon per component.
func (v Vector2) Approx(w Vector2, epsilon float32) bool {
	return NearEqual(v.X, w.X, epsilon) && NearEqual(v.Y, w.Y, epsilon)
}

// Vec3 extends the vector with Z = 0.
func (v Vector2) Vec3() Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

// Add returns the sum of two vectors.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by s.
func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negation of the vector.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(w Vector3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns the squared length of the vector.
// This is cheaper than Length when only comparing magnitudes.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of the vector.
func (v Vector3) Length() float32 {
	return sqrtf(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// A vector whose length is within ZeroTolerance of zero is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if IsZero(length) {
		return v
	}
	inv := 1 / length
	return Vector3{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}

// IsZero reports whether all components are within ZeroTolerance of zero.
func (v Vector3) IsZero() bool {
	return IsZero(v.X) && IsZero(v.Y) && IsZero(v.Z)
}

// IsAnyZero reports whether any component is exactly zero.
func (v Vector3) IsAnyZero() bool {
	return v.X == 0 || v.Y == 0 || v.Z == 0
}

// Approx reports whether v and w are equal within epsilon per component.
func (v Vector3) Approx(w Vector3, epsilon float32) bool {
	return NearEqual(v.X, w.X, epsilon) &&
		NearEqual(v.Y, w.Y, epsilon) &&
		NearEqual(v.Z, w.Z, epsilon)
}

// Vec4 extends the vector with the given W.
func (v Vector3) Vec4(w float32) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Add returns the sum of two vectors.
func (v Vector4) Add(w Vector4) Vector4 {
	return Vector4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the difference of two vectors.
func (v Vector4) Sub(w Vector4) Vector4 {
	return Vector4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the vector scaled by s.
func (v Vector4) Mul(s float32) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Neg returns the negation of the vector.
func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product of two vectors.
func (v Vector4) Dot(w Vector4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// LengthSquared returns the squared length of the vector.
func (v Vector4) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length of the vector.
func (v Vector4) Length() float32 {
	return sqrtf(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// A vector whose length is within ZeroTolerance of zero is returned unchanged.
func (v Vector4) Normalize() Vector4 {
	length := v.Length()
	if IsZero(length) {
		return v
	}
	return v.Mul(1 / length)
}

// IsZero reports whether all components are within ZeroTolerance of zero.
func (v Vector4) IsZero() bool {
	return IsZero(v.X) && IsZero(v.Y) && IsZero(v.Z) && IsZero(v.W)
}

// Approx reports whether v and w are equal within epsilon per component.
func (v Vector4) Approx(w Vector4, epsilon float32) bool {
	return NearEqual(v.X, w.X, epsilon) &&
		NearEqual(v.Y, w.Y, epsilon) &&
		NearEqual(v.Z, w.Z, epsilon) &&
		NearEqual(v.W, w.W, epsilon)
}

// Vec3 drops the W component.
func (v Vector4) Vec3() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
