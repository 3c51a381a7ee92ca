// Package gmath provides the 4×4 matrix algebra a real-time renderer
// needs: affine and projective transform construction, composition,
// inversion, decomposition, and camera/projection builders.
//
// # Quick Start
//
//	import "github.com/gogpu/gmath"
//
//	world := gmath.Transformation(
//		gmath.V3(2, 2, 2),
//		gmath.QuaternionRotationAxis(gmath.V3(0, 1, 0), math.Pi/4),
//		gmath.V3(10, 0, 0),
//	)
//	view := gmath.LookAt(gmath.V3(0, 5, -10), gmath.V3(0, 0, 0), gmath.V3(0, 1, 0))
//	proj := gmath.PerspectiveFov(math.Pi/3, 16.0/9.0, 0.1, 1000)
//	clip := gmath.TransformPosition(world.Mul(view).Mul(proj), gmath.V3(0, 0, 0))
//
// # Conventions
//
// One convention is used everywhere and is not configurable:
//   - Matrices are row-major with fields M11..M44.
//   - Vectors are rows: v' = v * M. Multiply(a, b) applies a, then b.
//   - Translation lives in row 4 (M41, M42, M43).
//   - Projections map depth to [0, 1] and put view-space z into w.
//   - Angles are radians; all storage is float32.
//
// Libraries that use column vectors (mgl32) see the transpose; the
// conversions in this package handle that at the boundary.
//
// # Degenerate input
//
// Numerical degeneracy never panics and never returns an error. Invert
// returns Zero for singular matrices, DecomposeMatrix returns an Identity
// rotation when a scale axis is zero, and Billboard faces -cameraForward
// when the object sits at the camera. Callers compare against these
// sentinels where degeneracy is possible.
//
// Out-of-contract input that the library chooses to check (a degenerate
// Skew configuration) panics.
//
// # Call shapes
//
// Builders come in two forms: a function returning a Matrix, and a ...To
// form writing into a caller-owned *Matrix. MultiplyTo and TransposeTo
// accept a result that aliases an input; InvertTo does not.
//
// All functions are pure over their arguments and safe for concurrent use
// on distinct data.
package gmath
