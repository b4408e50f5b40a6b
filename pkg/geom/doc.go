// Package geom provides the 3D value types used while flattening a scene:
// points, affine transforms, the nested transform stack and bicubic patches.
//
// Transforms are 4x4 matrices backed by [mgl64.Mat4]. Composition follows the
// scene convention: a command's matrix is appended on the right of the
// cumulative transform, so
//
//	cumulative = cumulative.Mul(Translate(1, 0, 0))
//
// and a point declared afterwards is mapped as cumulative · (x, y, z, 1).
//
// All types here are values. A [Stack] owns its frames; pushing duplicates
// the top so that edits inside a nested scope never leak into the parent.
//
// [mgl64.Mat4]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl64#Mat4
package geom
