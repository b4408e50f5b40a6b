package geom

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/matzehuels/ribpatch/pkg/errors"
)

// Transform is a 4x4 affine transform in column-major order.
type Transform mgl64.Mat4

// Identity returns the identity transform.
func Identity() Transform {
	return Transform(mgl64.Ident4())
}

// Translate creates a transform representing translation by (x, y, z).
func Translate(x, y, z float64) Transform {
	return Transform(mgl64.Translate3D(x, y, z))
}

// Scale creates a transform representing non-uniform scaling.
func Scale(x, y, z float64) Transform {
	return Transform(mgl64.Scale3D(x, y, z))
}

// Rotate creates a transform representing a rotation of deg degrees about the
// axis (x, y, z). The axis is normalized first, so it need not be unit length,
// but it must not be the zero vector.
//
// Positive angles follow the right-hand rule: Rotate(90, 0, 0, 1) maps +X onto +Y.
func Rotate(deg, x, y, z float64) (Transform, error) {
	axis := mgl64.Vec3{x, y, z}
	if axis.Len() == 0 {
		return Transform{}, errors.New(errors.ErrCodeDegenerateAxis,
			"rotation axis (%g, %g, %g) has zero length", x, y, z)
	}
	return Transform(mgl64.HomogRotate3D(mgl64.DegToRad(deg), axis.Normalize())), nil
}

// Mul returns t × o. Applied to a point, o acts first and t second.
func (t Transform) Mul(o Transform) Transform {
	return Transform(mgl64.Mat4(t).Mul4(mgl64.Mat4(o)))
}

// Apply maps p through t as the homogeneous point (x, y, z, 1) and keeps the
// first three coordinates of the result.
func (t Transform) Apply(p Point3) Point3 {
	v := mgl64.Mat4(t).Mul4x1(p.Vec3().Vec4(1))
	return pointFromVec(v.Vec3())
}

// At returns the element at row, col.
func (t Transform) At(row, col int) float64 {
	return mgl64.Mat4(t).At(row, col)
}

// ApproxEqual reports whether every element of t and o differs by at most eps.
func (t Transform) ApproxEqual(o Transform, eps float64) bool {
	return mgl64.Mat4(t).ApproxEqualThreshold(mgl64.Mat4(o), eps)
}
