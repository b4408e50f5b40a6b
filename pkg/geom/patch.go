package geom

import "github.com/matzehuels/ribpatch/pkg/errors"

// PatchSize is the number of control points of a bicubic patch.
const PatchSize = 16

// Patch is the 4x4 control net of a bicubic Bézier patch, in source order.
type Patch [PatchSize]Point3

// NewPatch groups a flat coordinate list into a patch.
//
// The list must hold exactly 48 values. A length that is not a multiple of
// three fails with BAD_CONTROL_POINT_COUNT; any other point count than 16
// fails with WRONG_PATCH_SIZE.
func NewPatch(coords []float64) (Patch, error) {
	if len(coords)%3 != 0 {
		return Patch{}, errors.New(errors.ErrCodeBadControlPointCount,
			"control point list has %d values, not a multiple of 3", len(coords))
	}
	if n := len(coords) / 3; n != PatchSize {
		return Patch{}, errors.New(errors.ErrCodeWrongPatchSize,
			"bicubic patch needs %d control points, got %d", PatchSize, n)
	}

	var p Patch
	for i := range p {
		p[i] = Point3{X: coords[3*i], Y: coords[3*i+1], Z: coords[3*i+2]}
	}
	return p, nil
}

// Transform returns p with every control point mapped through t.
func (p Patch) Transform(t Transform) Patch {
	for i, pt := range p {
		p[i] = t.Apply(pt)
	}
	return p
}
