package mesh

import (
	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/geom"
)

// Mesh is an indexed bicubic patch mesh.
type Mesh struct {
	// Patches holds 16 point indices per patch, in declaration order.
	Patches [][geom.PatchSize]int

	// Points holds the distinct control points in index order, unrounded.
	Points []geom.Point3
}

type options struct {
	precision int
}

// Option configures Build.
type Option func(*options)

// WithPrecision sets the number of decimal digits compared when deciding
// whether two points are the same. Negative values are ignored.
func WithPrecision(digits int) Option {
	return func(o *options) {
		if digits >= 0 {
			o.precision = digits
		}
	}
}

// Build deduplicates the control points of patches and rewrites every patch
// as indices into the resulting point list.
func Build(patches []geom.Patch, opts ...Option) *Mesh {
	o := options{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}

	ix := NewIndexer(o.precision)
	m := &Mesh{Patches: make([][geom.PatchSize]int, len(patches))}
	for i, p := range patches {
		for j, pt := range p {
			m.Patches[i][j] = ix.Add(pt)
		}
	}
	m.Points = ix.Points()
	return m
}

// Patch reconstructs patch i from its indices.
func (m *Mesh) Patch(i int) geom.Patch {
	var p geom.Patch
	for j, idx := range m.Patches[i] {
		p[j] = m.Points[idx]
	}
	return p
}

// Validate checks that every patch index refers to an existing point.
func (m *Mesh) Validate() error {
	for i, p := range m.Patches {
		for j, idx := range p {
			if idx < 0 || idx >= len(m.Points) {
				return errors.New(errors.ErrCodeInvalidMesh,
					"patch %d point %d: index %d out of range [0, %d)", i, j, idx, len(m.Points))
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the mesh points.
// ok is false for a mesh without points.
func (m *Mesh) Bounds() (lo, hi geom.Point3, ok bool) {
	if len(m.Points) == 0 {
		return geom.Point3{}, geom.Point3{}, false
	}
	lo, hi = m.Points[0], m.Points[0]
	for _, p := range m.Points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi, true
}

// References returns the total number of point references, 16 per patch.
func (m *Mesh) References() int {
	return len(m.Patches) * geom.PatchSize
}
