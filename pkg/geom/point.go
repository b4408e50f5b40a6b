package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a position in 3D space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Vec3 returns p as an mgl64 vector.
func (p Point3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Splat returns the coordinates of p.
func (p Point3) Splat() (float64, float64, float64) {
	return p.X, p.Y, p.Z
}

// ApproxEqual reports whether every coordinate of p and o differs by at most eps.
func (p Point3) ApproxEqual(o Point3, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps &&
		math.Abs(p.Y-o.Y) <= eps &&
		math.Abs(p.Z-o.Z) <= eps
}

// Min returns the component-wise minimum of p and o.
func (p Point3) Min(o Point3) Point3 {
	return Point3{math.Min(p.X, o.X), math.Min(p.Y, o.Y), math.Min(p.Z, o.Z)}
}

// Max returns the component-wise maximum of p and o.
func (p Point3) Max(o Point3) Point3 {
	return Point3{math.Max(p.X, o.X), math.Max(p.Y, o.Y), math.Max(p.Z, o.Z)}
}

func pointFromVec(v mgl64.Vec3) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}
