package mesh

import (
	"math"

	"github.com/matzehuels/ribpatch/pkg/geom"
)

// DefaultPrecision is the number of decimal digits compared when deduplicating.
const DefaultPrecision = 6

// Key is the canonical form of a point. Keys are only used for equality.
type Key [3]keyCoord

// keyCoord is one canonical coordinate. Below the exact threshold v holds the
// coordinate scaled by 10^precision and rounded half to even; at or above it
// rounding changes nothing, so v holds the coordinate itself and exact is set
// to keep the two ranges apart.
type keyCoord struct {
	v     float64
	exact bool
}

// keyer computes keys for a fixed precision.
type keyer struct {
	scale float64
	exact float64 // magnitude from which coordinates are keyed as-is
}

func newKeyer(precision int) keyer {
	scale := math.Pow(10, float64(precision))
	return keyer{scale: scale, exact: (1 << 52) / scale}
}

// key returns the canonical key of p. Positive and negative zero compare
// equal as map keys, so -0.0000001 and 0 share a key.
func (k keyer) key(p geom.Point3) Key {
	return Key{k.coord(p.X), k.coord(p.Y), k.coord(p.Z)}
}

func (k keyer) coord(v float64) keyCoord {
	if math.Abs(v) >= k.exact {
		return keyCoord{v: v, exact: true}
	}
	return keyCoord{v: math.RoundToEven(v * k.scale)}
}
