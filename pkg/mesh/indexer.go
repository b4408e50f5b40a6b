package mesh

import "github.com/matzehuels/ribpatch/pkg/geom"

// Indexer assigns stable indices to points in first-seen order.
// It is the insertion-ordered point table behind [Build].
type Indexer struct {
	keyer  keyer
	index  map[Key]int
	points []geom.Point3
}

// NewIndexer returns an empty indexer comparing points at the given number
// of decimal digits.
func NewIndexer(precision int) *Indexer {
	return &Indexer{
		keyer: newKeyer(precision),
		index: make(map[Key]int),
	}
}

// Add returns the index of p, assigning the next free index if no point with
// the same key has been added before.
func (ix *Indexer) Add(p geom.Point3) int {
	k := ix.keyer.key(p)
	if i, ok := ix.index[k]; ok {
		return i
	}
	i := len(ix.points)
	ix.points = append(ix.points, p)
	ix.index[k] = i
	return i
}

// Lookup returns the index of p without adding it.
func (ix *Indexer) Lookup(p geom.Point3) (int, bool) {
	i, ok := ix.index[ix.keyer.key(p)]
	return i, ok
}

// Len returns the number of distinct points.
func (ix *Indexer) Len() int {
	return len(ix.points)
}

// Points returns the distinct points in index order.
func (ix *Indexer) Points() []geom.Point3 {
	return ix.points
}
