package mesh

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/geom"
)

func gridPatch(dx, dy float64) geom.Patch {
	var p geom.Patch
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p[4*y+x] = geom.Pt3(float64(x)+dx, float64(y)+dy, 0)
		}
	}
	return p
}

func TestBuildSinglePatch(t *testing.T) {
	m := Build([]geom.Patch{gridPatch(0, 0)})

	var want [16]int
	for i := range want {
		want[i] = i
	}
	if d := cmp.Diff([][16]int{want}, m.Patches); d != "" {
		t.Errorf("Patches mismatch (-want +got):\n%s", d)
	}
	if len(m.Points) != 16 {
		t.Fatalf("len(Points) = %d, want 16", len(m.Points))
	}
	if m.Patch(0) != gridPatch(0, 0) {
		t.Error("Patch(0) should reconstruct the input patch")
	}
}

func TestBuildSharedEdge(t *testing.T) {
	// The second patch starts on the last column of the first.
	m := Build([]geom.Patch{gridPatch(0, 0), gridPatch(3, 0)})

	if len(m.Points) != 28 {
		t.Errorf("len(Points) = %d, want 28", len(m.Points))
	}
	for row := 0; row < 4; row++ {
		if got, want := m.Patches[1][4*row], m.Patches[0][4*row+3]; got != want {
			t.Errorf("row %d shared index = %d, want %d", row, got, want)
		}
	}
	if m.Patches[1][1] != 16 {
		t.Errorf("first new point index = %d, want 16", m.Patches[1][1])
	}
}

func TestBuildPrecision(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		merged bool
	}{
		{"differ at 7th digit", 0.1234561, 0.1234564, true},
		{"differ at 5th digit", 0.12341, 0.12342, false},
		{"differ at 6th digit", 0.123451, 0.123452, false},
		{"negative zero", -0.0000001, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := gridPatch(0, 0)
			p[0] = geom.Pt3(tt.a, 5, 5)
			p[1] = geom.Pt3(tt.b, 5, 5)
			m := Build([]geom.Patch{p})

			if got := m.Patches[0][0] == m.Patches[0][1]; got != tt.merged {
				t.Errorf("merged = %v, want %v (indices %d, %d)", got, tt.merged, m.Patches[0][0], m.Patches[0][1])
			}
			if m.Points[0].X != tt.a {
				t.Errorf("stored point X = %v, want unrounded %v", m.Points[0].X, tt.a)
			}
		})
	}
}

func TestBuildWithPrecision(t *testing.T) {
	p := gridPatch(0, 0)
	p[0] = geom.Pt3(0.12341, 9, 9)
	p[1] = geom.Pt3(0.12342, 9, 9)

	m := Build([]geom.Patch{p}, WithPrecision(3))
	if m.Patches[0][0] != m.Patches[0][1] {
		t.Error("points equal at 3 digits should merge")
	}

	m = Build([]geom.Patch{p}, WithPrecision(-1))
	if m.Patches[0][0] == m.Patches[0][1] {
		t.Error("negative precision should fall back to the default")
	}
}

func TestBuildIndexIntegrity(t *testing.T) {
	patches := []geom.Patch{gridPatch(0, 0), gridPatch(0.5, 0.5), gridPatch(3, 3), gridPatch(0, 0)}
	m := Build(patches)

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(m.Patches) != len(patches) {
		t.Fatalf("len(Patches) = %d, want %d", len(m.Patches), len(patches))
	}
	for i, p := range patches {
		got := m.Patch(i)
		for j := range p {
			if !got[j].ApproxEqual(p[j], 1e-6) {
				t.Errorf("patch %d point %d = %v, want %v", i, j, got[j], p[j])
			}
		}
	}
	if m.References() != 64 {
		t.Errorf("References() = %d, want 64", m.References())
	}
}

func TestBuildEmpty(t *testing.T) {
	m := Build(nil)
	if len(m.Patches) != 0 || len(m.Points) != 0 {
		t.Errorf("Build(nil) = %d patches, %d points, want empty", len(m.Patches), len(m.Points))
	}
	if _, _, ok := m.Bounds(); ok {
		t.Error("Bounds() of empty mesh should not be ok")
	}
}

func TestValidateOutOfRange(t *testing.T) {
	m := &Mesh{
		Patches: [][16]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 16}},
		Points:  make([]geom.Point3, 16),
	}
	if err := m.Validate(); !errors.Is(err, errors.ErrCodeInvalidMesh) {
		t.Errorf("Validate() error = %v, want %v", err, errors.ErrCodeInvalidMesh)
	}
}

func TestBounds(t *testing.T) {
	m := Build([]geom.Patch{gridPatch(-1, 2)})
	lo, hi, ok := m.Bounds()
	if !ok {
		t.Fatal("Bounds() not ok")
	}
	if lo != geom.Pt3(-1, 2, 0) || hi != geom.Pt3(2, 5, 0) {
		t.Errorf("Bounds() = %v, %v, want (-1, 2, 0), (2, 5, 0)", lo, hi)
	}
}

func TestIndexer(t *testing.T) {
	ix := NewIndexer(DefaultPrecision)
	a := ix.Add(geom.Pt3(1, 2, 3))
	b := ix.Add(geom.Pt3(4, 5, 6))
	c := ix.Add(geom.Pt3(1.0000001, 2, 3))

	if a != 0 || b != 1 || c != 0 {
		t.Errorf("Add() indices = %d, %d, %d, want 0, 1, 0", a, b, c)
	}
	if i, ok := ix.Lookup(geom.Pt3(4, 5, 6)); !ok || i != 1 {
		t.Errorf("Lookup() = %d, %v, want 1, true", i, ok)
	}
	if _, ok := ix.Lookup(geom.Pt3(7, 8, 9)); ok {
		t.Error("Lookup() of unseen point should miss")
	}
	if ix.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ix.Len())
	}
}

func TestBuildKeyExtremes(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		merged bool
	}{
		{"signed zeros", math.Copysign(0, -1), 0, true},
		{"huge equal", 1e303, 1e303, true},
		{"huge distinct", 1e303, 2e303, false},
		{"opposite max", math.MaxFloat64, -math.MaxFloat64, false},
		{"adjacent above threshold", 5e9, math.Nextafter(5e9, math.Inf(1)), false},
		{"scaled value vs exact value", 5000, 5e9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := gridPatch(0, 0)
			p[0] = geom.Pt3(tt.a, 5, 5)
			p[1] = geom.Pt3(tt.b, 5, 5)
			m := Build([]geom.Patch{p})

			if got := m.Patches[0][0] == m.Patches[0][1]; got != tt.merged {
				t.Errorf("merged = %v, want %v (indices %d, %d)", got, tt.merged, m.Patches[0][0], m.Patches[0][1])
			}
		})
	}
}

func TestBuildHugeCoordinates(t *testing.T) {
	var p geom.Patch
	for i := range p {
		p[i] = geom.Pt3(float64(i+1)*1e303, 0, 0)
	}
	m := Build([]geom.Patch{p})

	if len(m.Points) != geom.PatchSize {
		t.Fatalf("len(Points) = %d, want %d", len(m.Points), geom.PatchSize)
	}
	for i, q := range m.Patch(0) {
		if q != p[i] {
			t.Errorf("point %d = %v, want %v", i, q, p[i])
		}
	}
}
