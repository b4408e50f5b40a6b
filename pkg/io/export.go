package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/geom"
	"github.com/matzehuels/ribpatch/pkg/mesh"
)

// FormatCoord renders a coordinate at full precision using the shortest
// decimal that round-trips. Integral values keep a ".0" suffix and very
// large or small magnitudes switch to exponent form:
//
//	1 -> "1.0"   -0.25 -> "-0.25"   1e16 -> "1e+16"   0.00001 -> "1e-05"
func FormatCoord(v float64) string {
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WritePatch encodes m in the .patch text format and writes it to w.
func WritePatch(m *mesh.Mesh, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", len(m.Patches))
	for _, p := range m.Patches {
		for j, idx := range p {
			if j > 0 {
				bw.WriteString(", ")
			}
			bw.WriteString(strconv.Itoa(idx))
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintf(bw, "%d\n", len(m.Points))
	for _, pt := range m.Points {
		fmt.Fprintf(bw, "%s, %s, %s\n", FormatCoord(pt.X), FormatCoord(pt.Y), FormatCoord(pt.Z))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportPatch writes m to a .patch file at path.
// The file is replaced atomically; on error path is left untouched.
func ExportPatch(m *mesh.Mesh, path string) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return WritePatch(m, w)
	})
}

type jsonMesh struct {
	Patches [][geom.PatchSize]int `json:"patches"`
	Points  [][3]float64          `json:"points"`
}

// WriteJSON encodes m as indented JSON and writes it to w.
func WriteJSON(m *mesh.Mesh, w io.Writer) error {
	out := jsonMesh{
		Patches: make([][geom.PatchSize]int, len(m.Patches)),
		Points:  make([][3]float64, len(m.Points)),
	}
	copy(out.Patches, m.Patches)
	for i, p := range m.Points {
		out.Points[i] = [3]float64{p.X, p.Y, p.Z}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes m to a JSON file at path, atomically like [ExportPatch].
func ExportJSON(m *mesh.Mesh, path string) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		return WriteJSON(m, w)
	})
}

// writeFileAtomic streams write into a temporary sibling of path and renames
// it over path once everything has been written and flushed.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err = f.Chmod(0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "chmod %s", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "rename %s", path)
	}
	return nil
}
