package io

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/geom"
	"github.com/matzehuels/ribpatch/pkg/mesh"
)

// lineReader yields the non-blank lines of a .patch file with their numbers.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *lineReader) next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		if s := strings.TrimSpace(r.scanner.Text()); s != "" {
			return s, nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "read after line %d", r.line)
	}
	return "", r.fail("unexpected end of file")
}

func (r *lineReader) fail(format string, args ...any) error {
	return errors.WithLine(errors.New(errors.ErrCodeInvalidFormat, format, args...), r.line)
}

func (r *lineReader) count(what string) (int, error) {
	s, err := r.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, r.fail("invalid %s count %q", what, s)
	}
	return n, nil
}

// fields splits a comma-separated record and checks its arity.
func (r *lineReader) fields(want int) ([]string, error) {
	s, err := r.next()
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, r.fail("expected %d comma-separated values, got %d", want, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// maxPrealloc caps how many records a header count may reserve up front.
// Larger files grow as their records are read.
const maxPrealloc = 1 << 16

// ReadPatch decodes a .patch document from r.
//
// ReadPatch returns an INVALID_FORMAT error if a count or record is
// malformed, if data follows the last point, or if a patch references a
// point index outside the point list. ReadPatch does not close r.
func ReadPatch(r io.Reader) (*mesh.Mesh, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}

	np, err := lr.count("patch")
	if err != nil {
		return nil, err
	}
	m := &mesh.Mesh{Patches: make([][geom.PatchSize]int, 0, min(np, maxPrealloc))}
	for i := 0; i < np; i++ {
		parts, err := lr.fields(geom.PatchSize)
		if err != nil {
			return nil, err
		}
		var idx [geom.PatchSize]int
		for j, s := range parts {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, lr.fail("patch %d: invalid index %q", i, s)
			}
			idx[j] = v
		}
		m.Patches = append(m.Patches, idx)
	}

	nv, err := lr.count("point")
	if err != nil {
		return nil, err
	}
	m.Points = make([]geom.Point3, 0, min(nv, maxPrealloc))
	for i := 0; i < nv; i++ {
		parts, err := lr.fields(3)
		if err != nil {
			return nil, err
		}
		var xyz [3]float64
		for j, s := range parts {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, lr.fail("point %d: invalid coordinate %q", i, s)
			}
			xyz[j] = v
		}
		m.Points = append(m.Points, geom.Pt3(xyz[0], xyz[1], xyz[2]))
	}

	if s, err := lr.next(); err == nil {
		return nil, lr.fail("unexpected trailing data %q", s)
	} else if errors.Is(err, errors.ErrCodeIO) {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "inconsistent patch file")
	}
	return m, nil
}

// ImportPatch reads the .patch file at path.
func ImportPatch(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadPatch(f)
}

// ReadJSON decodes a JSON mesh document from r and validates its indices.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*mesh.Mesh, error) {
	var data jsonMesh
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}

	m := &mesh.Mesh{
		Patches: data.Patches,
		Points:  make([]geom.Point3, len(data.Points)),
	}
	for i, p := range data.Points {
		m.Points[i] = geom.Pt3(p[0], p[1], p[2])
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "inconsistent mesh")
	}
	return m, nil
}

// ImportJSON reads the JSON mesh file at path.
func ImportJSON(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
