package rib

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/geom"
)

// Recognized directive names.
const (
	CmdTransformBegin = "TransformBegin"
	CmdTransformEnd   = "TransformEnd"
	CmdTranslate      = "Translate"
	CmdScale          = "Scale"
	CmdRotate         = "Rotate"
	CmdPatch          = "Patch"
)

// patchMarker identifies a bicubic patch declaration anywhere on a line.
const patchMarker = `Patch "bicubic"`

// patchList matches the first bracketed list on a line.
var patchList = regexp.MustCompile(`\[(.*?)\]`)

// exec dispatches a trimmed line. Prefix order matters: the patch marker is
// only considered when no transform directive matched.
func (in *Interpreter) exec(line string) error {
	switch {
	case strings.HasPrefix(line, CmdTransformBegin):
		in.hooks.OnCommand(in.line, CmdTransformBegin)
		in.stack.Push()
	case strings.HasPrefix(line, CmdTransformEnd):
		in.hooks.OnCommand(in.line, CmdTransformEnd)
		return in.stack.Pop()
	case strings.HasPrefix(line, CmdTranslate):
		in.hooks.OnCommand(in.line, CmdTranslate)
		args, err := parseArgs(CmdTranslate, line, 3)
		if err != nil {
			return err
		}
		in.stack.Apply(geom.Translate(args[0], args[1], args[2]))
	case strings.HasPrefix(line, CmdScale):
		in.hooks.OnCommand(in.line, CmdScale)
		args, err := parseArgs(CmdScale, line, 3)
		if err != nil {
			return err
		}
		in.stack.Apply(geom.Scale(args[0], args[1], args[2]))
	case strings.HasPrefix(line, CmdRotate):
		in.hooks.OnCommand(in.line, CmdRotate)
		args, err := parseArgs(CmdRotate, line, 4)
		if err != nil {
			return err
		}
		r, err := geom.Rotate(args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		in.stack.Apply(r)
	case strings.Contains(line, patchMarker):
		in.hooks.OnCommand(in.line, CmdPatch)
		return in.patch(line)
	}
	return nil
}

// patch extracts, validates and transforms one bicubic patch declaration.
func (in *Interpreter) patch(line string) error {
	m := patchList.FindStringSubmatch(line)
	if m == nil {
		return errors.New(errors.ErrCodeMalformedPatch, "patch declaration has no bracketed control point list")
	}

	fields := strings.Fields(m[1])
	coords := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := parseFloat(tok)
		if err != nil {
			return errors.Wrap(errors.ErrCodeNumberParse, err, "patch coordinate %d", i)
		}
		coords[i] = v
	}

	p, err := geom.NewPatch(coords)
	if err != nil {
		return err
	}
	p = p.Transform(in.stack.Top())

	in.patches = append(in.patches, p)
	in.hooks.OnPatch(in.line, p)
	return nil
}

// parseArgs parses exactly n numeric arguments following the directive name.
func parseArgs(cmd, line string, n int) ([]float64, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) != n {
		return nil, errors.New(errors.ErrCodeNumberParse,
			"%s expects %d numeric arguments, got %d", cmd, n, len(fields))
	}

	args := make([]float64, n)
	for i, tok := range fields {
		v, err := parseFloat(tok)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNumberParse, err, "%s argument %d", cmd, i+1)
		}
		args[i] = v
	}
	return args, nil
}

// parseFloat parses a finite float64. NaN and infinities are rejected so they
// cannot leak into the mesh.
func parseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", tok)
	}
	return v, nil
}
