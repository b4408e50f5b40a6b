// Package rib interprets the subset of the RenderMan scene format that
// describes transformed bicubic patches.
//
// # Directives
//
// The interpreter reads one directive per line. Lines are trimmed and matched
// by prefix, case-sensitively:
//
//	TransformBegin               push a copy of the current transform
//	TransformEnd                 pop the current transform
//	Translate x y z              top = top × Translate(x, y, z)
//	Scale x y z                  top = top × Scale(x, y, z)
//	Rotate angle x y z           top = top × Rotate(angle°, axis)
//	... Patch "bicubic" ... [ n0 n1 ... n47 ]
//
// Any other line (comments, attributes, other primitives) is skipped. Patch
// control points are mapped through the transform in effect on the line that
// declares them, so the returned patches are all in the root frame.
//
// # Errors
//
// Interpretation stops at the first failure. Errors are [errors.Error]
// values carrying the offending line number; see the codes
// STACK_UNDERFLOW, NUMBER_PARSE, DEGENERATE_AXIS, MALFORMED_PATCH,
// BAD_CONTROL_POINT_COUNT and WRONG_PATCH_SIZE.
//
// # Usage
//
//	patches, err := rib.ParseFile("teapot.rib")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [errors.Error]: github.com/matzehuels/ribpatch/pkg/errors.Error
package rib
