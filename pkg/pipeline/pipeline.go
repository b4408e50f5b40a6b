// Package pipeline provides the scene-to-patch conversion pipeline.
//
// The pipeline consists of three stages, run strictly in sequence:
//
//  1. Interpret: stream the scene, apply transforms, collect patches
//  2. Index: deduplicate control points into an indexed mesh
//  3. Encode: write the mesh to the output file
//
// A failure in any stage aborts the run before the output file is touched.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "teapot.rib",
//	    Output: "teapot.patch",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/mesh"
)

// =============================================================================
// Default Values
// =============================================================================

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const (
	// DefaultFormat is the .patch text format.
	DefaultFormat = FormatText

	// DefaultPrecision is the number of decimal digits compared when
	// deduplicating control points. Downstream tools rely on this value.
	DefaultPrecision = mesh.DefaultPrecision

	// MaxPrecision is the largest supported precision; beyond it float64
	// cannot distinguish the rounded values anyway.
	MaxPrecision = 15
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one conversion run.
type Options struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Format    string `json:"format,omitempty"`    // Output format: text (default) or json
	Precision int    `json:"precision,omitempty"` // Dedup digits; 0 selects DefaultPrecision
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Mesh is the indexed patch mesh that was written.
	Mesh *mesh.Mesh

	// OpenScopes counts TransformBegin directives left unclosed at EOF.
	OpenScopes int

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Lines         int
	PatchCount    int
	PointCount    int
	InterpretTime time.Duration
	IndexTime     time.Duration
	EncodeTime    time.Duration
}

// Summary returns the one-line report printed after a successful run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Converted %d patches and %d unique control points.", r.Stats.PatchCount, r.Stats.PointCount)
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidatePrecision checks that a precision is within [1, MaxPrecision].
func ValidatePrecision(digits int) error {
	if digits < 1 || digits > MaxPrecision {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid precision: %d (must be between 1 and %d)", digits, MaxPrecision)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidatePaths(o.Input, o.Output); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Precision == 0 {
		o.Precision = DefaultPrecision
	}
	return ValidatePrecision(o.Precision)
}
