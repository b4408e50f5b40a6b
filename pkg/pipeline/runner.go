package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/geom"
	ribio "github.com/matzehuels/ribpatch/pkg/io"
	"github.com/matzehuels/ribpatch/pkg/mesh"
	"github.com/matzehuels/ribpatch/pkg/observability"
	"github.com/matzehuels/ribpatch/pkg/rib"
)

// Runner executes conversion runs.
//
// The Runner holds no per-run state, so one Runner may serve several runs,
// but each run itself is single-threaded.
type Runner struct {
	Logger *log.Logger

	// SceneHooks receives per-directive events during interpretation.
	SceneHooks rib.Hooks
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs interpret → index → encode. The output file is only written
// when the first two stages succeed, and is replaced atomically.
// Cancelling ctx aborts the run between stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Interpret
	start := time.Now()
	patches, scene, err := r.Interpret(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	result.Stats.InterpretTime = time.Since(start)
	result.Stats.Lines = scene.Lines()
	result.Stats.PatchCount = len(patches)
	result.OpenScopes = scene.Depth()

	r.Logger.Debug("interpreted scene",
		"lines", result.Stats.Lines,
		"patches", len(patches),
		"duration", result.Stats.InterpretTime)
	if result.OpenScopes > 0 {
		r.Logger.Warn("scene ends inside TransformBegin", "open", result.OpenScopes)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Index
	start = time.Now()
	m := r.Index(ctx, patches, opts.Precision)
	result.Mesh = m
	result.Stats.IndexTime = time.Since(start)
	result.Stats.PointCount = len(m.Points)

	r.Logger.Debug("indexed control points",
		"references", m.References(),
		"unique", len(m.Points),
		"duration", result.Stats.IndexTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Encode
	start = time.Now()
	if err := r.Encode(ctx, m, opts.Output, opts.Format); err != nil {
		return nil, err
	}
	result.Stats.EncodeTime = time.Since(start)

	r.Logger.Debug("wrote mesh",
		"output", opts.Output,
		"format", opts.Format,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// Interpret reads the scene at input and returns its patches together with
// the interpreter, which reports line count and open scopes.
func (r *Runner) Interpret(ctx context.Context, input string) (patches []geom.Patch, scene *rib.Interpreter, err error) {
	hooks := observability.Pipeline()
	hooks.OnInterpretStart(ctx, input)
	start := time.Now()
	defer func() {
		hooks.OnInterpretComplete(ctx, input, len(patches), time.Since(start), err)
	}()

	f, err := os.Open(input)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", input)
	}
	defer f.Close()

	scene = rib.NewInterpreter(rib.WithHooks(r.SceneHooks))
	if err := scene.Run(f); err != nil {
		return nil, nil, err
	}
	return scene.Patches(), scene, nil
}

// Index deduplicates the control points of patches at the given precision.
func (r *Runner) Index(ctx context.Context, patches []geom.Patch, precision int) *mesh.Mesh {
	hooks := observability.Pipeline()
	hooks.OnIndexStart(ctx, len(patches))
	start := time.Now()

	m := mesh.Build(patches, mesh.WithPrecision(precision))

	hooks.OnIndexComplete(ctx, len(m.Points), time.Since(start))
	return m
}

// Encode writes m to output in the given format.
func (r *Runner) Encode(ctx context.Context, m *mesh.Mesh, output, format string) (err error) {
	hooks := observability.Pipeline()
	hooks.OnEncodeStart(ctx, format, output)
	start := time.Now()
	defer func() {
		hooks.OnEncodeComplete(ctx, format, output, time.Since(start), err)
	}()

	switch format {
	case FormatJSON:
		return ribio.ExportJSON(m, output)
	case FormatText:
		return ribio.ExportPatch(m, output)
	default:
		return ValidateFormat(format)
	}
}
