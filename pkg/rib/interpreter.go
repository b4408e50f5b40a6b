package rib

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/ribpatch/pkg/errors"
	"github.com/matzehuels/ribpatch/pkg/geom"
)

// maxLineSize bounds a single directive. Patch declarations are one line, so
// the default 64 KiB scanner buffer is too tight for exporters that pad numbers.
const maxLineSize = 16 << 20

// Hooks receives events while a scene is interpreted.
type Hooks interface {
	// OnCommand is called for every recognized directive.
	OnCommand(line int, name string)

	// OnPatch is called with each patch after it has been transformed.
	OnPatch(line int, p geom.Patch)
}

// NoopHooks is a no-op implementation of Hooks.
type NoopHooks struct{}

func (NoopHooks) OnCommand(int, string)   {}
func (NoopHooks) OnPatch(int, geom.Patch) {}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithHooks registers h to receive interpreter events. A nil h is ignored.
func WithHooks(h Hooks) Option {
	return func(in *Interpreter) {
		if h != nil {
			in.hooks = h
		}
	}
}

// Interpreter holds the state of one pass over a scene: the transform stack,
// the patches emitted so far and the current line number.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	stack   *geom.Stack
	patches []geom.Patch
	hooks   Hooks
	line    int
}

// NewInterpreter returns an interpreter positioned before the first line,
// with only the identity root transform on its stack.
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		stack: geom.NewStack(),
		hooks: NoopHooks{},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Exec interprets the next line of the scene. Errors are annotated with the
// line number; after an error the interpreter should be discarded.
func (in *Interpreter) Exec(line string) error {
	in.line++
	if err := in.exec(strings.TrimSpace(line)); err != nil {
		return errors.WithLine(err, in.line)
	}
	return nil
}

// Patches returns the patches emitted so far, in declaration order.
func (in *Interpreter) Patches() []geom.Patch {
	return in.patches
}

// Depth returns the number of open TransformBegin scopes.
func (in *Interpreter) Depth() int {
	return in.stack.Depth() - 1
}

// Lines returns the number of lines interpreted so far.
func (in *Interpreter) Lines() int {
	return in.line
}

// Run interprets every line read from r. Run does not close r.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := in.Exec(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read scene after line %d", in.line)
	}
	return nil
}

// Parse interprets a whole scene read from r and returns its patches in
// declaration order. Parse does not close r.
func Parse(r io.Reader, opts ...Option) ([]geom.Patch, error) {
	in := NewInterpreter(opts...)
	if err := in.Run(r); err != nil {
		return nil, err
	}
	return in.Patches(), nil
}

// ParseFile reads and interprets the scene file at path.
func ParseFile(path string, opts ...Option) ([]geom.Patch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f, opts...)
}
