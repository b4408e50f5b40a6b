package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ribpatch/pkg/geom"
	"github.com/matzehuels/ribpatch/pkg/observability"
	"github.com/matzehuels/ribpatch/pkg/rib"
)

// sceneLogger traces interpreted directives at debug level.
type sceneLogger struct {
	logger *log.Logger
}

var _ rib.Hooks = (*sceneLogger)(nil)

func (s *sceneLogger) OnCommand(line int, name string) {
	s.logger.Debug("directive", "line", line, "cmd", name)
}

func (s *sceneLogger) OnPatch(line int, p geom.Patch) {
	s.logger.Debug("patch", "line", line, "first", p[0], "last", p[geom.PatchSize-1])
}

// stageLogger reports pipeline stage starts and failures. Completed stages
// are already logged by the runner.
type stageLogger struct {
	observability.NoopPipelineHooks
	logger *log.Logger
}

var _ observability.PipelineHooks = (*stageLogger)(nil)

func (s *stageLogger) OnInterpretStart(_ context.Context, input string) {
	s.logger.Debug("reading scene", "input", input)
}

func (s *stageLogger) OnInterpretComplete(_ context.Context, input string, _ int, d time.Duration, err error) {
	if err != nil {
		s.logger.Debug("scene rejected", "input", input, "after", d, "err", err)
	}
}

func (s *stageLogger) OnEncodeStart(_ context.Context, format, output string) {
	s.logger.Debug("encoding mesh", "format", format, "output", output)
}

func (s *stageLogger) OnEncodeComplete(_ context.Context, _, output string, _ time.Duration, err error) {
	if err != nil {
		s.logger.Debug("encode failed", "output", output, "err", err)
	}
}
