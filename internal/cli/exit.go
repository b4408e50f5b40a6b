package cli

import (
	"context"
	stderrors "errors"

	"github.com/matzehuels/ribpatch/pkg/errors"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130 // shell convention for SIGINT
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, errors.ErrCodeUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// ErrorLine formats err for the terminal.
func ErrorLine(err error) string {
	return StyleError.Render("error:") + " " + err.Error()
}
