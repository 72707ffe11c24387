package comparetool

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rivoric/vstsdiff/pkg/domain/interfaces"
)

// Launcher runs the comparison executable as a child process
type Launcher struct{}

// NewLauncher creates a new Launcher
func NewLauncher() interfaces.ToolLauncher {
	return &Launcher{}
}

// Launch runs the comparison tool with the two file paths as positional
// arguments and blocks until it exits. The tool's own exit status is logged
// but not propagated; only failure to start the process is an error.
func (l *Launcher) Launch(ctx context.Context, exe, left, right string) error {
	logger := ctxlog.From(ctx)

	cmd := exec.CommandContext(ctx, exe, left, right)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("launching comparison tool",
		"exe", exe,
		"left", left,
		"right", right,
	)

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Debug("comparison tool exited with non-zero status",
			"exe", exe,
			"code", exitErr.ExitCode(),
		)
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to run comparison tool", goerr.V("exe", exe))
	}

	return nil
}
