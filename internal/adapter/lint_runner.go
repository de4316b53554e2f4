package adapter

import (
	"context"
	"errors"
	"os/exec"

	m "github.com/mouse-blink/inputfix/internal/model"
)

// LintRunner runs an external lint command and hands back everything it
// printed.
type LintRunner interface {
	Run(ctx context.Context, dir m.Path, command []string) (string, error)
}

// LocalLintRunner executes the lint command as a subprocess.
type LocalLintRunner struct{}

// NewLocalLintRunner constructs a LocalLintRunner.
func NewLocalLintRunner() *LocalLintRunner {
	return &LocalLintRunner{}
}

// Run executes command in dir and returns its combined stdout and stderr.
// Linters exit non-zero when they find problems, so the output is returned
// alongside any error.
func (r *LocalLintRunner) Run(ctx context.Context, dir m.Path, command []string) (string, error) {
	if len(command) == 0 {
		return "", errors.New("lint command is empty")
	}

	// #nosec G204 - the command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = string(dir)

	out, err := cmd.CombinedOutput()

	return string(out), err
}
