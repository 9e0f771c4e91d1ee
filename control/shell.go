package control

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	E "github.com/sagernet/sing/common/exceptions"
)

// Result is the outcome of one external command, consumed immediately by
// the controllers.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes external commands. The real implementation shells out;
// tests substitute a scripted one.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

type execRunner struct {
	timeout time.Duration
}

// NewRunner returns a Runner backed by os/exec. Each command is bounded by
// timeout when positive; a command that exceeds it is killed and surfaces
// as a non-zero exit.
func NewRunner(timeout time.Duration) Runner {
	return &execRunner{timeout: timeout}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	command := exec.CommandContext(ctx, name, args...)
	command.Env = os.Environ()
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr
	err := command.Run()
	result := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, E.Cause(err, "run ", name)
		}
	}
	result.ExitCode = command.ProcessState.ExitCode()
	if result.ExitCode != 0 && result.Stderr == "" && ctx.Err() != nil {
		result.Stderr = ctx.Err().Error()
	}
	return result, nil
}
