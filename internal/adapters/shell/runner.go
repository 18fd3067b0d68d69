// Package shell provides the toolkit runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/mityas/tk-core/internal/core/domain"
	"github.com/mityas/tk-core/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ToolkitRunner by invoking the entry script of a
// sibling pipeline configuration with os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes a toolkit command in the pipeline configuration rooted at
// pipelineConfigPath and blocks until the subprocess exits.
//
// A non-zero exit is not an error here: the result carries the exit code and
// the captured output, and callers decide what the code means. Only a
// process that could not be started at all yields an error.
func (r *Runner) Run(ctx context.Context, pipelineConfigPath, command string, args []string) (domain.ProcessResult, error) {
	script, err := toolkitScript(pipelineConfigPath)
	if err != nil {
		return domain.ProcessResult{}, err
	}

	cmdArgs := append([]string{command}, args...)
	cmd := exec.CommandContext(ctx, script, cmdArgs...) //nolint:gosec // script path is derived from the caller-supplied configuration

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info(fmt.Sprintf("running toolkit command %s in %s", command, pipelineConfigPath))

	runErr := cmd.Run()

	result := domain.ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// The process never ran (spawn failure, context cancelled
			// before start, ...).
			return domain.ProcessResult{}, zerr.With(
				zerr.With(
					zerr.Wrap(runErr, domain.ErrToolkitInvocationFailed.Error()),
					"command", command,
				),
				"pipeline_config", pipelineConfigPath,
			)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

// toolkitScript resolves the toolkit entry script inside a pipeline
// configuration root.
func toolkitScript(pipelineConfigPath string) (string, error) {
	name := "tank"
	if runtime.GOOS == "windows" {
		name = "tank.bat"
	}

	script := filepath.Join(pipelineConfigPath, name)
	info, err := os.Stat(script)
	if err != nil || info.IsDir() {
		return "", zerr.With(
			zerr.With(domain.ErrToolkitScriptNotFound, "pipeline_config", pipelineConfigPath),
			"script", script,
		)
	}
	return script, nil
}

var _ ports.ToolkitRunner = (*Runner)(nil)
