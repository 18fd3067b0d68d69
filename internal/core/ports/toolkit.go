package ports

import (
	"context"

	"github.com/mityas/tk-core/internal/core/domain"
)

// ToolkitRunner invokes commands on a sibling pipeline configuration's
// toolkit installation.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolkit.go -destination=mocks/mock_toolkit.go -package=mocks
type ToolkitRunner interface {
	// Run executes the named toolkit command in the given pipeline
	// configuration and blocks until it exits.
	//
	// The returned error is non-nil only when the process could not be
	// invoked at all (e.g. the toolkit script is missing). A process that
	// started and exited always yields a ProcessResult so that callers can
	// pattern-match on the exit code.
	Run(ctx context.Context, pipelineConfigPath, command string, args []string) (domain.ProcessResult, error)
}
