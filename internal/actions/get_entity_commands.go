package actions

import (
	"context"
	"runtime"
	"strconv"

	"github.com/mityas/tk-core/internal/core/domain"
	"github.com/mityas/tk-core/internal/core/ports"
	"go.trai.ch/zerr"
)

// GetEntityCommands fetches the UI commands that can be launched on entities
// of another pipeline configuration.
//
// It asks the other configuration's toolkit for its cached entity commands,
// triggering a cache rebuild first when the cache is stale or missing. The
// cache is keyed by entity type, so all entities of one type receive the
// same command list.
type GetEntityCommands struct {
	runner   ports.ToolkitRunner
	logger   ports.Logger
	platform string
}

// NewGetEntityCommands creates the action. The host platform is read once
// from runtime.GOOS.
func NewGetEntityCommands(runner ports.ToolkitRunner, logger ports.Logger) *GetEntityCommands {
	return &GetEntityCommands{
		runner:   runner,
		logger:   logger,
		platform: runtime.GOOS,
	}
}

// WithPlatform overrides the host platform identifier. Used by tests.
func (a *GetEntityCommands) WithPlatform(platform string) *GetEntityCommands {
	a.platform = platform
	return a
}

// Name implements Action.
func (a *GetEntityCommands) Name() string { return "get_entity_commands" }

// Description implements Action.
func (a *GetEntityCommands) Description() string {
	return "Gets the available commands that can be executed for specified entities from another pipeline configuration"
}

// SupportsInteractive implements Action. The result is a structured mapping,
// so the action is only available through the API.
func (a *GetEntityCommands) SupportsInteractive() bool { return false }

// RunInteractive implements Action.
func (a *GetEntityCommands) RunInteractive(ctx context.Context, args []string) error {
	return zerr.With(domain.ErrInteractiveNotSupported, "action", a.Name())
}

// Fetch returns the commands registered for each entity, keyed by entity.
//
// Entities are grouped by coalescing contiguous runs of equal type (see
// domain.GroupByType) and groups are processed sequentially. A failing group
// is logged and left out of the result; it never prevents other groups from
// succeeding. Callers must treat a missing key as "commands unavailable for
// this entity".
func (a *GetEntityCommands) Fetch(ctx context.Context, pipelineConfigPath string, entities []domain.EntityRef) (map[domain.EntityRef][]domain.Command, error) {
	if len(entities) == 0 {
		return nil, domain.ErrNoEntities
	}

	commandsPerEntity := make(map[domain.EntityRef][]domain.Command, len(entities))

	for _, group := range domain.GroupByType(entities) {
		commands, err := a.fetchGroup(ctx, pipelineConfigPath, group)
		if err != nil {
			a.logger.Error(zerr.With(
				zerr.With(err, "pipeline_config", pipelineConfigPath),
				"entity_type", group.Type,
			))
			continue
		}
		for _, entity := range group.Entities {
			commandsPerEntity[entity] = commands
		}
	}

	return commandsPerEntity, nil
}

func (a *GetEntityCommands) fetchGroup(ctx context.Context, pipelineConfigPath string, group domain.EntityGroup) ([]domain.Command, error) {
	content, err := a.loadCachedData(ctx, pipelineConfigPath, group)
	if err != nil {
		return nil, err
	}
	return domain.ParseCachedCommands(content)
}

// loadCachedData returns the cache content for the group's entity type,
// rebuilding the cache through the other configuration's toolkit when it is
// stale or missing.
func (a *GetEntityCommands) loadCachedData(ctx context.Context, pipelineConfigPath string, group domain.EntityGroup) (string, error) {
	cacheName := domain.CacheFileName(a.platform, group.Type)
	envName := domain.EnvFileName(group.Type)
	getArgs := []string{cacheName, envName}

	res, err := a.runner.Run(ctx, pipelineConfigPath, domain.CommandGetActions, getArgs)
	if err != nil {
		return "", err
	}
	if res.Succeeded() {
		return res.Stdout, nil
	}
	if res.ExitCode != domain.ExitCacheOutOfDate && res.ExitCode != domain.ExitCacheNotFound {
		return "", zerr.With(
			zerr.With(domain.ErrUnexpectedExitStatus, "exit_code", res.ExitCode),
			"output", res.Output(),
		)
	}

	// The cache is stale or missing. Prefer the newer rebuild convention
	// that passes a sample entity id, which lets the cache carry richer
	// per-command information. The commands are identical for every entity
	// of the type, so any id from the group will do. Older configurations
	// reject the extra argument; fall back to the old convention then.
	sampleID := strconv.Itoa(group.Entities[0].ID)
	res, err = a.runner.Run(ctx, pipelineConfigPath, domain.CommandCacheActions, []string{group.Type, cacheName, sampleID})
	if err != nil || !res.Succeeded() {
		res, err = a.runner.Run(ctx, pipelineConfigPath, domain.CommandCacheActions, []string{group.Type, cacheName})
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrCacheRefreshFailed.Error())
		}
		if !res.Succeeded() {
			return "", zerr.With(
				zerr.With(domain.ErrCacheRefreshFailed, "exit_code", res.ExitCode),
				"output", res.Output(),
			)
		}
	}

	// The cache is current now, read it again.
	res, err = a.runner.Run(ctx, pipelineConfigPath, domain.CommandGetActions, getArgs)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	if !res.Succeeded() {
		return "", zerr.With(
			zerr.With(domain.ErrCacheReadFailed, "exit_code", res.ExitCode),
			"output", res.Output(),
		)
	}
	return res.Stdout, nil
}

var _ Action = (*GetEntityCommands)(nil)
