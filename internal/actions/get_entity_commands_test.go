package actions_test

import (
	"context"
	"testing"

	"github.com/mityas/tk-core/internal/actions"
	"github.com/mityas/tk-core/internal/core/domain"
	"github.com/mityas/tk-core/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const pcPath = "/configs/primary"

const (
	shotCache = "shotgun_linux_shot_detailed.txt"
	shotEnv   = "shotgun_shot.yml"
	taskCache = "shotgun_linux_task_detailed.txt"
	taskEnv   = "shotgun_task.yml"
)

const shotContent = "publish$Publish File$.$.$publish.png\nreview$Review$.$.$review.png"

func newAction(t *testing.T) (*actions.GetEntityCommands, *mocks.MockToolkitRunner, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolkitRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	action := actions.NewGetEntityCommands(runner, logger).WithPlatform("linux")
	return action, runner, logger
}

func TestFetch_CacheHitSkipsRebuild(t *testing.T) {
	action, runner, _ := newAction(t)

	// A successful first read must not trigger any cache rebuild.
	runner.EXPECT().
		Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
		Return(domain.ProcessResult{ExitCode: 0, Stdout: shotContent}, nil)

	result, err := action.Fetch(context.Background(), pcPath, []domain.EntityRef{{Type: "Shot", ID: 100}})
	require.NoError(t, err)

	commands := result[domain.EntityRef{Type: "Shot", ID: 100}]
	require.Len(t, commands, 2)
	require.Equal(t, "publish", commands[0].Name)
	require.Equal(t, "Publish File", commands[0].Title)
	require.Equal(t, "publish.png", commands[0].Icon)
}

func TestFetch_CacheNotFoundRebuildsWithNewConvention(t *testing.T) {
	action, runner, _ := newAction(t)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{taskCache, taskEnv}).
			Return(domain.ProcessResult{ExitCode: domain.ExitCacheNotFound}, nil),
		// The new convention passes a sample entity id, by convention the
		// first of the group.
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandCacheActions, []string{"Task", taskCache, "5"}).
			Return(domain.ProcessResult{ExitCode: 0}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{taskCache, taskEnv}).
			Return(domain.ProcessResult{ExitCode: 0, Stdout: "open$Open$.$.$open.png"}, nil),
	)

	result, err := action.Fetch(context.Background(), pcPath, []domain.EntityRef{{Type: "Task", ID: 5}, {Type: "Task", ID: 6}})
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, result[domain.EntityRef{Type: "Task", ID: 5}], result[domain.EntityRef{Type: "Task", ID: 6}])
}

func TestFetch_CacheOutOfDateRebuilds(t *testing.T) {
	action, runner, _ := newAction(t)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: domain.ExitCacheOutOfDate}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandCacheActions, []string{"Shot", shotCache, "100"}).
			Return(domain.ProcessResult{ExitCode: 0}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: 0, Stdout: shotContent}, nil),
	)

	result, err := action.Fetch(context.Background(), pcPath, []domain.EntityRef{{Type: "Shot", ID: 100}})
	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestFetch_OldConventionFallback(t *testing.T) {
	action, runner, _ := newAction(t)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: domain.ExitCacheNotFound}, nil),
		// The target configuration rejects the extra entity id argument.
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandCacheActions, []string{"Shot", shotCache, "100"}).
			Return(domain.ProcessResult{ExitCode: 1, Stderr: "unknown parameter"}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandCacheActions, []string{"Shot", shotCache}).
			Return(domain.ProcessResult{ExitCode: 0}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: 0, Stdout: shotContent}, nil),
	)

	result, err := action.Fetch(context.Background(), pcPath, []domain.EntityRef{{Type: "Shot", ID: 100}})
	require.NoError(t, err)
	require.Len(t, result[domain.EntityRef{Type: "Shot", ID: 100}], 2)
}

func TestFetch_UnexpectedExitStatusFailsWithoutRebuild(t *testing.T) {
	action, runner, logger := newAction(t)

	// Exit codes other than "out of date" / "not found" mean something else
	// went wrong; no rebuild may be attempted.
	runner.EXPECT().
		Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
		Return(domain.ProcessResult{ExitCode: 3, Stderr: "boom"}, nil)
	logger.EXPECT().Error(gomock.Any())

	result, err := action.Fetch(context.Background(), pcPath, []domain.EntityRef{{Type: "Shot", ID: 100}})
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestFetch_BothRebuildConventionsFail(t *testing.T) {
	action, runner, logger := newAction(t)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: domain.ExitCacheNotFound}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandCacheActions, []string{"Shot", shotCache, "100"}).
			Return(domain.ProcessResult{ExitCode: 1}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandCacheActions, []string{"Shot", shotCache}).
			Return(domain.ProcessResult{ExitCode: 1, Stderr: "no engine"}, nil),
	)
	logger.EXPECT().Error(gomock.Any())

	result, err := action.Fetch(context.Background(), pcPath, []domain.EntityRef{{Type: "Shot", ID: 100}})
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestFetch_ReadAfterRebuildFails(t *testing.T) {
	action, runner, logger := newAction(t)

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: domain.ExitCacheOutOfDate}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandCacheActions, []string{"Shot", shotCache, "100"}).
			Return(domain.ProcessResult{ExitCode: 0}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: 2}, nil),
	)
	logger.EXPECT().Error(gomock.Any())

	result, err := action.Fetch(context.Background(), pcPath, []domain.EntityRef{{Type: "Shot", ID: 100}})
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestFetch_MalformedCacheFailsGroup(t *testing.T) {
	action, runner, logger := newAction(t)

	runner.EXPECT().
		Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
		Return(domain.ProcessResult{ExitCode: 0, Stdout: "publish$Publish File$icon.png"}, nil)
	logger.EXPECT().Error(gomock.Any())

	result, err := action.Fetch(context.Background(), pcPath, []domain.EntityRef{{Type: "Shot", ID: 100}})
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestFetch_MixedGroups(t *testing.T) {
	action, runner, _ := newAction(t)

	entities := []domain.EntityRef{
		{Type: "Shot", ID: 100},
		{Type: "Shot", ID: 101},
		{Type: "Task", ID: 5},
	}

	// Shot cache is already valid; Task cache is missing and rebuilt with
	// the new convention.
	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: 0, Stdout: shotContent}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{taskCache, taskEnv}).
			Return(domain.ProcessResult{ExitCode: domain.ExitCacheNotFound}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandCacheActions, []string{"Task", taskCache, "5"}).
			Return(domain.ProcessResult{ExitCode: 0}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{taskCache, taskEnv}).
			Return(domain.ProcessResult{ExitCode: 0, Stdout: "open$Open$.$.$open.png"}, nil),
	)

	result, err := action.Fetch(context.Background(), pcPath, entities)
	require.NoError(t, err)
	require.Len(t, result, 3)

	shotA := result[domain.EntityRef{Type: "Shot", ID: 100}]
	shotB := result[domain.EntityRef{Type: "Shot", ID: 101}]
	task := result[domain.EntityRef{Type: "Task", ID: 5}]
	require.Equal(t, shotA, shotB)
	require.Len(t, shotA, 2)
	require.Len(t, task, 1)
	require.Equal(t, "open", task[0].Name)
}

func TestFetch_GroupFailureIsIsolated(t *testing.T) {
	action, runner, logger := newAction(t)

	entities := []domain.EntityRef{
		{Type: "Shot", ID: 100},
		{Type: "Task", ID: 5},
	}

	gomock.InOrder(
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{shotCache, shotEnv}).
			Return(domain.ProcessResult{ExitCode: 42, Stderr: "corrupt install"}, nil),
		runner.EXPECT().
			Run(gomock.Any(), pcPath, domain.CommandGetActions, []string{taskCache, taskEnv}).
			Return(domain.ProcessResult{ExitCode: 0, Stdout: "open$Open$.$.$open.png"}, nil),
	)
	logger.EXPECT().Error(gomock.Any())

	result, err := action.Fetch(context.Background(), pcPath, entities)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Contains(t, result, domain.EntityRef{Type: "Task", ID: 5})
	require.NotContains(t, result, domain.EntityRef{Type: "Shot", ID: 100})
}

func TestFetch_NoEntities(t *testing.T) {
	action, _, _ := newAction(t)

	_, err := action.Fetch(context.Background(), pcPath, nil)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrNoEntities.Error())
}

func TestRunInteractive_Rejected(t *testing.T) {
	action, _, _ := newAction(t)

	require.False(t, action.SupportsInteractive())

	err := action.RunInteractive(context.Background(), nil)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrInteractiveNotSupported.Error())
}
