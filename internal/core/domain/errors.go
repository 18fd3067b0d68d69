package domain

import "go.trai.ch/zerr"

var (
	// ErrNoEntities is returned when a fetch is requested for an empty entity list.
	ErrNoEntities = zerr.New("no entities specified")

	// ErrUnexpectedExitStatus is returned when the toolkit command exits with a
	// status that does not mean "cache out of date" or "cache not found".
	ErrUnexpectedExitStatus = zerr.New("unexpected exit status while reading the command cache")

	// ErrCacheRefreshFailed is returned when both cache rebuild conventions failed.
	ErrCacheRefreshFailed = zerr.New("failed to rebuild the command cache")

	// ErrCacheReadFailed is returned when reading the cache still fails after a rebuild.
	ErrCacheReadFailed = zerr.New("failed to read the rebuilt command cache")

	// ErrMalformedCache is returned when a cache line has fewer tokens than required.
	ErrMalformedCache = zerr.New("command cache line is missing tokens")

	// ErrToolkitScriptNotFound is returned when the pipeline configuration does not
	// contain a toolkit entry script.
	ErrToolkitScriptNotFound = zerr.New("toolkit script not found in pipeline configuration")

	// ErrToolkitInvocationFailed is returned when the toolkit process could not be started.
	ErrToolkitInvocationFailed = zerr.New("failed to invoke toolkit command")

	// ErrActionNotFound is returned when a requested action is not registered.
	ErrActionNotFound = zerr.New("action not found")

	// ErrInteractiveNotSupported is returned when an API-only action is invoked
	// from the command line.
	ErrInteractiveNotSupported = zerr.New("this action does not support command line access")

	// ErrConfigReadFailed is returned when the pipeline configuration metadata
	// file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read pipeline configuration metadata")

	// ErrConfigParseFailed is returned when the pipeline configuration metadata
	// file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse pipeline configuration metadata")

	// ErrHookCopyFailed is returned when the publish hook cannot copy the source file.
	ErrHookCopyFailed = zerr.New("failed to copy published file")
)
