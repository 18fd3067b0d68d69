package domain

import (
	"fmt"
	"strings"
)

// Exit codes the toolkit's get-actions command uses to report cache state.
const (
	ExitCacheOutOfDate = 1
	ExitCacheNotFound  = 2
)

// Toolkit commands invoked on the sibling pipeline configuration.
const (
	CommandGetActions   = "shotgun_get_actions"
	CommandCacheActions = "shotgun_cache_actions"
)

// PlatformName maps a host platform identifier to the token used in cache
// file names. Unknown platforms pass through unchanged.
func PlatformName(platform string) string {
	switch {
	case platform == "darwin":
		return "mac"
	case platform == "windows":
		return "windows"
	case strings.HasPrefix(platform, "linux"):
		return "linux"
	default:
		return platform
	}
}

// CacheFileName returns the name of the detailed command cache file for an
// entity type on the given platform.
//
// This cache is separate from the one the website service maintains: the
// detailed variant is built with an entity id for context and can carry
// extra per-command information such as icon paths, so the two must not be
// mixed.
func CacheFileName(platform, entityType string) string {
	return strings.ToLower(fmt.Sprintf("shotgun_%s_%s_detailed.txt", PlatformName(platform), entityType))
}

// EnvFileName returns the name of the environment file that registers the
// commands for an entity type.
func EnvFileName(entityType string) string {
	return strings.ToLower(fmt.Sprintf("shotgun_%s.yml", entityType))
}
