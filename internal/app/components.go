package app

import "github.com/mityas/tk-core/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI
// layer and the public API surface.
type Components struct {
	App    *App
	Logger ports.Logger
}
