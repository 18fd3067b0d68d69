// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/mityas/tk-core/internal/adapters/config"
	_ "github.com/mityas/tk-core/internal/adapters/logger"
	_ "github.com/mityas/tk-core/internal/adapters/shell"
	// Register action and app nodes.
	_ "github.com/mityas/tk-core/internal/actions"
	_ "github.com/mityas/tk-core/internal/app"
)
