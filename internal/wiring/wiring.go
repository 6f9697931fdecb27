// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/patchwork/internal/adapters/config"
	_ "go.trai.ch/patchwork/internal/adapters/fs"
	_ "go.trai.ch/patchwork/internal/adapters/logger"
	_ "go.trai.ch/patchwork/internal/adapters/patch"
	_ "go.trai.ch/patchwork/internal/adapters/progress"
	// Register app nodes.
	_ "go.trai.ch/patchwork/internal/app"
)
