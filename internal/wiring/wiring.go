// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/deplist/internal/adapters/config"
	_ "go.trai.ch/deplist/internal/adapters/fs"
	_ "go.trai.ch/deplist/internal/adapters/logger"
	_ "go.trai.ch/deplist/internal/adapters/productdeps"
	_ "go.trai.ch/deplist/internal/adapters/rst"
	_ "go.trai.ch/deplist/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/deplist/internal/app"
	_ "go.trai.ch/deplist/internal/engine/scheduler"
)
