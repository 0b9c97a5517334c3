// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stencil/internal/adapters/cache"
	_ "go.trai.ch/stencil/internal/adapters/cas"
	_ "go.trai.ch/stencil/internal/adapters/config"
	_ "go.trai.ch/stencil/internal/adapters/fs"
	_ "go.trai.ch/stencil/internal/adapters/gocompiler"
	_ "go.trai.ch/stencil/internal/adapters/hcltmpl"
	_ "go.trai.ch/stencil/internal/adapters/logger"
	_ "go.trai.ch/stencil/internal/adapters/telemetry"
	_ "go.trai.ch/stencil/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/stencil/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/stencil/internal/app"
)
