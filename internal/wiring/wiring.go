// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.actr.dev/actr/internal/adapters/cache"
	_ "go.actr.dev/actr/internal/adapters/config"
	_ "go.actr.dev/actr/internal/adapters/fingerprint"
	_ "go.actr.dev/actr/internal/adapters/logger"
	_ "go.actr.dev/actr/internal/adapters/netcheck"
	_ "go.actr.dev/actr/internal/adapters/signaling"
	// Register app and engine nodes.
	_ "go.actr.dev/actr/internal/app"
	_ "go.actr.dev/actr/internal/engine/pipeline"
	_ "go.actr.dev/actr/internal/engine/resolve"
)
