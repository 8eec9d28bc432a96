// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/libscan/internal/adapters/config"
	_ "go.trai.ch/libscan/internal/adapters/listing"
	_ "go.trai.ch/libscan/internal/adapters/logger"
	_ "go.trai.ch/libscan/internal/adapters/pysource"
	_ "go.trai.ch/libscan/internal/adapters/report"
	// Register app nodes.
	_ "go.trai.ch/libscan/internal/app"
)
