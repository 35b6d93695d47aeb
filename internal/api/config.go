package api

import "github.com/apsdehal/go-logger"

// Config controls HTTP API routing behavior.
type Config struct {
	BasePath      string
	EnableMetrics bool
	// Log receives access logs. Nil discards them.
	Log *logger.Logger
}
