// Package logger builds the structured logger shared by the HTTP server
// and the background consumer.
package logger

import "go.uber.org/zap"

// New returns a production zap logger in "prod", a development logger
// otherwise. Callers own the returned logger and should defer Sync.
func New(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
