// Package logging builds the zap logger shared by all commands.
package logging

import "go.uber.org/zap"

// New returns a development logger for local runs and a production logger otherwise.
func New(local bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if local {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
