package config

import (
	"github.com/MonkyMars/gecho"
)

var logger gecho.Logger

// InitializeLogger builds the application logger from the configured
// log level. Caller locations are logged outside production only.
func InitializeLogger() *gecho.Logger {
	logLevel := gecho.ParseLogLevel(GetLogLevel())
	logger = *gecho.NewLogger(gecho.NewConfig(
		gecho.WithLogLevel(logLevel),
		gecho.WithShowCaller(!IsProduction()),
	))
	return &logger
}

func GetLogger() *gecho.Logger {
	return &logger
}
