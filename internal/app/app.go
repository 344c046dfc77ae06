package app

import (
	"io"
	"log/slog"
)

// App encapsulates the pipeline's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App with its own isolated logger.
func NewApp(outW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}
