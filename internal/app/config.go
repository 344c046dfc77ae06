package app

import "errors"

// Config holds everything one pipeline run needs.
type Config struct {
	// KconfigPath is the root Kconfig file.
	KconfigPath string
	// OutputPath is the file the selected configuration is written to.
	OutputPath string
	// Select are explicitly requested symbol names, in request order.
	Select []string
	// NoDefaults suppresses the `default y` selection pass.
	NoDefaults bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.KconfigPath == "" {
		return nil, errors.New("KconfigPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = ".config"
	}
	return &cfg, nil
}
