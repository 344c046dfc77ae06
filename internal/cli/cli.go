package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/kconfgo/internal/app"
	"github.com/vk/kconfgo/internal/request"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("kconfgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
kconfgo - compile a Kconfig-like tree into a flat file of selected symbols.

Usage:
  kconfgo [options] [KCONFIG_PATH]

Arguments:
  KCONFIG_PATH
    Path to the root Kconfig file. Defaults to "Kconfig".

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.String("o", ".config", "Path of the output file.")
	selectFlag := flagSet.String("s", "", "Comma-separated list of symbols to select.")
	selectFromFlag := flagSet.String("S", "", "File enumerating the symbols to select.")
	profileFlag := flagSet.String("profile", "", "HCL selection profile file.")
	noDefaultsFlag := flagSet.Bool("d", false, "Don't select the default config symbols.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	// Flags explicitly given on the command line take precedence over
	// anything a profile provides.
	setFlags := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	outputPath := *outputFlag
	noDefaults := *noDefaultsFlag
	var names []string

	if *profileFlag != "" {
		profile, err := request.LoadProfile(*profileFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		names = append(names, profile.Select...)
		if profile.Output != "" && !setFlags["o"] {
			outputPath = profile.Output
		}
		if profile.Defaults != nil && !setFlags["d"] {
			noDefaults = !*profile.Defaults
		}
	}

	if *selectFlag != "" {
		names = append(names, request.ParseList(*selectFlag)...)
	}
	if *selectFromFlag != "" {
		fromFile, err := request.ReadFile(*selectFromFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		names = append(names, fromFile...)
	}

	kconfigPath := "Kconfig"
	if flagSet.NArg() > 0 {
		kconfigPath = flagSet.Arg(0)
	}

	config, err := app.NewConfig(app.Config{
		KconfigPath: kconfigPath,
		OutputPath:  outputPath,
		Select:      names,
		NoDefaults:  noDefaults,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
