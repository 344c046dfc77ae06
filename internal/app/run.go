package app

import (
	"context"
	"fmt"

	"github.com/vk/kconfgo/internal/ctxlog"
	"github.com/vk/kconfgo/internal/diag"
	"github.com/vk/kconfgo/internal/output"
	"github.com/vk/kconfgo/internal/parser"
	"github.com/vk/kconfgo/internal/resolve"
	"github.com/vk/kconfgo/internal/selection"
	"github.com/vk/kconfgo/internal/symbol"
)

// Result carries the final pipeline state so callers and tests can assert on
// it structurally instead of scraping output.
type Result struct {
	Table *symbol.Table
	Diags *diag.List
}

// Run drives the pipeline: parse, resolve, fix up dependencies, select
// defaults and explicit requests, write the output file. Malformed input is
// reported through the diagnostic list and never fails the run; the returned
// error covers file access only.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	table := symbol.NewTable()
	diags := &diag.List{}

	logger.Debug("Parsing Kconfig tree.", "path", a.config.KconfigPath)
	if err := parser.ParseFile(a.config.KconfigPath, table, diags); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", a.config.KconfigPath, err)
	}
	logger.Debug("Parse finished.", "symbols", table.Len(), "menus", len(table.Menus()))

	resolve.Resolve(table, diags)
	resolve.FixDependencies(table)
	logger.Debug("References resolved.", "diagnostics", diags.Len())

	engine := selection.New(table, diags)
	if !a.config.NoDefaults {
		engine.SelectDefaults()
	}
	if len(a.config.Select) > 0 {
		engine.SelectNames(a.config.Select)
	}

	for _, d := range diags.All() {
		logger.Warn(d.String())
	}

	if err := output.WriteFile(a.config.OutputPath, table); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", a.config.OutputPath, err)
	}
	logger.Info("Configuration written.", "path", a.config.OutputPath, "selected", countSelected(table))

	return &Result{Table: table, Diags: diags}, nil
}

func countSelected(table *symbol.Table) int {
	n := 0
	for _, sym := range table.Symbols() {
		if sym.IsSelected {
			n++
		}
	}
	return n
}
