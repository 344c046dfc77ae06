package selection

import (
	"github.com/vk/kconfgo/internal/diag"
	"github.com/vk/kconfgo/internal/symbol"
)

// Engine cascades selection requests through a resolved symbol table.
type Engine struct {
	table *symbol.Table
	diags *diag.List

	// inProgress marks symbols currently on the cascade stack. Re-entering
	// one means the select graph has a cycle.
	inProgress map[*symbol.Symbol]bool
}

// New returns an engine over a resolved table.
func New(table *symbol.Table, diags *diag.List) *Engine {
	return &Engine{
		table:      table,
		diags:      diags,
		inProgress: make(map[*symbol.Symbol]bool),
	}
}

// Select attempts to select sym and cascades through its select edges.
// The attempt is abandoned, with no state change, while any dependency of
// sym is unselected.
func (e *Engine) Select(sym *symbol.Symbol) {
	if e.inProgress[sym] {
		e.diags.Addf(sym.File, sym.Line, "select cycle involving config %q", sym.Name)
		return
	}
	e.inProgress[sym] = true
	defer delete(e.inProgress, sym)

	if !sym.DependenciesMet() {
		return
	}

	// The dependents' gates may now be satisfiable. Advisory only; it does
	// not trigger selection on its own.
	for _, dep := range sym.Dependents {
		dep.IsSelectable = true
	}

	if !sym.DependenciesMet() {
		return
	}

	sym.IsSelected = true
	for _, sel := range sym.Selects {
		e.Select(sel)
	}
}

// SelectDefaults selects every symbol declared `default y`, in table order.
func (e *Engine) SelectDefaults() {
	for _, sym := range e.table.Symbols() {
		if sym.IsDefault {
			e.Select(sym)
		}
	}
}

// SelectNames selects each named symbol in order. Unknown names get a
// diagnostic and are skipped.
func (e *Engine) SelectNames(names []string) {
	for _, name := range names {
		sym, ok := e.table.Lookup(name)
		if !ok {
			e.diags.Addf("", 0, "config %q cannot be found", name)
			continue
		}
		e.Select(sym)
	}
}
