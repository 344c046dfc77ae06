package resolve

import (
	"github.com/vk/kconfgo/internal/diag"
	"github.com/vk/kconfgo/internal/symbol"
)

// Resolve rewrites every symbol's textual references into direct links.
// It runs once, after the whole graph (across all sourced files) is built,
// so forward references always resolve. Dangling references and
// self-references are diagnosed and dropped; dependency edges additionally
// register the owner as a dependent of the referenced symbol. Iteration is
// table order, then declaration order of edges, so the resulting adjacency
// lists are deterministic.
func Resolve(table *symbol.Table, diags *diag.List) {
	for _, sym := range table.Symbols() {
		for _, name := range sym.DependNames {
			dep, ok := lookup(table, sym, name, diags)
			if !ok {
				continue
			}
			sym.Depends = append(sym.Depends, dep)
			dep.Dependents = append(dep.Dependents, sym)
		}
		for _, name := range sym.SelectNames {
			sel, ok := lookup(table, sym, name, diags)
			if !ok {
				continue
			}
			sym.Selects = append(sym.Selects, sel)
		}
	}
}

func lookup(table *symbol.Table, owner *symbol.Symbol, name string, diags *diag.List) (*symbol.Symbol, bool) {
	if name == owner.Name {
		diags.Addf(owner.File, owner.Line, "config %q cannot reference itself", name)
		return nil, false
	}
	target, ok := table.Lookup(name)
	if !ok {
		diags.Addf(owner.File, owner.Line, "config %q cannot be found", name)
		return nil, false
	}
	return target, true
}

// FixDependencies deselects every symbol that has at least one unselected
// dependency. This is deliberately a single pass, not a fixpoint: a symbol
// deselected here is not re-examined as a dependency of others. Multi-hop
// chains therefore settle exactly as the single pass leaves them.
func FixDependencies(table *symbol.Table) {
	for _, sym := range table.Symbols() {
		if !sym.HasDependencies() {
			continue
		}
		if !sym.DependenciesMet() {
			sym.IsSelected = false
		}
	}
}
