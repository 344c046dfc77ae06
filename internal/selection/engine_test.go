package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/kconfgo/internal/diag"
	"github.com/vk/kconfgo/internal/resolve"
	"github.com/vk/kconfgo/internal/symbol"
)

// build declares the given symbols with their dependency and select edges
// and resolves the table.
func build(t *testing.T, syms map[string]struct{ deps, sels []string }, order []string) *symbol.Table {
	t.Helper()
	table := symbol.NewTable()
	for i, name := range order {
		sym := table.Declare(name, "Kconfig", i+1)
		for _, dep := range syms[name].deps {
			sym.AddDependency(dep)
		}
		for _, sel := range syms[name].sels {
			sym.AddSelect(sel)
		}
	}
	diags := &diag.List{}
	resolve.Resolve(table, diags)
	require.Equal(t, 0, diags.Len(), "diagnostics: %v", diags.All())
	return table
}

func get(t *testing.T, table *symbol.Table, name string) *symbol.Symbol {
	t.Helper()
	sym, ok := table.Lookup(name)
	require.True(t, ok)
	return sym
}

func TestSelect_NoDependencies(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{}, []string{"A"})
	engine := New(table, &diag.List{})

	engine.Select(get(t, table, "A"))

	assert.True(t, get(t, table, "A").IsSelected)
}

func TestSelect_UnmetDependencyBlocksAndDoesNotCascade(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{
		"A": {deps: []string{"B"}, sels: []string{"C"}},
	}, []string{"A", "B", "C"})
	engine := New(table, &diag.List{})

	engine.Select(get(t, table, "A"))

	assert.False(t, get(t, table, "A").IsSelected)
	assert.False(t, get(t, table, "C").IsSelected, "no cascade into selects on an aborted selection")
}

func TestSelect_CascadesThroughSelects(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{
		"A": {sels: []string{"B"}},
		"B": {sels: []string{"C"}},
	}, []string{"A", "B", "C"})
	engine := New(table, &diag.List{})

	engine.Select(get(t, table, "A"))

	assert.True(t, get(t, table, "A").IsSelected)
	assert.True(t, get(t, table, "B").IsSelected)
	assert.True(t, get(t, table, "C").IsSelected)
}

func TestSelect_CascadeRespectsDependencyGates(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{
		"A": {sels: []string{"B"}},
		"B": {deps: []string{"C"}},
	}, []string{"A", "B", "C"})
	engine := New(table, &diag.List{})

	engine.Select(get(t, table, "A"))

	assert.True(t, get(t, table, "A").IsSelected)
	assert.False(t, get(t, table, "B").IsSelected, "B's dependency C is unselected")
}

func TestSelect_MarksDependentsSelectable(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{
		"B": {deps: []string{"A"}},
	}, []string{"A", "B"})
	engine := New(table, &diag.List{})

	engine.Select(get(t, table, "A"))

	b := get(t, table, "B")
	assert.True(t, b.IsSelectable, "A's selection opens B's gate")
	assert.False(t, b.IsSelected, "selectable is advisory, not selection")
}

func TestSelect_CycleIsDiagnosedNotInfinite(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{
		"A": {sels: []string{"B"}},
		"B": {sels: []string{"A"}},
	}, []string{"A", "B"})
	diags := &diag.List{}
	engine := New(table, diags)

	engine.Select(get(t, table, "A"))

	assert.True(t, get(t, table, "A").IsSelected)
	assert.True(t, get(t, table, "B").IsSelected)
	require.Equal(t, 1, diags.Len())
	assert.Contains(t, diags.All()[0].Message, "cycle")
}

func TestSelectDefaults(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{}, []string{"A", "B"})
	get(t, table, "A").IsDefault = true
	engine := New(table, &diag.List{})

	engine.SelectDefaults()

	assert.True(t, get(t, table, "A").IsSelected)
	assert.False(t, get(t, table, "B").IsSelected)
}

func TestSelectNames_UnknownNameIsDiagnosed(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{}, []string{"A"})
	diags := &diag.List{}
	engine := New(table, diags)

	engine.SelectNames([]string{"A", "MISSING"})

	assert.True(t, get(t, table, "A").IsSelected)
	require.Equal(t, 1, diags.Len())
	assert.Contains(t, diags.All()[0].Message, "MISSING")
}

func TestSelect_DependencyOrderMatters(t *testing.T) {
	t.Parallel()

	table := build(t, map[string]struct{ deps, sels []string }{
		"B": {deps: []string{"A"}},
	}, []string{"A", "B"})
	engine := New(table, &diag.List{})

	// Selecting B before its dependency does nothing; after A it sticks.
	engine.Select(get(t, table, "B"))
	assert.False(t, get(t, table, "B").IsSelected)

	engine.Select(get(t, table, "A"))
	engine.Select(get(t, table, "B"))
	assert.True(t, get(t, table, "B").IsSelected)
}
