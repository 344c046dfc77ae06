package symbol

// Table is the symbol registry for one run. It spans every sourced file:
// parsing accumulates into a single table, and symbol names form one
// pipeline-wide namespace. Iteration order is declaration order, which keeps
// resolution, selection passes, and output deterministic.
type Table struct {
	// MainMenu is the title set by the root file's `mainmenu` statement.
	MainMenu string

	order  []*Symbol
	byName map[string]*Symbol

	menus []*Menu
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{byName: make(map[string]*Symbol)}
}

// Declare returns the symbol named name, creating it if this is the first
// `config name` statement. A redeclaration returns the existing symbol so
// later option lines accumulate onto it; the origin of the first declaration
// is kept.
func (t *Table) Declare(name, file string, line int) *Symbol {
	if s, ok := t.byName[name]; ok {
		return s
	}
	s := &Symbol{Name: name, File: file, Line: line}
	t.byName[name] = s
	t.order = append(t.order, s)
	return s
}

// Lookup returns the symbol named name, if declared.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// Symbols returns every declared symbol in declaration order. The slice is
// the table's own backing store; callers must not modify it.
func (t *Table) Symbols() []*Symbol {
	return t.order
}

// Len returns the number of declared symbols.
func (t *Table) Len() int {
	return len(t.order)
}

// AddMenu records a parsed menu.
func (t *Table) AddMenu(m *Menu) {
	t.menus = append(t.menus, m)
}

// Menus returns every parsed menu in declaration order.
func (t *Table) Menus() []*Menu {
	return t.menus
}
