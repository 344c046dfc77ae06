package symbol

// Menu is a named grouping of symbols. Menus nest; a menu references its
// parent but does not own it. A menu is populated while its body is parsed
// and never mutated afterwards.
type Menu struct {
	Prompt  string
	Symbols []*Symbol
	Parent  *Menu
}

// AddSymbol appends a symbol to the menu in declaration order.
func (m *Menu) AddSymbol(s *Symbol) {
	m.Symbols = append(m.Symbols, s)
}
