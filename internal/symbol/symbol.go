package symbol

// Kind is the declared type of a symbol.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindTristate
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindTristate:
		return "tristate"
	case KindString:
		return "string"
	default:
		return "none"
	}
}

// Symbol is one named configuration unit.
//
// Edges live in two forms. While parsing, `depends on` and `select` targets
// are recorded by name in DependNames and SelectNames, because the referenced
// symbols may not exist yet. After resolve.Resolve runs, Depends and Selects
// carry the direct links and the name lists are no longer consulted.
type Symbol struct {
	Name   string
	Kind   Kind
	Prompt string

	// Origin of the `config` statement, for diagnostics.
	File string
	Line int

	DependNames []string
	SelectNames []string

	Depends []*Symbol
	Selects []*Symbol

	// Dependents are the symbols whose Depends include this one. Populated
	// during resolution for dependency edges only, never for selects.
	Dependents []*Symbol

	// IsDefault records a `default y` statement.
	IsDefault bool
	// IsSelectable is advisory: set when a dependency of a dependent was
	// selected, meaning the dependent's gate may now be open. It does not
	// imply selection.
	IsSelectable bool
	// IsSelected is the final, queryable state.
	IsSelected bool

	// Menu the symbol was declared in, if any.
	Parent *Menu
}

// SetKind sets the symbol's declared type. The prompt accompanies the kind
// statement; an empty prompt leaves any earlier prompt in place.
func (s *Symbol) SetKind(k Kind, prompt string) {
	s.Kind = k
	if prompt != "" {
		s.Prompt = prompt
	}
}

// AddDependency appends a dependency target by name.
func (s *Symbol) AddDependency(name string) {
	s.DependNames = append(s.DependNames, name)
}

// AddSelect appends a select target by name.
func (s *Symbol) AddSelect(name string) {
	s.SelectNames = append(s.SelectNames, name)
}

// HasDependencies reports whether the symbol has any resolved dependency.
func (s *Symbol) HasDependencies() bool {
	return len(s.Depends) > 0
}

// DependenciesMet reports whether every resolved dependency is selected.
// A symbol with no dependencies trivially satisfies this.
func (s *Symbol) DependenciesMet() bool {
	for _, dep := range s.Depends {
		if !dep.IsSelected {
			return false
		}
	}
	return true
}
