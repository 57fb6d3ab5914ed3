package symbols

type ScopeType int

const (
	ScopeModule ScopeType = iota // File top level
	ScopeFunction
	ScopeBlock
)

type SymbolKind int

const (
	ImportBinding SymbolKind = iota
	VariableSymbol
	FunctionSymbol
	ClassSymbol
	ParamSymbol
)

type Symbol struct {
	Name string
	Kind SymbolKind
}

// Scope is one lexical frame of declared names.
type Scope struct {
	kind    ScopeType
	symbols map[string]Symbol
	parent  *Scope
}

// SymbolTable tracks the lexical scope stack for one file analysis pass.
// The module scope is created up front; the walker pushes and pops
// function and block scopes as it descends.
type SymbolTable struct {
	current *Scope
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{current: &Scope{kind: ScopeModule, symbols: make(map[string]Symbol)}}
}

func (st *SymbolTable) Push(kind ScopeType) {
	st.current = &Scope{kind: kind, symbols: make(map[string]Symbol), parent: st.current}
}

func (st *SymbolTable) Pop() {
	if st.current.parent != nil {
		st.current = st.current.parent
	}
}

// Define declares a name in the current scope. Redeclaration overwrites;
// the linter does not police duplicate declarations.
func (st *SymbolTable) Define(name string, kind SymbolKind) {
	st.current.symbols[name] = Symbol{Name: name, Kind: kind}
}

// Resolve finds the innermost declaration of name.
func (st *SymbolTable) Resolve(name string) (Symbol, bool) {
	for s := st.current; s != nil; s = s.parent {
		if sym, ok := s.symbols[name]; ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

// ScopeKindOf answers which scope kind declares name, as seen from the
// current position. Names declared in an inner scope shadow the module
// binding, so a ScopeModule answer means the reference still denotes the
// original top-level binding.
func (st *SymbolTable) ScopeKindOf(name string) (ScopeType, bool) {
	for s := st.current; s != nil; s = s.parent {
		if _, ok := s.symbols[name]; ok {
			return s.kind, true
		}
	}
	return ScopeModule, false
}
