package symbols

import "testing"

func TestResolveThroughScopeStack(t *testing.T) {
	st := NewSymbolTable()
	st.Define("ns", ImportBinding)

	st.Push(ScopeFunction)
	st.Define("param", ParamSymbol)

	if sym, ok := st.Resolve("ns"); !ok || sym.Kind != ImportBinding {
		t.Errorf("expected ns to resolve to the import binding, got %+v (ok=%v)", sym, ok)
	}
	if _, ok := st.Resolve("param"); !ok {
		t.Error("expected param to resolve inside the function scope")
	}

	st.Pop()
	if _, ok := st.Resolve("param"); ok {
		t.Error("param must not resolve after its scope is popped")
	}
}

func TestScopeKindOfShadowing(t *testing.T) {
	st := NewSymbolTable()
	st.Define("ns", ImportBinding)

	if kind, ok := st.ScopeKindOf("ns"); !ok || kind != ScopeModule {
		t.Fatalf("expected module scope, got %v (ok=%v)", kind, ok)
	}

	st.Push(ScopeFunction)
	st.Push(ScopeBlock)
	st.Define("ns", VariableSymbol)

	if kind, _ := st.ScopeKindOf("ns"); kind != ScopeBlock {
		t.Errorf("expected block scope for shadowed name, got %v", kind)
	}

	st.Pop()
	if kind, _ := st.ScopeKindOf("ns"); kind != ScopeModule {
		t.Errorf("expected module scope after leaving the block, got %v", kind)
	}

	if _, ok := st.ScopeKindOf("unknown"); ok {
		t.Error("unknown name must not report a scope")
	}
}

func TestPopAtModuleScopeIsNoop(t *testing.T) {
	st := NewSymbolTable()
	st.Define("a", VariableSymbol)
	st.Pop()
	if _, ok := st.Resolve("a"); !ok {
		t.Error("module scope must survive a stray pop")
	}
}
