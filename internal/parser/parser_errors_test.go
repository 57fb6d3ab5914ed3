package parser_test

import (
	"strings"
	"testing"

	"github.com/funvibe/nslint/internal/ast"
	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/funvibe/nslint/internal/lexer"
	"github.com/funvibe/nslint/internal/parser"
	"github.com/funvibe/nslint/internal/pipeline"
)

// parseWithErrors runs the lexer+parser and returns the pipeline context,
// errors and all.
func parseWithErrors(input string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(input)
	lp := &lexer.LexerProcessor{}
	ctx = lp.Process(ctx)
	pp := &parser.ParserProcessor{}
	ctx = pp.Process(ctx)
	return ctx
}

// expectParseError asserts that at least one error with the given code was
// produced and returns the first match.
func expectParseError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	ctx := parseWithErrors(input)
	if len(ctx.Errors) == 0 {
		t.Fatalf("expected error %s, got none\ninput: %s", code, input)
	}
	for _, e := range ctx.Errors {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range ctx.Errors {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s\ninput: %s", code, strings.Join(msgs, "\n"), input)
	return nil
}

// ---------------------------------------------------------------------------
// P001 — Unexpected token
// ---------------------------------------------------------------------------

func TestP001_InvalidBindingTarget(t *testing.T) {
	expectParseError(t, `const = 1;`, diagnostics.ErrP001)
}

func TestP001_ImportWithoutSource(t *testing.T) {
	expectParseError(t, `import * as ns;`, diagnostics.ErrP001)
}

func TestP001_ImportMissingAs(t *testing.T) {
	expectParseError(t, `import * ns from './mod';`, diagnostics.ErrP001)
}

func TestP001_ExportDanglingFrom(t *testing.T) {
	expectParseError(t, `export { a } from;`, diagnostics.ErrP001)
}

func TestP001_StrayToken(t *testing.T) {
	expectParseError(t, `];`, diagnostics.ErrP001)
}

func TestP001_UnterminatedJSX(t *testing.T) {
	expectParseError(t, `const el = <div>`, diagnostics.ErrP001)
}

// ---------------------------------------------------------------------------
// P002 — Recursion limit
// ---------------------------------------------------------------------------

func TestP002_DeeplyNestedExpression(t *testing.T) {
	input := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300) + ";"
	expectParseError(t, input, diagnostics.ErrP002)
}

// ---------------------------------------------------------------------------
// P003 — Unterminated literal
// ---------------------------------------------------------------------------

func TestP003_UnterminatedString(t *testing.T) {
	expectParseError(t, `const s = "abc`, diagnostics.ErrP003)
}

func TestP003_UnterminatedTemplate(t *testing.T) {
	expectParseError(t, "const s = `abc", diagnostics.ErrP003)
}

// ---------------------------------------------------------------------------
// Recovery
// ---------------------------------------------------------------------------

func TestRecoveryContinuesAfterBadStatement(t *testing.T) {
	ctx := parseWithErrors(`
const = 1;
const ok = 2;
`)
	if len(ctx.Errors) == 0 {
		t.Fatal("expected at least one error")
	}
	program := ctx.AstRoot
	if program == nil {
		t.Fatal("expected a program even with errors")
	}
	found := false
	for _, stmt := range program.Statements {
		if vd, ok := stmt.(*ast.VariableDeclaration); ok && len(vd.Declarations) == 1 {
			if id, ok := vd.Declarations[0].ID.(*ast.Identifier); ok && id.Value == "ok" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected the statement after the error to be parsed")
	}
}

func TestErrorPositionsAreReported(t *testing.T) {
	err := expectParseError(t, "const a = 1;\nconst = 2;", diagnostics.ErrP001)
	if err.Token.Line != 2 {
		t.Errorf("expected error on line 2, got line %d", err.Token.Line)
	}
}
