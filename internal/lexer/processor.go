package lexer

import (
	"github.com/funvibe/nslint/internal/pipeline"
	"github.com/funvibe/nslint/internal/token"
)

// LexerProcessor adapts the lexer to the pipeline.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	for {
		tok := l.NextToken()
		ctx.TokenStream = append(ctx.TokenStream, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return ctx
}
