package diagnostics

import (
	"fmt"

	"github.com/funvibe/nslint/internal/token"
)

// ErrorCode tags a diagnostic with a stable identifier.
type ErrorCode string

const (
	// Namespace validation
	ErrN001 ErrorCode = "N001" // no exported names found in module
	ErrN002 ErrorCode = "N002" // name not found in (deeply) imported namespace
	ErrN003 ErrorCode = "N003" // assignment to member of namespace
	ErrN004 ErrorCode = "N004" // unvalidatable computed reference
	ErrN005 ErrorCode = "N005" // invalid destructuring key

	// Module resolution
	ErrR001 ErrorCode = "R001" // error while analyzing imported module

	// Lexing/parsing
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // recursion depth limit exceeded
	ErrP003 ErrorCode = "P003" // unterminated literal
)

// DiagnosticError is a positioned, code-tagged diagnostic.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string // source file, filled in by the walker if empty
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", e.File, e.Token.Line, e.Token.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: [%s] %s", e.Token.Line, e.Token.Column, e.Code, e.Message)
}
