package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/funvibe/nslint/internal/diagnostics"
	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

// Reporter renders diagnostics, with ANSI colors when writing to a
// terminal.
type Reporter struct {
	out   io.Writer
	color bool
}

func NewReporter(out io.Writer) *Reporter {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Reporter{out: out, color: color}
}

func (r *Reporter) Report(errs []*diagnostics.DiagnosticError) {
	for _, e := range errs {
		if !r.color {
			fmt.Fprintln(r.out, e.Error())
			continue
		}
		colorCode := ansiRed
		if e.Code == diagnostics.ErrN001 {
			// Empty-namespace is warning-class.
			colorCode = ansiYellow
		}
		fmt.Fprintf(r.out, "%s%s:%d:%d:%s %s[%s]%s %s\n",
			ansiDim, e.File, e.Token.Line, e.Token.Column, ansiReset,
			colorCode, e.Code, ansiReset, e.Message)
	}
}

func (r *Reporter) Summary(fileCount, problemCount int) {
	if problemCount == 0 {
		return
	}
	fmt.Fprintf(r.out, "\n%d problem(s) in %d file(s)\n", problemCount, fileCount)
}
