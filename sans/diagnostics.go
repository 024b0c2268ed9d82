package sans

import (
	"fmt"

	"github.com/dhamidi/vak/sans/parser"
)

// Severity grades a diagnostic.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// Diagnostic codes. The set is closed: every diagnostic carries exactly
// one of these.
const (
	CodeMissingColon       = "missing-colon"
	CodeOrphanedBranch     = "orphaned-branch"
	CodeUnmatchedParen     = "unmatched-paren"
	CodeUndefinedCall      = "undefined-call"
	CodeUnterminatedString = "unterminated-string"
)

// Diagnostic is one analyzer finding, anchored to a source span.
type Diagnostic struct {
	Span     parser.Span
	Severity Severity
	Code     string
	Message  string
}

// checkCalls reports calls to names that are neither builtins nor
// functions defined anywhere in the document. A call site is an
// identifier directly followed by '(' on the same line. Builtins lex
// as their own token kind, so they never reach the check; calling a
// function defined further down is fine.
func checkCalls(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i := range doc.Lines {
		sig := doc.Lines[i].Significant()
		for j, tok := range sig {
			if tok.Kind != parser.TokenIdent || j+1 >= len(sig) {
				continue
			}
			if sig[j+1].Kind != parser.TokenLParen {
				continue
			}
			if doc.Function(tok.Literal) != nil {
				continue
			}
			diags = append(diags, Diagnostic{
				Span:     tok.Span,
				Severity: SeverityWarning,
				Code:     CodeUndefinedCall,
				Message:  fmt.Sprintf("Undefined function '%s'.", tok.Literal),
			})
		}
	}
	return diags
}
