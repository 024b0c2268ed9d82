package codebase

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/vak/sans"
	"github.com/dhamidi/vak/sans/parser"
)

// HoverAt renders Markdown documentation for the token under the
// cursor, or nil when there is nothing useful to say about it.
func HoverAt(doc *sans.Document, pos protocol.Position) *protocol.Hover {
	tok, ok := doc.TokenAt(int(pos.Line), int(pos.Character))
	if !ok {
		return nil
	}
	content, ok := hoverContent(doc, tok)
	if !ok {
		return nil
	}
	tokenRange := toProtocolRange(tok.Span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: content,
		},
		Range: &tokenRange,
	}
}

func hoverContent(doc *sans.Document, tok parser.Token) (string, bool) {
	switch {
	case tok.Kind.IsKeyword():
		kw := parser.LookupKeyword(tok.Literal)
		if kw == nil {
			return "", false
		}
		return fmt.Sprintf("**%s** — `%s`\n\n%s", kw.Name, kw.English, kw.Doc), true
	case tok.Kind == parser.TokenBuiltin:
		bi := parser.LookupBuiltin(tok.Literal)
		if bi == nil {
			return "", false
		}
		sig := callSignature(bi.Name, bi.Params)
		return fmt.Sprintf("**%s** — `%s`\n\n```\n%s\n```\n\n%s\n\nReturns: `%s`",
			bi.Name, bi.English, sig, bi.Doc, bi.Returns), true
	case tok.Kind == parser.TokenConstant:
		c := parser.LookupConstant(tok.Literal)
		if c == nil {
			return "", false
		}
		return fmt.Sprintf("**%s** — %s", c.Name, c.Doc), true
	case tok.Kind == parser.TokenLogicalOp:
		op := parser.LookupLogicalOp(tok.Literal)
		if op == nil {
			return "", false
		}
		return fmt.Sprintf("**%s** — %s", op.Name, op.Doc), true
	case tok.Kind == parser.TokenIdent:
		return identHover(doc, tok)
	case tok.Kind == parser.TokenString:
		return fmt.Sprintf("String literal: `%s`", tok.Literal), true
	case tok.Kind == parser.TokenNumber:
		content := fmt.Sprintf("Number: `%s`", tok.Literal)
		if parser.HasDevanagariDigits(tok.Literal) {
			if value, ok := parser.NumericValue(tok.Literal); ok {
				content += fmt.Sprintf(" = %d", value)
			}
		}
		return content, true
	default:
		return "", false
	}
}

func identHover(doc *sans.Document, tok parser.Token) (string, bool) {
	if fn := doc.Function(tok.Literal); fn != nil {
		return fmt.Sprintf("**function** `%s`\n\nDefined at line %d",
			callSignature(fn.Name, fn.ParamNames()), fn.HeaderLine+1), true
	}
	scope := doc.ScopeAt(tok.Span.Start.Line)
	if v := scope.Resolve(tok.Literal); v != nil {
		return fmt.Sprintf("**variable** `%s`\n\nScope: %s  \nFirst assigned: line %d",
			v.Name, v.ScopeName(), v.Span.Start.Line+1), true
	}
	return "", false
}
