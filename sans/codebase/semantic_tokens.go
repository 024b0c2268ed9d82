package codebase

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/vak/sans"
	"github.com/dhamidi/vak/sans/parser"
)

// The legend advertised in the server capabilities. Token type
// indices in the encoded data refer to positions in this slice.
var semanticTokenTypes = []string{
	"keyword",
	"function",
	"variable",
	"number",
	"string",
	"comment",
	"operator",
	"parameter",
	"enumMember",
}

var semanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
}

const (
	semKeyword = iota
	semFunction
	semVariable
	semNumber
	semString
	semComment
	semOperator
	semParameter
	semEnumMember
)

// SemanticTokensFull encodes every classifiable token in the document
// using the LSP relative encoding: five integers per token, with line
// and start column stored as deltas from the previously emitted token.
func SemanticTokensFull(doc *sans.Document) *protocol.SemanticTokens {
	data := []protocol.UInteger{}
	prevLine := 0
	prevColumn := 0
	for lineno, line := range doc.Lines {
		for _, tok := range line.Tokens {
			tokenType, ok := classifyToken(doc, lineno, tok)
			if !ok {
				continue
			}
			deltaLine := lineno - prevLine
			deltaStart := tok.Span.Start.Column
			if deltaLine == 0 {
				deltaStart = tok.Span.Start.Column - prevColumn
			}
			length := tok.Span.End.Column - tok.Span.Start.Column
			data = append(data,
				protocol.UInteger(deltaLine),
				protocol.UInteger(deltaStart),
				protocol.UInteger(length),
				protocol.UInteger(tokenType),
				0,
			)
			prevLine = lineno
			prevColumn = tok.Span.Start.Column
		}
	}
	return &protocol.SemanticTokens{Data: data}
}

func classifyToken(doc *sans.Document, line int, tok parser.Token) (int, bool) {
	switch {
	case tok.Kind.IsKeyword():
		return semKeyword, true
	case tok.Kind == parser.TokenBuiltin:
		return semFunction, true
	case tok.Kind == parser.TokenConstant:
		return semEnumMember, true
	case tok.Kind == parser.TokenLogicalOp, tok.Kind.IsOperator():
		return semOperator, true
	case tok.Kind == parser.TokenNumber:
		return semNumber, true
	case tok.Kind == parser.TokenString:
		return semString, true
	case tok.Kind == parser.TokenComment:
		return semComment, true
	case tok.Kind == parser.TokenIdent:
		if doc.Function(tok.Literal) != nil {
			return semFunction, true
		}
		if fn := owningFunction(doc, line); fn != nil && fn.HasParam(tok.Literal) {
			return semParameter, true
		}
		return semVariable, true
	default:
		return 0, false
	}
}

// owningFunction finds the function a line belongs to, counting the
// header line itself so parameters highlight where they are declared.
func owningFunction(doc *sans.Document, line int) *sans.FunctionSymbol {
	if fn := doc.FunctionOnLine(line); fn != nil {
		return fn
	}
	return doc.FunctionAt(line)
}
