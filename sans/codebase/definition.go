package codebase

import (
	"sort"
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/vak/sans"
	"github.com/dhamidi/vak/sans/parser"
)

// DefinitionAt resolves the identifier under the cursor to the place
// it was defined: a function's name in its header, or a variable's
// first assignment in the innermost scope that knows it.
func DefinitionAt(doc *sans.Document, pos protocol.Position, docURI protocol.DocumentUri) *protocol.Location {
	tok, ok := doc.TokenAt(int(pos.Line), int(pos.Character))
	if !ok || tok.Kind != parser.TokenIdent {
		return nil
	}
	if fn := doc.Function(tok.Literal); fn != nil {
		return &protocol.Location{URI: docURI, Range: toProtocolRange(fn.NameSpan)}
	}
	scope := doc.ScopeAt(tok.Span.Start.Line)
	if v := scope.Resolve(tok.Literal); v != nil {
		return &protocol.Location{URI: docURI, Range: toProtocolRange(v.Span)}
	}
	return nil
}

// DocumentSymbols lists every function with its body extent and every
// global variable, ordered by position in the document.
func DocumentSymbols(doc *sans.Document) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, fn := range doc.Functions {
		endLine := fn.BodyEnd
		if endLine < fn.HeaderLine {
			endLine = fn.HeaderLine
		}
		if endLine >= len(doc.Lines) {
			endLine = len(doc.Lines) - 1
		}
		detail := "(" + strings.Join(fn.ParamNames(), ", ") + ")"
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:   fn.Name,
			Detail: &detail,
			Kind:   protocol.SymbolKindFunction,
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(fn.HeaderLine), Character: 0},
				End: protocol.Position{
					Line:      protocol.UInteger(endLine),
					Character: protocol.UInteger(utf8.RuneCountInString(doc.Lines[endLine].Text)),
				},
			},
			SelectionRange: toProtocolRange(fn.NameSpan),
		})
	}
	for _, v := range doc.Globals {
		nameRange := toProtocolRange(v.Span)
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           v.Name,
			Kind:           protocol.SymbolKindVariable,
			Range:          nameRange,
			SelectionRange: nameRange,
		})
	}
	sort.SliceStable(symbols, func(i, j int) bool {
		if symbols[i].Range.Start.Line != symbols[j].Range.Start.Line {
			return symbols[i].Range.Start.Line < symbols[j].Range.Start.Line
		}
		return symbols[i].Range.Start.Character < symbols[j].Range.Start.Character
	})
	return symbols
}
