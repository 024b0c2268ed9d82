package codebase

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/vak/sans"
	"github.com/dhamidi/vak/sans/parser"
)

// CompletionsAt computes completion items for a cursor position. The
// text before the cursor picks one of three modes: a statement start
// offers keywords, a word directly followed by '(' offers callees, and
// everything else offers scope variables, functions and value words.
// Items keep table order respectively declaration order, so the same
// document and position always produce the same list.
func CompletionsAt(doc *sans.Document, pos protocol.Position) []protocol.CompletionItem {
	line := int(pos.Line)
	if line < 0 || line >= len(doc.Lines) {
		return nil
	}
	runes := []rune(doc.Lines[line].Text)
	cursor := int(pos.Character)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	start := cursor
	for start > 0 && parser.IsIdentRune(runes[start-1]) {
		start--
	}
	prefix := string(runes[start:cursor])

	switch {
	case atStatementStart(doc.Lines[line], runes, start):
		return keywordCompletions(prefix)
	case prefix != "" && cursor < len(runes) && runes[cursor] == '(':
		return calleeCompletions(doc, prefix)
	default:
		return scopeCompletions(doc, line, prefix)
	}
}

// atStatementStart reports whether only whitespace, or a block
// opener's trailing colon, sits before the word being completed.
func atStatementStart(line sans.Line, runes []rune, start int) bool {
	before := strings.TrimRight(string(runes[:start]), " \t")
	if before == "" {
		return true
	}
	if !strings.HasSuffix(before, ":") {
		return false
	}
	sig := line.Significant()
	return len(sig) > 0 && parser.IsBlockOpener(sig[0].Kind)
}

func keywordCompletions(prefix string) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(parser.Keywords))
	for i := range parser.Keywords {
		kw := &parser.Keywords[i]
		if !strings.HasPrefix(kw.Name, prefix) {
			continue
		}
		kind := protocol.CompletionItemKindKeyword
		detail := "(" + kw.English + ")"
		item := protocol.CompletionItem{
			Label:         kw.Name,
			Kind:          &kind,
			Detail:        &detail,
			Documentation: kw.Doc,
		}
		if kw.Snippet != "" {
			insert := kw.Snippet
			format := protocol.InsertTextFormatSnippet
			item.InsertText = &insert
			item.InsertTextFormat = &format
		}
		items = append(items, item)
	}
	return append(items, valueWordCompletions(prefix)...)
}

func calleeCompletions(doc *sans.Document, prefix string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for i := range parser.Builtins {
		bi := &parser.Builtins[i]
		if !strings.HasPrefix(bi.Name, prefix) {
			continue
		}
		kind := protocol.CompletionItemKindFunction
		detail := bi.English + ": " + callSignature(bi.Name, bi.Params)
		insert := callSnippet(bi.Name, bi.Params)
		format := protocol.InsertTextFormatSnippet
		items = append(items, protocol.CompletionItem{
			Label:            bi.Name,
			Kind:             &kind,
			Detail:           &detail,
			Documentation:    bi.Doc,
			InsertText:       &insert,
			InsertTextFormat: &format,
		})
	}
	return append(items, functionCompletions(doc, prefix)...)
}

func scopeCompletions(doc *sans.Document, line int, prefix string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, v := range doc.ScopeAt(line).Visible() {
		if !strings.HasPrefix(v.Name, prefix) {
			continue
		}
		kind := protocol.CompletionItemKindVariable
		detail := "variable (" + v.ScopeName() + ")"
		items = append(items, protocol.CompletionItem{
			Label:  v.Name,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	items = append(items, functionCompletions(doc, prefix)...)
	return append(items, valueWordCompletions(prefix)...)
}

func functionCompletions(doc *sans.Document, prefix string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, fn := range doc.Functions {
		// Skip definitions shadowed by a later one of the same name.
		if doc.Function(fn.Name) != fn {
			continue
		}
		if !strings.HasPrefix(fn.Name, prefix) {
			continue
		}
		params := fn.ParamNames()
		kind := protocol.CompletionItemKindFunction
		detail := "function " + callSignature(fn.Name, params)
		insert := callSnippet(fn.Name, params)
		format := protocol.InsertTextFormatSnippet
		items = append(items, protocol.CompletionItem{
			Label:            fn.Name,
			Kind:             &kind,
			Detail:           &detail,
			InsertText:       &insert,
			InsertTextFormat: &format,
		})
	}
	return items
}

// valueWordCompletions offers the boolean constants and word-spelled
// logical operators, which fit anywhere an expression may follow.
func valueWordCompletions(prefix string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for i := range parser.Constants {
		c := &parser.Constants[i]
		if !strings.HasPrefix(c.Name, prefix) {
			continue
		}
		kind := protocol.CompletionItemKindConstant
		detail := c.Doc
		items = append(items, protocol.CompletionItem{Label: c.Name, Kind: &kind, Detail: &detail})
	}
	for i := range parser.LogicalOps {
		op := &parser.LogicalOps[i]
		if !strings.HasPrefix(op.Name, prefix) {
			continue
		}
		kind := protocol.CompletionItemKindOperator
		detail := op.Doc
		items = append(items, protocol.CompletionItem{Label: op.Name, Kind: &kind, Detail: &detail})
	}
	return items
}

// callSignature renders "name(a, b)".
func callSignature(name string, params []string) string {
	return name + "(" + strings.Join(params, ", ") + ")"
}

// callSnippet renders an LSP snippet with one tab stop per parameter.
func callSnippet(name string, params []string) string {
	if len(params) == 0 {
		return name + "()"
	}
	stops := make([]string, len(params))
	for i, p := range params {
		stops[i] = fmt.Sprintf("${%d:%s}", i+1, p)
	}
	return name + "(" + strings.Join(stops, ", ") + ")"
}
