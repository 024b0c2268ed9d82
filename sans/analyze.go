// Package sans builds the document model that language features are
// served from: per-line tokens, function and variable symbols, and the
// diagnostics for one SansScript source text.
package sans

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/vak/sans/parser"
)

// Analyze builds the document model for text. It never fails: lexing
// has no error states and structural problems surface as diagnostics.
func Analyze(text string) *Document {
	doc := &Document{
		Lines:           splitLines(text),
		functionsByName: make(map[string]*FunctionSymbol),
		globalsByName:   make(map[string]*VariableSymbol),
		headerLines:     make(map[int]*FunctionSymbol),
	}
	for _, tok := range parser.Lex([]byte(text), "") {
		line := tok.Span.Start.Line
		if line < len(doc.Lines) {
			doc.Lines[line].Tokens = append(doc.Lines[line].Tokens, tok)
		}
	}

	b := &builder{doc: doc, fnIndent: -1}
	b.run()

	for _, fn := range doc.Functions {
		if fn.BodyEnd > fn.HeaderLine {
			doc.bodies = append(doc.bodies, bodyRange{start: fn.HeaderLine + 1, end: fn.BodyEnd, fn: fn})
		}
	}

	diags := append(b.diags, checkCalls(doc)...)
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Span.Start.Line != diags[j].Span.Start.Line {
			return diags[i].Span.Start.Line < diags[j].Span.Start.Line
		}
		return diags[i].Span.Start.Column < diags[j].Span.Start.Column
	})
	doc.Diagnostics = diags
	return doc
}

// splitLines mirrors editor line counting: a final newline does not
// start another line, and an empty document still has one empty line.
func splitLines(text string) []Line {
	raw := strings.Split(text, "\n")
	if len(raw) > 1 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]Line, len(raw))
	offset := 0
	for i, lineText := range raw {
		lines[i] = Line{Text: lineText, Offset: offset, Indent: parser.MeasureIndent(lineText)}
		offset += len(lineText) + 1
	}
	return lines
}

// builder walks the lines once, tracking the currently open function
// and the document-wide paren stack. Blank and comment-only lines
// never affect structure.
type builder struct {
	doc   *Document
	diags []Diagnostic

	fn       *FunctionSymbol
	fnIndent int
	parens   []parser.Token
}

func (b *builder) run() {
	for i := range b.doc.Lines {
		line := &b.doc.Lines[i]
		b.checkStrings(line.Tokens)
		sig := line.Significant()
		if len(sig) == 0 {
			continue
		}

		if b.fn != nil {
			if line.Indent <= b.fnIndent {
				b.fn.BodyEnd = i - 1
				b.fn = nil
				b.fnIndent = -1
			} else {
				b.fn.BodyEnd = i
			}
		}

		b.trackParens(sig)

		if parser.IsBlockOpener(sig[0].Kind) {
			b.checkBlockOpener(i, line, sig)
		} else {
			b.recordAssignment(sig)
		}
	}

	if b.fn != nil {
		b.fn.BodyEnd = len(b.doc.Lines) - 1
	}
	b.reportUnclosedParens()
}

// checkBlockOpener handles a line starting with a block-opening
// keyword: the colon check, branch anchoring for अथवा_यदि and अन्यथा,
// and function registration. A missing colon is reported but never
// stops analysis of the lines below it.
func (b *builder) checkBlockOpener(lineno int, line *Line, sig []parser.Token) {
	first := sig[0]
	if sig[len(sig)-1].Kind != parser.TokenColon {
		message := fmt.Sprintf("'%s' statement must end with ':'", first.Literal)
		if first.Kind == parser.TokenElse {
			message = "'अन्यथा' must end with ':'"
		}
		b.report(lineEndSpan(*line, lineno), SeverityError, CodeMissingColon, message)
	}

	switch first.Kind {
	case parser.TokenElif, parser.TokenElse:
		if !b.hasBranchAnchor(lineno, line.Indent) {
			b.report(first.Span, SeverityError, CodeOrphanedBranch,
				fmt.Sprintf("'%s' without a preceding 'यदि' at the same indentation.", first.Literal))
		}
	case parser.TokenFunction:
		b.openFunction(lineno, line.Indent, sig)
	}
}

// hasBranchAnchor reports whether the nearest significant line above
// lineno at the same indentation opens a यदि or अथवा_यदि block. Deeper
// lines belong to a previous sibling's body and are skipped; a
// shallower line means the enclosing block ended without one.
func (b *builder) hasBranchAnchor(lineno, indent int) bool {
	for j := lineno - 1; j >= 0; j-- {
		line := b.doc.Lines[j]
		if line.Blank() {
			continue
		}
		if line.Indent > indent {
			continue
		}
		if line.Indent < indent {
			return false
		}
		kind := line.Significant()[0].Kind
		return kind == parser.TokenIf || kind == parser.TokenElif
	}
	return false
}

// openFunction registers the symbol for a कार्यम् header. One function
// is open at a time: a nested header takes over and lines that dedent
// out of it fall back to global scope. A header not matching
// "कार्यम् name ( params" registers nothing.
func (b *builder) openFunction(lineno, indent int, sig []parser.Token) {
	fn := parseFunctionHeader(lineno, sig)
	if fn == nil {
		return
	}
	b.fn = fn
	b.fnIndent = indent
	b.doc.Functions = append(b.doc.Functions, fn)
	b.doc.functionsByName[fn.Name] = fn
	b.doc.headerLines[lineno] = fn
	for _, p := range fn.Params {
		fn.addLocal(&VariableSymbol{Name: p.Name, Owner: fn, Span: p.Span})
	}
}

func parseFunctionHeader(lineno int, sig []parser.Token) *FunctionSymbol {
	if len(sig) < 4 || sig[1].Kind != parser.TokenIdent {
		return nil
	}
	parenIdx := -1
	for i := 2; i < len(sig); i++ {
		if sig[i].Kind == parser.TokenLParen {
			parenIdx = i
			break
		}
	}
	if parenIdx < 0 {
		return nil
	}

	fn := &FunctionSymbol{
		Name:         sig[1].Literal,
		NameSpan:     sig[1].Span,
		HeaderLine:   lineno,
		BodyEnd:      lineno,
		localsByName: make(map[string]*VariableSymbol),
	}
	for i := parenIdx + 1; i < len(sig); i++ {
		if sig[i].Kind == parser.TokenRParen {
			break
		}
		if sig[i].Kind == parser.TokenIdent {
			fn.Params = append(fn.Params, Param{Name: sig[i].Literal, Span: sig[i].Span})
		}
	}
	return fn
}

// recordAssignment registers "name = ..." as a variable's first
// assignment, in the scope of the open function or globally.
func (b *builder) recordAssignment(sig []parser.Token) {
	if len(sig) < 3 {
		return
	}
	if sig[0].Kind != parser.TokenIdent || sig[1].Kind != parser.TokenAssign {
		return
	}
	name := sig[0].Literal
	if b.fn != nil {
		b.fn.addLocal(&VariableSymbol{Name: name, Owner: b.fn, Span: sig[0].Span})
		return
	}
	if _, ok := b.doc.globalsByName[name]; ok {
		return
	}
	v := &VariableSymbol{Name: name, Span: sig[0].Span}
	b.doc.Globals = append(b.doc.Globals, v)
	b.doc.globalsByName[name] = v
}

// checkStrings reports string literals cut off by the line end.
func (b *builder) checkStrings(tokens []parser.Token) {
	for _, tok := range tokens {
		if tok.Kind != parser.TokenString {
			continue
		}
		if len(tok.Literal) >= 2 && strings.HasSuffix(tok.Literal, `"`) {
			continue
		}
		b.report(tok.Span, SeverityError, CodeUnterminatedString, "Unterminated string literal.")
	}
}

// trackParens matches parens in one stack across the whole document, so
// a call spanning lines is fine and only true imbalances are reported.
func (b *builder) trackParens(sig []parser.Token) {
	for _, tok := range sig {
		switch tok.Kind {
		case parser.TokenLParen:
			b.parens = append(b.parens, tok)
		case parser.TokenRParen:
			if len(b.parens) == 0 {
				b.report(tok.Span, SeverityError, CodeUnmatchedParen, "Unmatched ')'.")
			} else {
				b.parens = b.parens[:len(b.parens)-1]
			}
		}
	}
}

func (b *builder) reportUnclosedParens() {
	if len(b.parens) == 0 {
		return
	}
	last := len(b.doc.Lines) - 1
	span := lineEndSpan(b.doc.Lines[last], last)
	for _, open := range b.parens {
		b.report(span, SeverityError, CodeUnmatchedParen,
			fmt.Sprintf("Unclosed '(' (opened on line %d).", open.Span.Start.Line+1))
	}
}

func (b *builder) report(span parser.Span, severity Severity, code, message string) {
	b.diags = append(b.diags, Diagnostic{Span: span, Severity: severity, Code: code, Message: message})
}

// lineEndSpan is a one-column span just past the last rune of a line.
func lineEndSpan(line Line, lineno int) parser.Span {
	end := utf8.RuneCountInString(line.Text)
	offset := line.Offset + len(line.Text)
	return parser.Span{
		Start: parser.Position{Offset: offset, Line: lineno, Column: end},
		End:   parser.Position{Offset: offset, Line: lineno, Column: end + 1},
	}
}
