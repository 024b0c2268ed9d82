package sans

import (
	"sort"

	"github.com/dhamidi/vak/sans/parser"
)

// Line is one source line with its tokens. A trailing comment token, if
// any, is always the last token of the line.
type Line struct {
	Text   string
	Offset int // byte offset of the line start in the document
	Indent int
	Tokens []parser.Token
}

// Significant returns the line's tokens without a trailing comment.
func (ln Line) Significant() []parser.Token {
	if n := len(ln.Tokens); n > 0 && ln.Tokens[n-1].Kind == parser.TokenComment {
		return ln.Tokens[:n-1]
	}
	return ln.Tokens
}

// Blank reports whether the line has no significant tokens.
func (ln Line) Blank() bool {
	return len(ln.Significant()) == 0
}

// Param is a function parameter and the span of its name in the header.
type Param struct {
	Name string
	Span parser.Span
}

// FunctionSymbol is a function defined with कार्यम्.
type FunctionSymbol struct {
	Name       string
	NameSpan   parser.Span
	Params     []Param
	HeaderLine int
	// BodyEnd is the last line that still belongs to the function;
	// the body covers lines HeaderLine+1 through BodyEnd.
	BodyEnd int

	locals       []*VariableSymbol
	localsByName map[string]*VariableSymbol
}

// ParamNames returns the parameter names in header order.
func (f *FunctionSymbol) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

// HasParam reports whether name is one of the function's parameters.
func (f *FunctionSymbol) HasParam(name string) bool {
	for _, p := range f.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Locals returns the function's variables, parameters first, then
// assigned locals in first-assignment order.
func (f *FunctionSymbol) Locals() []*VariableSymbol {
	return f.locals
}

// Local returns the local variable or parameter named name, or nil.
func (f *FunctionSymbol) Local(name string) *VariableSymbol {
	return f.localsByName[name]
}

// addLocal records a variable in the function's scope. The first
// assignment wins; later ones keep the original span.
func (f *FunctionSymbol) addLocal(v *VariableSymbol) {
	if _, ok := f.localsByName[v.Name]; ok {
		return
	}
	f.locals = append(f.locals, v)
	f.localsByName[v.Name] = v
}

// VariableSymbol is a variable, anchored at its first assignment.
// Parameters are locals of their function, anchored at the parameter
// name in the header.
type VariableSymbol struct {
	Name  string
	Owner *FunctionSymbol // nil for globals
	Span  parser.Span
}

// ScopeName returns the name hover shows for the variable's scope.
func (v *VariableSymbol) ScopeName() string {
	if v.Owner == nil {
		return "global"
	}
	return v.Owner.Name
}

// Document is the analyzed model of one SansScript source text. It is
// immutable once built; consumers replace the whole value on every
// change.
type Document struct {
	Lines       []Line
	Functions   []*FunctionSymbol // declaration order, duplicates included
	Globals     []*VariableSymbol // first-assignment order
	Diagnostics []Diagnostic      // sorted by start position

	functionsByName map[string]*FunctionSymbol
	globalsByName   map[string]*VariableSymbol
	headerLines     map[int]*FunctionSymbol
	bodies          []bodyRange
}

// bodyRange covers the body lines start through end, inclusive. Bodies
// never overlap and are ordered by start line.
type bodyRange struct {
	start, end int
	fn         *FunctionSymbol
}

// Function returns the function name currently resolves to. With
// duplicate definitions the later one wins.
func (d *Document) Function(name string) *FunctionSymbol {
	return d.functionsByName[name]
}

// Global returns the global variable named name, or nil.
func (d *Document) Global(name string) *VariableSymbol {
	return d.globalsByName[name]
}

// FunctionAt returns the function whose body contains line, or nil.
// The header line itself does not count as part of the body.
func (d *Document) FunctionAt(line int) *FunctionSymbol {
	i := sort.Search(len(d.bodies), func(i int) bool { return d.bodies[i].end >= line })
	if i < len(d.bodies) && d.bodies[i].start <= line {
		return d.bodies[i].fn
	}
	return nil
}

// FunctionOnLine returns the function whose header sits on line, or
// nil.
func (d *Document) FunctionOnLine(line int) *FunctionSymbol {
	return d.headerLines[line]
}

// ScopeAt returns the scope chain in effect on the given line.
func (d *Document) ScopeAt(line int) ScopeChain {
	return ScopeChain{doc: d, fn: d.FunctionAt(line)}
}

// TokenAt returns the token covering the given line and rune column. A
// position at the very end of a token belongs to the next token.
func (d *Document) TokenAt(line, column int) (parser.Token, bool) {
	if line < 0 || line >= len(d.Lines) {
		return parser.Token{}, false
	}
	for _, tok := range d.Lines[line].Tokens {
		if tok.Span.Start.Column <= column && column < tok.Span.End.Column {
			return tok, true
		}
	}
	return parser.Token{}, false
}

// ScopeChain resolves names the way the runtime would on a given line:
// locals of the enclosing function first, then globals.
type ScopeChain struct {
	doc *Document
	fn  *FunctionSymbol
}

// Function returns the enclosing function, or nil at the top level.
func (s ScopeChain) Function() *FunctionSymbol {
	return s.fn
}

// Resolve returns the variable name refers to in this scope, or nil.
func (s ScopeChain) Resolve(name string) *VariableSymbol {
	if s.fn != nil {
		if v := s.fn.Local(name); v != nil {
			return v
		}
	}
	return s.doc.globalsByName[name]
}

// Visible lists the variables completion offers in this scope: locals
// in first-assignment order, then globals not shadowed by a local.
func (s ScopeChain) Visible() []*VariableSymbol {
	if s.fn == nil {
		return s.doc.Globals
	}
	visible := make([]*VariableSymbol, 0, len(s.fn.locals)+len(s.doc.Globals))
	visible = append(visible, s.fn.locals...)
	for _, g := range s.doc.Globals {
		if s.fn.Local(g.Name) == nil {
			visible = append(visible, g)
		}
	}
	return visible
}
