package parser

import (
	"math"
	"unicode/utf8"
)

const (
	devanagariFirst = 'ऀ'
	devanagariLast  = 'ॿ'
	devanagariZero  = '०'
	devanagariNine  = '९'
)

// Lexer produces tokens from SansScript source text. Whitespace is
// skipped between tokens; comments are emitted as tokens so that
// highlighting can see them.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

// NewLexer creates a lexer reading from input. The file name is
// recorded on token positions and may be empty.
func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{input: input, file: file}
}

// Lex tokenizes the whole input, excluding the final EOF token.
func Lex(input []byte, file string) []Token {
	lexer := NewLexer(input, file)
	var tokens []Token
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) position() Position {
	return Position{File: l.file, Offset: l.pos, Line: l.line, Column: l.column}
}

// peek returns the rune at the current position without consuming it,
// or 0 at end of input.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

// advance consumes one rune, tracking line and column. Columns count
// runes, not bytes.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, size := utf8.DecodeRune(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// NextToken returns the next token, or a token of kind TokenEOF at end
// of input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	start := l.position()
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()
	switch {
	case ch == '#':
		return l.scanComment(start)
	case ch == '"':
		return l.scanString(start)
	case isDigit(ch):
		return l.scanNumber(start)
	case isIdentStart(ch):
		return l.scanWord(start)
	default:
		return l.scanOperator(start)
	}
}

// scanComment consumes '#' and everything up to the end of the line.
func (l *Lexer) scanComment(start Position) Token {
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenComment, start)
}

// scanString consumes a double-quoted literal. Strings have no escape
// sequences and never span lines; a literal cut off by the line end or
// end of input keeps its opening quote but no closing one.
func (l *Lexer) scanString(start Position) Token {
	l.advance()
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' {
			break
		}
		l.advance()
		if ch == '"' {
			break
		}
	}
	return l.token(TokenString, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	return l.token(TokenNumber, start)
}

func (l *Lexer) scanWord(start Position) Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	tok := l.token(TokenIdent, start)
	tok.Kind = LookupWord(tok.Literal)
	return tok
}

func (l *Lexer) scanOperator(start Position) Token {
	ch := l.advance()
	switch ch {
	case '=':
		if l.peek() == '=' {
			l.advance()
			return l.token(TokenEQ, start)
		}
		return l.token(TokenAssign, start)
	case '!':
		if l.peek() == '=' {
			l.advance()
			return l.token(TokenNE, start)
		}
	case '<':
		if l.peek() == '=' {
			l.advance()
			return l.token(TokenLE, start)
		}
		return l.token(TokenLT, start)
	case '>':
		if l.peek() == '=' {
			l.advance()
			return l.token(TokenGE, start)
		}
		return l.token(TokenGT, start)
	case '+':
		return l.token(TokenPlus, start)
	case '-':
		return l.token(TokenMinus, start)
	case '*':
		return l.token(TokenStar, start)
	case '/':
		return l.token(TokenSlash, start)
	case '%':
		return l.token(TokenPercent, start)
	case '(':
		return l.token(TokenLParen, start)
	case ')':
		return l.token(TokenRParen, start)
	case '[':
		return l.token(TokenLBracket, start)
	case ']':
		return l.token(TokenRBracket, start)
	case ',':
		return l.token(TokenComma, start)
	case ':':
		return l.token(TokenColon, start)
	}
	return l.token(TokenUnknown, start)
}

// token builds a token of the given kind spanning from start to the
// current position.
func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

// isIdentStart reports whether r can begin an identifier. Identifiers
// mix the Devanagari block (U+0900..U+097F) with ASCII letters and
// underscore.
func isIdentStart(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= devanagariFirst && r <= devanagariLast)
}

// isIdentPart reports whether r can continue an identifier.
func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// isDigit reports whether r is an ASCII or Devanagari digit. The lexer
// checks digits before identifier starts, so a number may begin with a
// Devanagari digit even though the digit block sits inside the
// identifier range.
func isDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= devanagariZero && r <= devanagariNine)
}

// IsIdentRune reports whether r can appear in an identifier. Completion
// uses it to find the word around the cursor.
func IsIdentRune(r rune) bool {
	return isIdentPart(r)
}

// MeasureIndent returns the indentation width of a line, counting a
// space as one column and a tab as four.
func MeasureIndent(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

// NumericValue converts a numeric literal that may mix ASCII and
// Devanagari digits into its integer value. The second result is false
// if text is empty, contains a non-digit rune, or overflows int64.
func NumericValue(text string) (int64, bool) {
	if text == "" {
		return 0, false
	}
	var value int64
	for _, r := range text {
		var digit int64
		switch {
		case r >= '0' && r <= '9':
			digit = int64(r - '0')
		case r >= devanagariZero && r <= devanagariNine:
			digit = int64(r - devanagariZero)
		default:
			return 0, false
		}
		if value > (math.MaxInt64-digit)/10 {
			return 0, false
		}
		value = value*10 + digit
	}
	return value, true
}

// HasDevanagariDigits reports whether text contains a digit from the
// Devanagari block.
func HasDevanagariDigits(text string) bool {
	for _, r := range text {
		if r >= devanagariZero && r <= devanagariNine {
			return true
		}
	}
	return false
}
