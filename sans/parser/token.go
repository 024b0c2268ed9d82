package parser

// Position represents a location in SansScript source code. Line and
// Column are zero-based and Column counts runes, matching LSP positions
// for the Devanagari range. Offset is the byte offset into the source.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

// Span represents a range in the source code.
type Span struct {
	Start Position
	End   Position
}

// TokenKind identifies the type of a token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenUnknown
	TokenComment

	// Literals and names
	TokenIdent
	TokenNumber
	TokenString

	// Keywords. The kinds from TokenIf through TokenContinue are
	// contiguous; IsKeyword relies on that order.
	TokenIf
	TokenElif
	TokenElse
	TokenWhile
	TokenFunction
	TokenReturn
	TokenBreak
	TokenContinue

	// Words classified by the fixed language tables
	TokenBuiltin
	TokenConstant
	TokenLogicalOp

	// Operators. TokenAssign through TokenPercent are contiguous;
	// IsOperator relies on that order.
	TokenAssign
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenColon
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:       "EOF",
	TokenComment:   "Comment",
	TokenIdent:     "Identifier",
	TokenNumber:    "Number",
	TokenString:    "String",
	TokenIf:        "if",
	TokenElif:      "elif",
	TokenElse:      "else",
	TokenWhile:     "while",
	TokenFunction:  "function",
	TokenReturn:    "return",
	TokenBreak:     "break",
	TokenContinue:  "continue",
	TokenBuiltin:   "Builtin",
	TokenConstant:  "Constant",
	TokenLogicalOp: "LogicalOp",
	TokenAssign:    "=",
	TokenEQ:        "==",
	TokenNE:        "!=",
	TokenLT:        "<",
	TokenLE:        "<=",
	TokenGT:        ">",
	TokenGE:        ">=",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenSlash:     "/",
	TokenPercent:   "%",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenComma:     ",",
	TokenColon:     ":",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is one of the eight statement keywords.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenIf && k <= TokenContinue
}

// IsOperator reports whether k is an arithmetic, comparison or
// assignment operator. Logical operators are words and carry
// TokenLogicalOp instead.
func (k TokenKind) IsOperator() bool {
	return k >= TokenAssign && k <= TokenPercent
}

// IsPunctuation reports whether k is a bracketing or separator token.
func (k TokenKind) IsPunctuation() bool {
	return k >= TokenLParen && k <= TokenColon
}

// Token represents a single lexical token with its source span.
// Literal holds the exact source text of the token.
type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"यदि":        TokenIf,
	"अथवा_यदि":   TokenElif,
	"अन्यथा":     TokenElse,
	"यावत्":      TokenWhile,
	"कार्यम्":    TokenFunction,
	"प्रतिददाति": TokenReturn,
	"विरम":       TokenBreak,
	"अनुवर्तय":   TokenContinue,
}

// LookupWord classifies an identifier-shaped word against the keyword,
// builtin, constant and logical-operator tables. Words in none of the
// tables are plain identifiers.
func LookupWord(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	if _, ok := builtinByName[word]; ok {
		return TokenBuiltin
	}
	if _, ok := constantByName[word]; ok {
		return TokenConstant
	}
	if _, ok := logicalOpByName[word]; ok {
		return TokenLogicalOp
	}
	return TokenIdent
}

// IsBlockOpener reports whether k is a keyword that opens an indented
// block and therefore must end its line with ':'.
func IsBlockOpener(k TokenKind) bool {
	switch k {
	case TokenIf, TokenElif, TokenElse, TokenWhile, TokenFunction:
		return true
	}
	return false
}
