package parser

import "testing"

func TestLookupWord(t *testing.T) {
	tests := []struct {
		word string
		kind TokenKind
	}{
		{"यदि", TokenIf},
		{"अथवा_यदि", TokenElif},
		{"अन्यथा", TokenElse},
		{"यावत्", TokenWhile},
		{"कार्यम्", TokenFunction},
		{"प्रतिददाति", TokenReturn},
		{"विरम", TokenBreak},
		{"अनुवर्तय", TokenContinue},
		{"मुद्रय", TokenBuiltin},
		{"सञ्चिका_पठ", TokenBuiltin},
		{"सत्यम्", TokenConstant},
		{"असत्यम्", TokenConstant},
		{"च", TokenLogicalOp},
		{"वा", TokenLogicalOp},
		{"न", TokenLogicalOp},
		{"गणकः", TokenIdent},
		{"_", TokenIdent},
		{"abc", TokenIdent},
	}
	for _, tt := range tests {
		if got := LookupWord(tt.word); got != tt.kind {
			t.Errorf("LookupWord(%q) = %v, want %v", tt.word, got, tt.kind)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenIf, "if"},
		{TokenElif, "elif"},
		{TokenBuiltin, "Builtin"},
		{TokenLE, "<="},
		{TokenColon, ":"},
		{TokenUnknown, "Unknown"},
		{TokenKind(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	for _, k := range []TokenKind{TokenIf, TokenElif, TokenElse, TokenWhile, TokenFunction, TokenReturn, TokenBreak, TokenContinue} {
		if !k.IsKeyword() {
			t.Errorf("%v.IsKeyword() = false, want true", k)
		}
	}
	for _, k := range []TokenKind{TokenIdent, TokenBuiltin, TokenConstant, TokenLogicalOp, TokenAssign, TokenColon} {
		if k.IsKeyword() {
			t.Errorf("%v.IsKeyword() = true, want false", k)
		}
	}

	for _, k := range []TokenKind{TokenAssign, TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenGE, TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent} {
		if !k.IsOperator() {
			t.Errorf("%v.IsOperator() = false, want true", k)
		}
	}
	if TokenLogicalOp.IsOperator() {
		t.Error("TokenLogicalOp.IsOperator() = true, want false")
	}
	if TokenLParen.IsOperator() {
		t.Error("TokenLParen.IsOperator() = true, want false")
	}

	for _, k := range []TokenKind{TokenLParen, TokenRParen, TokenLBracket, TokenRBracket, TokenComma, TokenColon} {
		if !k.IsPunctuation() {
			t.Errorf("%v.IsPunctuation() = false, want true", k)
		}
	}
	if TokenPercent.IsPunctuation() {
		t.Error("TokenPercent.IsPunctuation() = true, want false")
	}
}

func TestIsBlockOpener(t *testing.T) {
	openers := []TokenKind{TokenIf, TokenElif, TokenElse, TokenWhile, TokenFunction}
	for _, k := range openers {
		if !IsBlockOpener(k) {
			t.Errorf("IsBlockOpener(%v) = false, want true", k)
		}
	}
	for _, k := range []TokenKind{TokenReturn, TokenBreak, TokenContinue, TokenIdent, TokenBuiltin, TokenColon} {
		if IsBlockOpener(k) {
			t.Errorf("IsBlockOpener(%v) = true, want false", k)
		}
	}
}
