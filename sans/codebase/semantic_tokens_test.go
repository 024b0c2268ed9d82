package codebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/vak/sans"
)

func semanticData(text string) []protocol.UInteger {
	return SemanticTokensFull(sans.Analyze(text)).Data
}

func TestSemanticTokensLegend(t *testing.T) {
	assert.Equal(t, []string{
		"keyword", "function", "variable", "number", "string",
		"comment", "operator", "parameter", "enumMember",
	}, semanticTokenTypes)
	assert.Len(t, semanticTokenModifiers, 3)
}

func TestSemanticTokensSimpleAssignment(t *testing.T) {
	// क = variable, = is an operator, १ a number.
	assert.Equal(t, []protocol.UInteger{
		0, 0, 1, semVariable, 0,
		0, 2, 1, semOperator, 0,
		0, 2, 1, semNumber, 0,
	}, semanticData("क = १\n"))
}

func TestSemanticTokensFunctionAndParameters(t *testing.T) {
	text := "कार्यम् प(क):\n" +
		"\tप्रतिददाति क\n" +
		"क = १\n"

	// The parameter क highlights as parameter in the header and body,
	// but the same spelling outside the function is a plain variable.
	assert.Equal(t, []protocol.UInteger{
		0, 0, 7, semKeyword, 0,
		0, 8, 1, semFunction, 0,
		0, 2, 1, semParameter, 0,
		1, 1, 10, semKeyword, 0,
		0, 11, 1, semParameter, 0,
		1, 0, 1, semVariable, 0,
		0, 2, 1, semOperator, 0,
		0, 2, 1, semNumber, 0,
	}, semanticData(text))
}

func TestSemanticTokensBuiltinStringComment(t *testing.T) {
	assert.Equal(t, []protocol.UInteger{
		0, 0, 6, semFunction, 0,
		0, 7, 3, semString, 0,
		0, 5, 9, semComment, 0,
	}, semanticData("मुद्रय(\"अ\") # टिप्पणी\n"))
}

func TestSemanticTokensConstantsAndLogicalOps(t *testing.T) {
	assert.Equal(t, []protocol.UInteger{
		0, 0, 1, semVariable, 0,
		0, 2, 1, semOperator, 0,
		0, 2, 6, semEnumMember, 0,
		0, 7, 1, semOperator, 0,
		0, 2, 7, semEnumMember, 0,
	}, semanticData("क = सत्यम् च असत्यम्\n"))
}

func TestSemanticTokensFunctionNameAtCallSite(t *testing.T) {
	data := semanticData(calcText)
	require.NotEmpty(t, data)
	require.Zero(t, len(data)%5)

	// Decode the absolute positions and check the call to गणय on the
	// last line classifies as function.
	type decoded struct {
		line, start, length, tokenType int
	}
	var tokens []decoded
	line, start := 0, 0
	for i := 0; i < len(data); i += 5 {
		deltaLine := int(data[i])
		if deltaLine != 0 {
			line += deltaLine
			start = 0
		}
		start += int(data[i+1])
		tokens = append(tokens, decoded{line, start, int(data[i+2]), int(data[i+3])})
	}

	found := false
	for _, tok := range tokens {
		if tok.line == 4 && tok.start == 8 {
			assert.Equal(t, semFunction, tok.tokenType)
			assert.Equal(t, 3, tok.length)
			found = true
		}
	}
	assert.True(t, found, "call site of गणय should be classified")
}

func TestSemanticTokensSkipsPunctuationAndUnknown(t *testing.T) {
	// Only the identifier is classifiable here.
	assert.Equal(t, []protocol.UInteger{
		0, 1, 1, semVariable, 0,
	}, semanticData("(क)!\n"))
}

func TestSemanticTokensEmptyDocument(t *testing.T) {
	data := semanticData("")
	require.NotNil(t, data)
	assert.Empty(t, data)
}
