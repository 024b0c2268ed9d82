package codebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/vak/sans"
)

const defTestURI = protocol.DocumentUri("file:///calc.sans")

func definitionAt(text string, line, character protocol.UInteger) *protocol.Location {
	doc := sans.Analyze(text)
	return DefinitionAt(doc, protocol.Position{Line: line, Character: character}, defTestURI)
}

func TestDefinitionFunctionCall(t *testing.T) {
	location := definitionAt(calcText, 4, 8)

	require.NotNil(t, location)
	assert.Equal(t, defTestURI, location.URI)
	assert.Equal(t, protocol.UInteger(1), location.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(8), location.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(11), location.Range.End.Character)
}

func TestDefinitionFunctionName(t *testing.T) {
	// The definition of a function name is the name itself.
	location := definitionAt(calcText, 1, 9)

	require.NotNil(t, location)
	assert.Equal(t, protocol.UInteger(1), location.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(8), location.Range.Start.Character)
}

func TestDefinitionLocalShadowsGlobal(t *testing.T) {
	text := "क = १\n" +
		"कार्यम् प(ख):\n" +
		"\tक = २\n" +
		"\tग = क\n"
	location := definitionAt(text, 3, 5)

	require.NotNil(t, location)
	assert.Equal(t, protocol.UInteger(2), location.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(1), location.Range.Start.Character)
}

func TestDefinitionGlobalVariable(t *testing.T) {
	location := definitionAt("क = १\nख = क\n", 1, 4)

	require.NotNil(t, location)
	assert.Equal(t, protocol.UInteger(0), location.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(0), location.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(1), location.Range.End.Character)
}

func TestDefinitionParameter(t *testing.T) {
	// क in the body points at the parameter in the header.
	location := definitionAt(calcText, 2, 8)

	require.NotNil(t, location)
	assert.Equal(t, protocol.UInteger(1), location.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(12), location.Range.Start.Character)
}

func TestDefinitionNone(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		line      protocol.UInteger
		character protocol.UInteger
	}{
		{"builtin", "मुद्रय(१)\n", 0, 0},
		{"keyword", "यदि क:\n\tख = १\n", 0, 0},
		{"unresolved ident", "क = ख\n", 0, 4},
		{"number", "क = १\n", 0, 4},
		{"whitespace", "क = १\n", 0, 1},
		{"outside document", "क = १\n", 7, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, definitionAt(tc.text, tc.line, tc.character))
		})
	}
}

func TestDocumentSymbolsListsFunctionsAndGlobals(t *testing.T) {
	doc := sans.Analyze(calcText)
	symbols := DocumentSymbols(doc)

	require.Len(t, symbols, 3)

	assert.Equal(t, "योग", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindVariable, symbols[0].Kind)
	assert.Equal(t, protocol.UInteger(0), symbols[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(0), symbols[0].Range.Start.Character)
	assert.Equal(t, protocol.UInteger(3), symbols[0].Range.End.Character)
	assert.Equal(t, symbols[0].Range, symbols[0].SelectionRange)

	assert.Equal(t, "गणय", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[1].Kind)
	require.NotNil(t, symbols[1].Detail)
	assert.Equal(t, "(क, ख)", *symbols[1].Detail)
	// The range spans the header through the last body line.
	assert.Equal(t, protocol.UInteger(1), symbols[1].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(0), symbols[1].Range.Start.Character)
	assert.Equal(t, protocol.UInteger(3), symbols[1].Range.End.Line)
	assert.Equal(t, protocol.UInteger(16), symbols[1].Range.End.Character)
	// The selection range is just the name.
	assert.Equal(t, protocol.UInteger(1), symbols[1].SelectionRange.Start.Line)
	assert.Equal(t, protocol.UInteger(8), symbols[1].SelectionRange.Start.Character)
	assert.Equal(t, protocol.UInteger(11), symbols[1].SelectionRange.End.Character)

	assert.Equal(t, "उत्तर", symbols[2].Name)
	assert.Equal(t, protocol.SymbolKindVariable, symbols[2].Kind)
	assert.Equal(t, protocol.UInteger(4), symbols[2].Range.Start.Line)
}

func TestDocumentSymbolsHeaderOnlyFunction(t *testing.T) {
	symbols := DocumentSymbols(sans.Analyze("कार्यम् रिक्त():\n"))

	require.Len(t, symbols, 1)
	assert.Equal(t, "रिक्त", symbols[0].Name)
	assert.Equal(t, protocol.UInteger(0), symbols[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(0), symbols[0].Range.End.Line)
	assert.Equal(t, protocol.UInteger(16), symbols[0].Range.End.Character)
}

func TestDocumentSymbolsEmptyDocument(t *testing.T) {
	assert.Empty(t, DocumentSymbols(sans.Analyze("")))
}
