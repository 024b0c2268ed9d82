package codebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDocumentStoresModel(t *testing.T) {
	c := New()

	model, stored := c.UpdateDocument("file:///calc.sans", 1, "योग = ०\n")
	require.True(t, stored)
	require.NotNil(t, model)
	require.Len(t, model.Globals, 1)
	assert.Equal(t, "योग", model.Globals[0].Name)

	assert.Same(t, model, c.GetDocument("file:///calc.sans"))
}

func TestUpdateDocumentDiscardsStaleVersion(t *testing.T) {
	c := New()

	current, stored := c.UpdateDocument("file:///calc.sans", 2, "क = १\n")
	require.True(t, stored)

	stale, stored := c.UpdateDocument("file:///calc.sans", 1, "ख = २\n")
	assert.False(t, stored)
	require.NotNil(t, stale, "a discarded update still returns its analysis")
	assert.Same(t, current, c.GetDocument("file:///calc.sans"))
}

func TestUpdateDocumentSameVersionReplaces(t *testing.T) {
	// Clients may resend the current version after reopening a file.
	c := New()
	c.UpdateDocument("file:///calc.sans", 3, "क = १\n")

	model, stored := c.UpdateDocument("file:///calc.sans", 3, "ख = २\n")
	require.True(t, stored)
	assert.Same(t, model, c.GetDocument("file:///calc.sans"))
}

func TestRefreshDocumentKeepsVersion(t *testing.T) {
	c := New()
	c.UpdateDocument("file:///calc.sans", 3, "क = १\n")

	model := c.RefreshDocument("file:///calc.sans", "ख = २\n")
	require.NotNil(t, model)
	require.Len(t, model.Globals, 1)
	assert.Equal(t, "ख", model.Globals[0].Name)
	assert.Same(t, model, c.GetDocument("file:///calc.sans"))

	_, stored := c.UpdateDocument("file:///calc.sans", 2, "ग = ३\n")
	assert.False(t, stored, "refresh must not lower the stored version")
}

func TestRefreshDocumentUnknownURI(t *testing.T) {
	c := New()
	assert.Nil(t, c.RefreshDocument("file:///missing.sans", "क = १\n"))
}

func TestCloseDocument(t *testing.T) {
	c := New()
	c.UpdateDocument("file:///calc.sans", 1, "क = १\n")

	c.CloseDocument("file:///calc.sans")
	assert.Nil(t, c.GetDocument("file:///calc.sans"))

	// Closing a document that was never opened is a no-op.
	c.CloseDocument("file:///missing.sans")
}

func TestGetDocumentUnknownURI(t *testing.T) {
	assert.Nil(t, New().GetDocument("file:///missing.sans"))
}
