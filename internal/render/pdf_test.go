package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-forge/internal/config"
)

func TestPDFRenderer_NilDocument(t *testing.T) {
	html, err := NewHTMLRenderer(config.HTMLOptions{})
	require.NoError(t, err)
	renderer := NewPDFRenderer(config.PDFOptions{}, html)

	_, err = renderer.Render(context.Background(), nil)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestPaperSizes(t *testing.T) {
	letter := paperSizes["Letter"]
	assert.InDelta(t, 8.5, letter.width, 0.001)
	assert.InDelta(t, 11.0, letter.height, 0.001)

	a4 := paperSizes["A4"]
	assert.InDelta(t, 8.27, a4.width, 0.001)
	assert.InDelta(t, 11.69, a4.height, 0.001)

	legal, ok := paperSizes["Legal"]
	require.True(t, ok)
	assert.InDelta(t, 14.0, legal.height, 0.001)
}
