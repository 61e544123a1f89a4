package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-forge/internal/config"
)

// readDocxPart unzips one part out of a rendered .docx archive
func readDocxPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("part %s not found in archive", name)
	return ""
}

func TestDOCXRenderer_ArchiveStructure(t *testing.T) {
	out, err := NewDOCXRenderer(config.DOCXOptions{}, "•").Render(sampleResume())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"}, names)
}

func TestDOCXRenderer_DocumentContent(t *testing.T) {
	out, err := NewDOCXRenderer(config.DOCXOptions{}, "•").Render(sampleResume())
	require.NoError(t, err)

	document := readDocxPart(t, out, "word/document.xml")
	assert.Contains(t, document, "Jane Doe")
	assert.Contains(t, document, "jane@example.com | (503) 555-0142 | linkedin.com/in/janedoe")
	assert.Contains(t, document, "Senior Engineer, Acme Corp (January 2020 - Present)")
	assert.Contains(t, document, "• Led the platform team")
	assert.Contains(t, document, "Languages: Go, SQL")
	// Custom sections are appended after the standard ones, sorted by name.
	awards := strings.Index(document, "Awards")
	volunteering := strings.Index(document, "Volunteering")
	skills := strings.Index(document, "Languages: Go, SQL")
	require.Positive(t, awards)
	require.Positive(t, volunteering)
	assert.Greater(t, awards, skills)
	assert.Greater(t, volunteering, awards)
}

func TestDOCXRenderer_FontOptions(t *testing.T) {
	opts := config.DOCXOptions{FontFamily: "Georgia", FontSize: 12}
	out, err := NewDOCXRenderer(opts, "-").Render(sampleResume())
	require.NoError(t, err)

	document := readDocxPart(t, out, "word/document.xml")
	assert.Contains(t, document, `w:ascii="Georgia"`)
	// Body text: 12pt = 24 half-points.
	assert.Contains(t, document, `<w:sz w:val="24"/>`)
	assert.Contains(t, document, "- Led the platform team")
}

func TestDOCXRenderer_Defaults(t *testing.T) {
	out, err := NewDOCXRenderer(config.DOCXOptions{}, "").Render(sampleResume())
	require.NoError(t, err)

	document := readDocxPart(t, out, "word/document.xml")
	assert.Contains(t, document, `w:ascii="Calibri"`)
	assert.Contains(t, document, `<w:sz w:val="22"/>`)
	assert.Contains(t, document, "• Led the platform team")
}

func TestDOCXRenderer_EscapesXML(t *testing.T) {
	doc := sampleResume()
	doc.Experience[0].Bullets = []string{"Shipped <fast> & stable releases"}

	out, err := NewDOCXRenderer(config.DOCXOptions{}, "•").Render(doc)
	require.NoError(t, err)

	document := readDocxPart(t, out, "word/document.xml")
	assert.Contains(t, document, "Shipped &lt;fast&gt; &amp; stable releases")
	assert.NotContains(t, document, "<fast>")
}

func TestDOCXRenderer_WrappedTextBecomesLineBreaks(t *testing.T) {
	doc := sampleResume()
	doc.Summary = "First wrapped line\nsecond wrapped line"

	out, err := NewDOCXRenderer(config.DOCXOptions{}, "•").Render(doc)
	require.NoError(t, err)

	document := readDocxPart(t, out, "word/document.xml")
	assert.Contains(t, document, `First wrapped line</w:t><w:br/><w:t xml:space="preserve">second wrapped line`)
	assert.NotContains(t, document, "&#xA;")
}

func TestDOCXRenderer_NilDocument(t *testing.T) {
	_, err := NewDOCXRenderer(config.DOCXOptions{}, "•").Render(nil)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}
