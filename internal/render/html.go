package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/types"
)

//go:embed templates
var templateFS embed.FS

// HTMLRenderer renders resume data into a standalone HTML page with the
// theme stylesheet inlined, so the output is a single self-contained file.
type HTMLRenderer struct {
	opts config.HTMLOptions
	tmpl *template.Template
}

// htmlData is the root object passed to the resume template
type htmlData struct {
	Doc             *types.ResumeData
	Theme           template.CSS
	MetaDescription string
	HasSkills       bool
	ExtraSections   []extraSection
}

type extraSection struct {
	Name  string
	Lines []string
}

// NewHTMLRenderer parses the embedded resume template for the configured theme
func NewHTMLRenderer(opts config.HTMLOptions) (*HTMLRenderer, error) {
	tmpl, err := template.New("resume.html.tmpl").Funcs(template.FuncMap{
		"displayURL": displayURL,
		"joinList":   joinList,
	}).ParseFS(templateFS, "templates/resume.html.tmpl")
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse resume template", Cause: err}
	}
	return &HTMLRenderer{opts: opts, tmpl: tmpl}, nil
}

// Render produces the HTML document for a resume
func (r *HTMLRenderer) Render(doc *types.ResumeData) ([]byte, error) {
	if doc == nil {
		return nil, &RenderError{Message: "resume document is required"}
	}

	theme, err := themeCSS(r.opts.Theme)
	if err != nil {
		return nil, err
	}

	data := htmlData{
		Doc:             doc,
		Theme:           theme,
		MetaDescription: r.opts.MetaDescription,
		HasSkills:       doc.Skills.HasSkills(),
		ExtraSections:   extraSections(doc),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return buf.Bytes(), nil
}

// themeCSS loads the stylesheet for a theme name, falling back to the
// default theme when none is configured.
func themeCSS(theme string) (template.CSS, error) {
	if theme == "" {
		theme = "default"
	}
	css, err := templateFS.ReadFile(fmt.Sprintf("templates/themes/%s.css", theme))
	if err != nil {
		return "", &TemplateError{Message: fmt.Sprintf("unknown theme %q", theme), Cause: err}
	}
	return template.CSS(css), nil
}

// extraSections flattens AdditionalSections into a deterministic order
func extraSections(doc *types.ResumeData) []extraSection {
	if len(doc.AdditionalSections) == 0 {
		return nil
	}
	names := make([]string, 0, len(doc.AdditionalSections))
	for name := range doc.AdditionalSections {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]extraSection, 0, len(names))
	for _, name := range names {
		out = append(out, extraSection{Name: name, Lines: doc.AdditionalSections[name]})
	}
	return out
}

// displayURL strips the scheme and trailing slash from a URL for display text
func displayURL(url string) string {
	display := strings.TrimPrefix(url, "https://")
	display = strings.TrimPrefix(display, "http://")
	display = strings.TrimPrefix(display, "www.")
	return strings.TrimSuffix(display, "/")
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
