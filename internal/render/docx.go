package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/types"
)

// A .docx file is a zip archive of OOXML parts. The three parts written
// here are the minimum a word processor needs to open the document.
const (
	docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	defaultFontFamily = "Calibri"
	defaultFontSize   = 11
)

// DOCXRenderer writes resume data as a Word document
type DOCXRenderer struct {
	opts   config.DOCXOptions
	bullet string
}

// NewDOCXRenderer builds a DOCX renderer. bulletStyle is the glyph used
// for achievement bullets, matching the formatter's configured style.
func NewDOCXRenderer(opts config.DOCXOptions, bulletStyle string) *DOCXRenderer {
	if opts.FontFamily == "" {
		opts.FontFamily = defaultFontFamily
	}
	if opts.FontSize == 0 {
		opts.FontSize = defaultFontSize
	}
	if bulletStyle == "" {
		bulletStyle = "•"
	}
	return &DOCXRenderer{opts: opts, bullet: bulletStyle}
}

// Render produces the DOCX document for a resume
func (r *DOCXRenderer) Render(doc *types.ResumeData) ([]byte, error) {
	if doc == nil {
		return nil, &RenderError{Message: "resume document is required"}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", r.documentXML(doc)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to create %s", part.name), Cause: err}
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to write %s", part.name), Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize docx archive", Cause: err}
	}
	return buf.Bytes(), nil
}

// documentXML builds the word/document.xml body paragraph by paragraph
func (r *DOCXRenderer) documentXML(doc *types.ResumeData) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	r.writeParagraph(&b, doc.Contact.Name, r.opts.FontSize+6, true)
	r.writeParagraph(&b, contactLine(doc.Contact), r.opts.FontSize, false)

	if doc.Summary != "" {
		r.writeHeading(&b, "Summary")
		r.writeParagraph(&b, doc.Summary, r.opts.FontSize, false)
	}

	if len(doc.Experience) > 0 {
		r.writeHeading(&b, "Experience")
		for _, exp := range doc.Experience {
			header := fmt.Sprintf("%s, %s (%s - %s)", exp.Title, exp.Company, exp.StartDate, exp.EndDate)
			if exp.Location != "" {
				header = fmt.Sprintf("%s, %s, %s (%s - %s)", exp.Title, exp.Company, exp.Location, exp.StartDate, exp.EndDate)
			}
			r.writeParagraph(&b, header, r.opts.FontSize, true)
			r.writeBullets(&b, exp.Bullets)
		}
	}

	if len(doc.Education) > 0 {
		r.writeHeading(&b, "Education")
		for _, edu := range doc.Education {
			header := fmt.Sprintf("%s, %s", edu.Degree, edu.School)
			if edu.EndDate != "" {
				header += fmt.Sprintf(" (%s)", edu.EndDate)
			}
			r.writeParagraph(&b, header, r.opts.FontSize, true)
			if edu.GPA != "" {
				r.writeParagraph(&b, "GPA: "+edu.GPA, r.opts.FontSize, false)
			}
			r.writeBullets(&b, edu.Honors)
		}
	}

	if doc.Skills.HasSkills() {
		r.writeHeading(&b, "Skills")
		for _, cat := range doc.Skills.Categories {
			r.writeParagraph(&b, fmt.Sprintf("%s: %s", cat.Name, strings.Join(cat.Skills, ", ")), r.opts.FontSize, false)
		}
		if len(doc.Skills.RawSkills) > 0 {
			r.writeParagraph(&b, strings.Join(doc.Skills.RawSkills, ", "), r.opts.FontSize, false)
		}
	}

	if len(doc.Projects) > 0 {
		r.writeHeading(&b, "Projects")
		for _, proj := range doc.Projects {
			r.writeParagraph(&b, proj.Name, r.opts.FontSize, true)
			if proj.Description != "" {
				r.writeParagraph(&b, proj.Description, r.opts.FontSize, false)
			}
			if len(proj.Technologies) > 0 {
				r.writeParagraph(&b, strings.Join(proj.Technologies, ", "), r.opts.FontSize, false)
			}
			r.writeBullets(&b, proj.Bullets)
		}
	}

	if len(doc.Certifications) > 0 {
		r.writeHeading(&b, "Certifications")
		for _, cert := range doc.Certifications {
			r.writeBullets(&b, []string{fmt.Sprintf("%s, %s (%s)", cert.Name, cert.Issuer, cert.Date)})
		}
	}

	for _, section := range extraSections(doc) {
		r.writeHeading(&b, section.Name)
		r.writeBullets(&b, section.Lines)
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func (r *DOCXRenderer) writeHeading(b *strings.Builder, text string) {
	r.writeParagraph(b, text, r.opts.FontSize+2, true)
}

func (r *DOCXRenderer) writeBullets(b *strings.Builder, bullets []string) {
	for _, bullet := range bullets {
		r.writeParagraph(b, r.bullet+" "+bullet, r.opts.FontSize, false)
	}
}

// writeParagraph emits one w:p with a single run. Word measures font
// size in half-points, hence the doubling. Embedded newlines (from line
// wrapping) become explicit w:br elements; escaped into a single w:t they
// render inconsistently across word processors.
func (r *DOCXRenderer) writeParagraph(b *strings.Builder, text string, size int, bold bool) {
	b.WriteString(`<w:p><w:r><w:rPr>`)
	fmt.Fprintf(b, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, escapeXML(r.opts.FontFamily), escapeXML(r.opts.FontFamily))
	fmt.Fprintf(b, `<w:sz w:val="%d"/>`, size*2)
	if bold {
		b.WriteString(`<w:b/>`)
	}
	b.WriteString(`</w:rPr>`)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString(`<w:br/>`)
		}
		fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(line))
	}
	b.WriteString(`</w:r></w:p>`)
}

// contactLine joins the populated contact fields into one display line
func contactLine(contact types.ContactInfo) string {
	fields := []string{contact.Email, contact.Phone, contact.Location}
	for _, url := range []string{contact.LinkedIn, contact.GitHub, contact.Website} {
		if url != "" {
			fields = append(fields, displayURL(url))
		}
	}
	populated := fields[:0]
	for _, f := range fields {
		if f != "" {
			populated = append(populated, f)
		}
	}
	return strings.Join(populated, " | ")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
