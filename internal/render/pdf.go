package render

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/types"
)

// pdfTimeout bounds a single headless-Chrome print run
const pdfTimeout = 60 * time.Second

// paperSizes maps configured page sizes to dimensions in inches
var paperSizes = map[string]struct{ width, height float64 }{
	"Letter": {8.5, 11},
	"A4":     {8.27, 11.69},
	"Legal":  {8.5, 14},
}

// PDFRenderer prints the HTML rendering of a resume to PDF through
// headless Chrome. The CHROME_PATH environment variable overrides the
// browser binary when Chrome is not on the default lookup path.
type PDFRenderer struct {
	opts config.PDFOptions
	html *HTMLRenderer
}

// NewPDFRenderer builds a PDF renderer that shares the given HTML renderer
func NewPDFRenderer(opts config.PDFOptions, html *HTMLRenderer) *PDFRenderer {
	return &PDFRenderer{opts: opts, html: html}
}

// Render produces the PDF document for a resume
func (r *PDFRenderer) Render(ctx context.Context, doc *types.ResumeData) ([]byte, error) {
	htmlOut, err := r.html.Render(doc)
	if err != nil {
		return nil, err
	}
	return r.printHTML(ctx, htmlOut)
}

func (r *PDFRenderer) printHTML(ctx context.Context, htmlOut []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, pdfTimeout)
	defer cancelRun()

	htmlFile, err := os.CreateTemp("", "resume-*.html")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temp HTML file", Cause: err}
	}
	defer os.Remove(htmlFile.Name())
	if _, err := htmlFile.Write(htmlOut); err != nil {
		htmlFile.Close()
		return nil, &RenderError{Message: "failed to write temp HTML file", Cause: err}
	}
	if err := htmlFile.Close(); err != nil {
		return nil, &RenderError{Message: "failed to close temp HTML file", Cause: err}
	}

	size, ok := paperSizes[r.opts.PageSize]
	if !ok {
		size = paperSizes["Letter"]
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlFile.Name()),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(size.width).
				WithPaperHeight(size.height).
				WithMarginTop(r.opts.MarginTop).
				WithMarginBottom(r.opts.MarginBottom).
				WithMarginLeft(r.opts.MarginLeft).
				WithMarginRight(r.opts.MarginRight).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "headless Chrome print failed", Cause: err}
	}
	return pdfBuf, nil
}
