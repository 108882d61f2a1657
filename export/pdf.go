// Package export turns rendered portfolios into downloadable documents.
package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-portfolio/pkg/types"
)

const (
	// A4 in inches.
	defaultPaperWidth  = 8.27
	defaultPaperHeight = 11.69

	DefaultTimeout = 60 * time.Second
)

// PDFConfig tunes the headless browser used for printing.
type PDFConfig struct {
	// ExecPath points at a Chrome/Chromium binary. Empty uses CHROME_PATH or
	// the chromedp lookup.
	ExecPath    string
	Timeout     time.Duration
	PaperWidth  float64
	PaperHeight float64
	Logger      types.Logger
}

// PDFRenderer prints HTML documents to PDF through headless Chrome.
type PDFRenderer struct {
	cfg PDFConfig
}

// NewPDFRenderer builds a renderer, filling zero values with A4 defaults.
func NewPDFRenderer(cfg PDFConfig) *PDFRenderer {
	if cfg.ExecPath == "" {
		cfg.ExecPath = os.Getenv("CHROME_PATH")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PaperWidth <= 0 {
		cfg.PaperWidth = defaultPaperWidth
	}
	if cfg.PaperHeight <= 0 {
		cfg.PaperHeight = defaultPaperHeight
	}
	if cfg.Logger == nil {
		cfg.Logger = types.NopLogger{}
	}
	return &PDFRenderer{cfg: cfg}
}

func (r *PDFRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.cfg.ExecPath))
	}
	return opts
}

// RenderPDF prints a standalone HTML document. The document must carry its
// styles inline.
func (r *PDFRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.cfg.Timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "portfolio-pdf-")
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "go-portfolio: create pdf workspace")
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o600); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "go-portfolio: write pdf source")
	}

	var pdf []byte
	started := time.Now()
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(htmlPath)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(r.cfg.PaperWidth).
				WithPaperHeight(r.cfg.PaperHeight).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		r.cfg.Logger.Error("pdf render failed", err, "elapsed", time.Since(started).String())
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "go-portfolio: print pdf")
	}
	r.cfg.Logger.Debug("pdf rendered", "bytes", len(pdf), "elapsed", time.Since(started).String())
	return pdf, nil
}
