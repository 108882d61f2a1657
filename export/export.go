package export

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/skins"
)

// Format is an export target.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// PDFPrinter prints a standalone HTML document.
type PDFPrinter interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}

// Exporter renders portfolios through the skin registry and writes them in
// the requested format.
type Exporter struct {
	skins   *skins.Registry
	printer PDFPrinter
}

// NewExporter wires an exporter. A nil printer disables PDF output.
func NewExporter(registry *skins.Registry, printer PDFPrinter) *Exporter {
	if registry == nil {
		registry = skins.NewRegistry()
	}
	return &Exporter{skins: registry, printer: printer}
}

// Export writes portfolio to w.
func (e *Exporter) Export(ctx context.Context, w io.Writer, portfolio types.Portfolio, format Format) error {
	switch format {
	case FormatHTML, "":
		return e.skins.WriteDocument(w, portfolio)
	case FormatPDF:
		if e.printer == nil {
			return types.NewValidationError("format", "pdf export is not configured")
		}
		var buf bytes.Buffer
		if err := e.skins.WriteDocument(&buf, portfolio); err != nil {
			return err
		}
		pdf, err := e.printer.RenderPDF(ctx, buf.Bytes())
		if err != nil {
			return err
		}
		_, err = w.Write(pdf)
		return err
	default:
		return types.NewValidationError("format", "unsupported export format "+string(format))
	}
}

// FormatFromPath picks a format from a file extension, defaulting to HTML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return FormatPDF
	}
	return FormatHTML
}
