package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/goliatone/go-portfolio/pkg/fixtures"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/skins"
	"github.com/stretchr/testify/require"
)

type fakePrinter struct {
	got []byte
	err error
}

func (f *fakePrinter) RenderPDF(_ context.Context, html []byte) ([]byte, error) {
	f.got = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func loadFixture(t *testing.T) types.Portfolio {
	t.Helper()
	p, err := fixtures.Load("../skins/testdata/portfolio.yaml")
	require.NoError(t, err)
	return p
}

func TestExporter_HTMLAndPDF(t *testing.T) {
	ctx := context.Background()
	printer := &fakePrinter{}
	exp := NewExporter(skins.NewRegistry(), printer)
	p := loadFixture(t)

	var html bytes.Buffer
	require.NoError(t, exp.Export(ctx, &html, p, FormatHTML))
	require.Contains(t, html.String(), "<!DOCTYPE html>")

	var pdf bytes.Buffer
	require.NoError(t, exp.Export(ctx, &pdf, p, FormatPDF))
	require.Equal(t, "%PDF-1.4 fake", pdf.String())
	require.Equal(t, html.String(), string(printer.got), "the printer receives the same document")

	printer.err = errors.New("chrome missing")
	require.EqualError(t, exp.Export(ctx, &pdf, p, FormatPDF), "chrome missing")

	err := NewExporter(nil, nil).Export(ctx, &pdf, p, FormatPDF)
	require.True(t, types.IsValidation(err))
	err = exp.Export(ctx, &pdf, p, Format("docx"))
	require.True(t, types.IsValidation(err))
}

func TestFormatFromPath(t *testing.T) {
	require.Equal(t, FormatPDF, FormatFromPath("out/ada.PDF"))
	require.Equal(t, FormatHTML, FormatFromPath("out/ada.html"))
	require.Equal(t, FormatHTML, FormatFromPath("ada"))
}

func TestNewPDFRenderer_Defaults(t *testing.T) {
	t.Setenv("CHROME_PATH", "/opt/chrome")
	r := NewPDFRenderer(PDFConfig{})
	require.Equal(t, "/opt/chrome", r.cfg.ExecPath)
	require.Equal(t, DefaultTimeout, r.cfg.Timeout)
	require.InDelta(t, 8.27, r.cfg.PaperWidth, 0.001)
	require.InDelta(t, 11.69, r.cfg.PaperHeight, 0.001)
	require.Greater(t, len(r.allocatorOptions()), 4)
}

func TestPDFRenderer_PrintsWithLocalChrome(t *testing.T) {
	execPath := os.Getenv("CHROME_PATH")
	if execPath == "" {
		for _, name := range []string{"chromium", "chromium-browser", "google-chrome"} {
			if found, err := exec.LookPath(name); err == nil {
				execPath = found
				break
			}
		}
	}
	if execPath == "" || testing.Short() {
		t.Skip("no chrome binary available")
	}

	var html bytes.Buffer
	require.NoError(t, skins.NewRegistry().WriteDocument(&html, loadFixture(t)))

	pdf, err := NewPDFRenderer(PDFConfig{ExecPath: execPath, Timeout: 30 * time.Second}).RenderPDF(context.Background(), html.Bytes())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
