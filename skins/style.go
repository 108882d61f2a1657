package skins

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-portfolio/pkg/types"
)

// ContactPlacement decides where a skin prints the contact block.
type ContactPlacement string

const (
	ContactInHeader  ContactPlacement = "header"
	ContactInSidebar ContactPlacement = "sidebar"
	ContactInFooter  ContactPlacement = "footer"
)

// Style parameterises the shared base renderer.
type Style struct {
	Class         string
	Contact       ContactPlacement
	FontFamily    string
	HeadingFont   string
	UppercaseHead bool
	Dense         bool
	// Sidebar lists sections placed in the side column of a two-column page.
	Sidebar []types.SectionID
}

func (s Style) inSidebar(id types.SectionID) bool {
	for _, candidate := range s.Sidebar {
		if candidate == id {
			return true
		}
	}
	return false
}

// Palette is the accent colour set of a ColorScheme.
type Palette struct {
	Primary string
	Soft    string
	Ink     string
}

var palettes = map[types.ColorScheme]Palette{
	types.ColorBlue:   {Primary: "#2563eb", Soft: "#dbeafe", Ink: "#1e3a8a"},
	types.ColorGreen:  {Primary: "#16a34a", Soft: "#dcfce7", Ink: "#14532d"},
	types.ColorPurple: {Primary: "#9333ea", Soft: "#f3e8ff", Ink: "#581c87"},
	types.ColorOrange: {Primary: "#ea580c", Soft: "#ffedd5", Ink: "#7c2d12"},
	types.ColorRed:    {Primary: "#dc2626", Soft: "#fee2e2", Ink: "#7f1d1d"},
}

// PaletteFor returns the palette for scheme, defaulting to blue.
func PaletteFor(scheme types.ColorScheme) Palette {
	if p, ok := palettes[scheme]; ok {
		return p
	}
	return palettes[types.ColorBlue]
}

// Stylesheet renders the CSS for a skin style under the given scheme and
// layout.
func Stylesheet(style Style, scheme types.ColorScheme, layout types.Layout) template.CSS {
	p := PaletteFor(scheme)
	headingFont := style.HeadingFont
	if headingFont == "" {
		headingFont = style.FontFamily
	}
	transform := "none"
	if style.UppercaseHead {
		transform = "uppercase"
	}
	gap := "2rem"
	if style.Dense {
		gap = "0.75rem"
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":root{--primary:%s;--soft:%s;--ink:%s}", p.Primary, p.Soft, p.Ink)
	fmt.Fprintf(&b, "body{margin:0;font-family:%s;color:#111827}", style.FontFamily)
	fmt.Fprintf(&b, ".%s h1,.%s h2{font-family:%s;color:var(--ink);text-transform:%s}", style.Class, style.Class, headingFont, transform)
	fmt.Fprintf(&b, ".%s .sections{display:grid;gap:%s;padding:%s}", style.Class, gap, gap)
	b.WriteString(".section h2{border-bottom:2px solid var(--primary)}")
	b.WriteString(".tag{background:var(--soft);color:var(--ink);padding:0 .4rem;margin-right:.3rem;border-radius:.25rem}")
	b.WriteString("a{color:var(--primary)}")
	switch layout {
	case types.LayoutTwoColumn:
		b.WriteString(".layout-two-column .sections{grid-template-columns:2fr 1fr}")
		b.WriteString(".layout-two-column .sidebar{grid-column:2}")
		b.WriteString(".layout-two-column .section:not(.sidebar){grid-column:1}")
	case types.LayoutTimeline:
		b.WriteString(".layout-timeline .entry{border-left:3px solid var(--primary);padding-left:1rem}")
	}
	b.WriteString("@page{size:A4;margin:12mm}")
	return template.CSS(b.String())
}
