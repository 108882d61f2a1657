package skins

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

var allowedTags = []string{
	"a", "article", "aside", "div", "footer", "h1", "h2", "h3", "header",
	"li", "main", "p", "section", "small", "span", "strong", "time", "ul",
}

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>{{template "node" .Root}}</body>
</html>
`

var htmlTemplates = template.Must(template.New("document").Parse(buildNodeTemplate() + documentTemplate))

// buildNodeTemplate expands one branch per allowed tag so html/template sees
// static element names and can escape attributes by context.
func buildNodeTemplate() string {
	var b strings.Builder
	b.WriteString(`{{define "node"}}{{if not .Tag}}{{.Text}}{{range .Children}}{{template "node" .}}{{end}}`)
	for _, tag := range allowedTags {
		attrs := `{{with .Class}} class="{{.}}"{{end}}{{with .Section}} data-section="{{.}}"{{end}}`
		if tag == "a" {
			attrs += `{{with .Href}} href="{{.}}" rel="noopener"{{end}}`
		}
		fmt.Fprintf(&b, `{{else if eq .Tag %q}}<%s%s>{{.Text}}{{range .Children}}{{template "node" .}}{{end}}</%s>`, tag, tag, attrs, tag)
	}
	b.WriteString(`{{end}}{{end}}`)
	return b.String()
}

// Document is a complete page.
type Document struct {
	Title string
	CSS   template.CSS
	Root  *Node
}

// WriteHTML serialises a tree fragment.
func WriteHTML(w io.Writer, root *Node) error {
	if err := checkTags(root); err != nil {
		return err
	}
	return htmlTemplates.ExecuteTemplate(w, "node", root)
}

// WriteDocument serialises a full page.
func WriteDocument(w io.Writer, doc Document) error {
	if err := checkTags(doc.Root); err != nil {
		return err
	}
	return htmlTemplates.ExecuteTemplate(w, "document", doc)
}

func checkTags(root *Node) error {
	if root == nil {
		return fmt.Errorf("skins: nil render tree")
	}
	var bad string
	root.Walk(func(n *Node) {
		if bad != "" || n.Tag == "" {
			return
		}
		for _, tag := range allowedTags {
			if n.Tag == tag {
				return
			}
		}
		bad = n.Tag
	})
	if bad != "" {
		return fmt.Errorf("skins: unsupported tag %q", bad)
	}
	return nil
}
