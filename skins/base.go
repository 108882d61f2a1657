package skins

import (
	"strings"

	"github.com/goliatone/go-portfolio/labels"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
)

// baseSkin is the shared renderer every built-in skin is an instance of.
type baseSkin struct {
	id        types.TemplateID
	style     Style
	renderers map[types.SectionID]sectionRenderer
	compose   sections.ComposeFunc
}

func newBaseSkin(id types.TemplateID, style Style, overrides map[types.SectionID]sectionRenderer, compose sections.ComposeFunc) *baseSkin {
	if compose == nil {
		compose = sections.Compose
	}
	renderers := make(map[types.SectionID]sectionRenderer, len(defaultRenderers))
	for key, fn := range defaultRenderers {
		renderers[key] = fn
	}
	for key, fn := range overrides {
		renderers[key] = fn
	}
	return &baseSkin{id: id, style: style, renderers: renderers, compose: compose}
}

func (s *baseSkin) ID() types.TemplateID { return s.id }

func (s *baseSkin) Info() labels.TemplateConfig { return labels.Template(s.id) }

func (s *baseSkin) Style() Style { return s.style }

func (s *baseSkin) Render(portfolio types.Portfolio) (*Node, error) {
	rc := renderContext{
		portfolio: portfolio,
		text:      labels.MustResolve(portfolio.Personalization.TemplateText, s.id),
		style:     s.style,
		layout:    s.layoutFor(portfolio.Personalization),
	}

	root := El("div", strings.Join([]string{"portfolio", s.style.Class, "layout-" + string(rc.layout)}, " "))
	contact := contactBlock(rc)

	header := El("header", "masthead",
		optionalText("h1", "name", portfolio.Profile.Contact.Name),
		optionalText("p", "tagline", rc.text.Text(labels.TextTagline)),
	)
	if s.style.Contact == ContactInHeader {
		header.Add(contact)
	}
	root.Add(header)

	body := El("main", "sections")
	if s.style.Contact == ContactInSidebar && contact != nil {
		body.Add(El("aside", "contact-aside sidebar", contact))
	}
	for _, descriptor := range s.compose(portfolio.Profile, portfolio.Personalization) {
		body.Add(s.renderSection(rc, descriptor))
	}
	root.Add(body)

	footer := El("footer", "site-footer")
	if s.style.Contact == ContactInFooter {
		footer.Add(contact)
	}
	footer.Add(optionalText("p", "footer-text", rc.text.Text(labels.TextFooter)))
	if len(footer.Children) > 0 {
		root.Add(footer)
	}
	return root, nil
}

func (s *baseSkin) renderSection(rc renderContext, descriptor types.SectionDescriptor) *Node {
	class := "section section-" + string(descriptor.ID)
	if descriptor.Kind == types.SectionKindCustom {
		class = "section section-custom"
	}
	if rc.layout == types.LayoutTwoColumn && s.style.inSidebar(descriptor.ID) {
		class += " sidebar"
	}

	title := descriptor.Title
	var content *Node
	switch descriptor.Kind {
	case types.SectionKindCustom:
		if descriptor.Custom != nil {
			content = renderCustom(*descriptor.Custom)
		}
	default:
		if std, ok := sections.LookupStandard(descriptor.ID); ok && strings.TrimSpace(title) == "" {
			title = labels.SectionHeading(rc.portfolio.Personalization.SectionHeadings, std.Heading)
		}
		if fn := s.renderers[descriptor.ID]; fn != nil {
			content = fn(rc)
		}
	}

	node := El("section", class, TextEl("h2", "section-title", title), content)
	node.Section = descriptor.ID
	return node
}

func (s *baseSkin) layoutFor(p types.PersonalizationData) types.Layout {
	if p.Layout.Valid() {
		return p.Layout
	}
	return labels.Template(s.id).Layout
}
