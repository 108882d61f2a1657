package skins

import (
	"strings"

	"github.com/goliatone/go-portfolio/labels"
	"github.com/goliatone/go-portfolio/pkg/links"
	"github.com/goliatone/go-portfolio/pkg/types"
)

type renderContext struct {
	portfolio types.Portfolio
	text      labels.TextSnapshot
	style     Style
	layout    types.Layout
}

func (rc renderContext) profile() types.ProfileData { return rc.portfolio.Profile }

func (rc renderContext) link(class, href, textKey string) *Node {
	href = links.NormalizeURL(href)
	if href == "" {
		return nil
	}
	return Link(class, href, rc.text.Text(textKey))
}

func (rc renderContext) dates(start, end string, current bool) *Node {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if current {
		end = rc.text.Text(labels.TextPresent)
	}
	var value string
	switch {
	case start != "" && end != "":
		value = start + " - " + end
	case start != "":
		value = start
	default:
		value = end
	}
	if value == "" {
		return nil
	}
	return TextEl("time", "dates", value)
}

func (rc renderContext) entryClass() string {
	if rc.layout == types.LayoutTimeline {
		return "entry timeline-item"
	}
	return "entry"
}

// sectionRenderer produces the body of a standard section.
type sectionRenderer func(rc renderContext) *Node

func optionalText(tag, class, text string) *Node {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return TextEl(tag, class, text)
}

func bulletList(class string, items []string) *Node {
	var list *Node
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		if list == nil {
			list = El("ul", class)
		}
		list.Add(TextEl("li", "", item))
	}
	return list
}

func summaryPlain(rc renderContext) *Node {
	return TextEl("p", "summary", rc.profile().Summary)
}

func summaryLead(rc renderContext) *Node {
	return El("div", "summary", TextEl("p", "lead", rc.profile().Summary))
}

func experienceDetailed(rc renderContext) *Node {
	list := El("div", "entries")
	for _, exp := range rc.profile().Experience {
		org := exp.Company
		if exp.Location != "" {
			org = strings.TrimSpace(org + ", " + exp.Location)
		}
		list.Add(El("article", rc.entryClass(),
			El("header", "entry-head",
				TextEl("h3", "role", exp.Title),
				optionalText("span", "org", org),
				rc.dates(exp.StartDate, exp.EndDate, exp.Current),
			),
			optionalText("p", "description", exp.Description),
			bulletList("responsibilities", exp.Responsibilities),
		))
	}
	return list
}

func experienceCompact(rc renderContext) *Node {
	list := El("ul", "entries compact")
	for _, exp := range rc.profile().Experience {
		line := exp.Title
		if exp.Company != "" {
			line += ", " + exp.Company
		}
		list.Add(El("li", rc.entryClass(), TextEl("strong", "", line), rc.dates(exp.StartDate, exp.EndDate, exp.Current)))
	}
	return list
}

func educationDefault(rc renderContext) *Node {
	list := El("div", "entries")
	for _, edu := range rc.profile().Education {
		var gpa *Node
		if edu.GPA != "" {
			gpa = TextEl("small", "gpa", "GPA "+edu.GPA)
		}
		list.Add(El("article", rc.entryClass(),
			El("header", "entry-head",
				TextEl("h3", "degree", edu.Degree),
				optionalText("span", "org", edu.Institution),
				rc.dates(edu.StartDate, edu.EndDate, false),
			),
			gpa,
			bulletList("highlights", edu.Highlights),
		))
	}
	return list
}

func skillsGrouped(rc renderContext) *Node {
	groups := El("div", "skill-groups")
	for _, cat := range rc.profile().Skills {
		groups.Add(El("div", "skill-group", optionalText("h3", "", cat.Category), bulletList("skills", cat.Skills)))
	}
	return groups
}

func skillsTags(rc renderContext) *Node {
	groups := El("div", "skill-groups tags")
	for _, cat := range rc.profile().Skills {
		group := El("div", "skill-group", optionalText("strong", "", cat.Category))
		for _, skill := range cat.Skills {
			group.Add(TextEl("span", "tag", skill))
		}
		groups.Add(group)
	}
	return groups
}

func skillsInline(rc renderContext) *Node {
	groups := El("div", "skill-groups inline")
	for _, cat := range rc.profile().Skills {
		line := strings.Join(cat.Skills, ", ")
		if cat.Category != "" {
			line = cat.Category + ": " + line
		}
		groups.Add(TextEl("p", "skill-line", line))
	}
	return groups
}

func projectsList(rc renderContext) *Node {
	list := El("ul", "projects")
	for _, project := range rc.profile().Projects {
		list.Add(El("li", "project",
			TextEl("strong", "name", project.Name),
			optionalText("span", "description", project.Description),
			optionalText("small", "technologies", strings.Join(project.Technologies, ", ")),
			rc.link("project-link", project.Link, labels.TextViewProject),
			rc.link("source-link", project.GitHub, labels.TextSourceCode),
		))
	}
	return list
}

func projectsCards(rc renderContext) *Node {
	cards := El("div", "cards")
	for _, project := range rc.profile().Projects {
		tags := El("div", "tags")
		for _, tech := range project.Technologies {
			tags.Add(TextEl("span", "tag", tech))
		}
		if len(tags.Children) == 0 {
			tags = nil
		}
		cards.Add(El("article", "card",
			TextEl("h3", "name", project.Name),
			optionalText("p", "description", project.Description),
			tags,
			rc.link("project-link", project.Link, labels.TextViewProject),
			rc.link("source-link", project.GitHub, labels.TextSourceCode),
		))
	}
	return cards
}

func certificationsDefault(rc renderContext) *Node {
	list := El("ul", "certifications")
	for _, cert := range rc.profile().Certifications {
		list.Add(El("li", "certification",
			TextEl("strong", "name", cert.Name),
			optionalText("span", "issuer", cert.Issuer),
			optionalText("time", "dates", cert.Date),
			rc.link("cert-link", cert.Link, labels.TextViewProject),
		))
	}
	return list
}

var defaultRenderers = map[types.SectionID]sectionRenderer{
	types.SectionSummary:        summaryPlain,
	types.SectionExperience:     experienceDetailed,
	types.SectionEducation:      educationDefault,
	types.SectionSkills:         skillsGrouped,
	types.SectionProjects:       projectsList,
	types.SectionCertifications: certificationsDefault,
}

// renderCustom dispatches on the section type. When the content shape does
// not match the type, whatever shape is present is rendered instead.
func renderCustom(section types.CustomSection) *Node {
	content := section.Content
	switch {
	case section.Type == types.SectionTypeText && content.Text != "":
		return prose(content.Text)
	case section.Type == types.SectionTypeList && len(content.Items) > 0:
		return bulletList("items", content.Items)
	case section.Type.Structured() && len(content.Entries) > 0:
		return structuredEntries(content.Entries)
	case len(content.Entries) > 0:
		return structuredEntries(content.Entries)
	case len(content.Items) > 0:
		return bulletList("items", content.Items)
	case content.Text != "":
		return prose(content.Text)
	}
	return El("div", "empty")
}

func prose(text string) *Node {
	body := El("div", "prose")
	for _, para := range strings.Split(text, "\n\n") {
		body.Add(optionalText("p", "", strings.TrimSpace(para)))
	}
	return body
}

func structuredEntries(entries []types.StructuredItem) *Node {
	list := El("div", "entries structured")
	for _, entry := range entries {
		list.Add(El("article", "entry",
			optionalText("strong", "title", entry.Title),
			optionalText("time", "dates", entry.Date),
			optionalText("p", "description", entry.Description),
		))
	}
	return list
}

func contactBlock(rc renderContext) *Node {
	c := rc.profile().Contact
	items := El("ul", "contact-items")
	if c.Email != "" {
		items.Add(El("li", "email", Link("", "mailto:"+c.Email, c.Email)))
	}
	items.Add(
		wrapItem("phone", optionalText("span", "", c.Phone)),
		wrapItem("location", optionalText("span", "", c.Location)),
		wrapItem("linkedin", linkTo(c.LinkedIn)),
		wrapItem("website", linkTo(c.Website)),
	)
	if len(items.Children) == 0 {
		return nil
	}
	return El("div", "contact",
		TextEl("h2", "contact-heading", labels.ContactHeading(rc.portfolio.Personalization)),
		items,
	)
}

func wrapItem(class string, child *Node) *Node {
	if child == nil {
		return nil
	}
	return El("li", class, child)
}

func linkTo(raw string) *Node {
	href := links.NormalizeURL(raw)
	if href == "" {
		return nil
	}
	return Link("", href, strings.TrimSpace(raw))
}
