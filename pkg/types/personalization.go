package types

// SectionID identifies a renderable section: one of the six standard keys or
// the id of a custom section.
type SectionID string

const (
	SectionSummary        SectionID = "summary"
	SectionExperience     SectionID = "experience"
	SectionEducation      SectionID = "education"
	SectionSkills         SectionID = "skills"
	SectionProjects       SectionID = "projects"
	SectionCertifications SectionID = "certifications"
)

// HeadingKey names an overridable heading. It covers the standard sections
// plus the contact block.
type HeadingKey string

const (
	HeadingSummary        HeadingKey = "summary"
	HeadingExperience     HeadingKey = "experience"
	HeadingEducation      HeadingKey = "education"
	HeadingSkills         HeadingKey = "skills"
	HeadingProjects       HeadingKey = "projects"
	HeadingCertifications HeadingKey = "certifications"
	HeadingContact        HeadingKey = "contact"
)

// TemplateID selects a skin.
type TemplateID string

const (
	TemplateModern       TemplateID = "modern"
	TemplateClassic      TemplateID = "classic"
	TemplateMinimal      TemplateID = "minimal"
	TemplateCreative     TemplateID = "creative"
	TemplateProfessional TemplateID = "professional"
	TemplateExecutive    TemplateID = "executive"
	TemplateTechnical    TemplateID = "technical"
	TemplateElegant      TemplateID = "elegant"
	TemplateBold         TemplateID = "bold"
	TemplateCompact      TemplateID = "compact"

	// DefaultTemplate is used whenever a template id is unknown.
	DefaultTemplate = TemplateModern
)

// TemplateIDs lists every known skin id in display order.
func TemplateIDs() []TemplateID {
	return []TemplateID{
		TemplateModern,
		TemplateClassic,
		TemplateMinimal,
		TemplateCreative,
		TemplateProfessional,
		TemplateExecutive,
		TemplateTechnical,
		TemplateElegant,
		TemplateBold,
		TemplateCompact,
	}
}

// Known reports whether the id names a registered skin.
func (id TemplateID) Known() bool {
	for _, known := range TemplateIDs() {
		if known == id {
			return true
		}
	}
	return false
}

// ColorScheme is the accent palette.
type ColorScheme string

const (
	ColorBlue   ColorScheme = "blue"
	ColorGreen  ColorScheme = "green"
	ColorPurple ColorScheme = "purple"
	ColorOrange ColorScheme = "orange"
	ColorRed    ColorScheme = "red"
)

// Valid reports whether the scheme is supported.
func (c ColorScheme) Valid() bool {
	switch c {
	case ColorBlue, ColorGreen, ColorPurple, ColorOrange, ColorRed:
		return true
	}
	return false
}

// Layout is the page arrangement.
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutTimeline     Layout = "timeline"
)

// Valid reports whether the layout is supported.
func (l Layout) Valid() bool {
	switch l {
	case LayoutSingleColumn, LayoutTwoColumn, LayoutTimeline:
		return true
	}
	return false
}

// PersonalizationData is the per-portfolio presentation config.
type PersonalizationData struct {
	TemplateID         TemplateID                       `json:"templateId"`
	ColorScheme        ColorScheme                      `json:"colorScheme"`
	Layout             Layout                           `json:"layout"`
	ShowPhoto          bool                             `json:"showPhoto"`
	AdditionalSections []string                         `json:"additionalSections,omitempty"`
	SectionOrder       []SectionID                      `json:"sectionOrder,omitempty"`
	HiddenSections     []SectionID                      `json:"hiddenSections,omitempty"`
	SectionHeadings    map[HeadingKey]string            `json:"sectionHeadings,omitempty"`
	TemplateText       map[TemplateID]map[string]string `json:"templateText,omitempty"`
}

// DefaultPersonalization returns the config a freshly generated portfolio
// starts with.
func DefaultPersonalization() PersonalizationData {
	return PersonalizationData{
		TemplateID:  DefaultTemplate,
		ColorScheme: ColorBlue,
		Layout:      LayoutSingleColumn,
	}
}

// IsHidden reports whether the id is in the hidden set.
func (p PersonalizationData) IsHidden(id SectionID) bool {
	for _, hidden := range p.HiddenSections {
		if hidden == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (p PersonalizationData) Clone() PersonalizationData {
	out := p
	out.AdditionalSections = cloneStrings(p.AdditionalSections)
	if p.SectionOrder != nil {
		out.SectionOrder = append([]SectionID(nil), p.SectionOrder...)
	}
	if p.HiddenSections != nil {
		out.HiddenSections = append([]SectionID(nil), p.HiddenSections...)
	}
	if p.SectionHeadings != nil {
		out.SectionHeadings = make(map[HeadingKey]string, len(p.SectionHeadings))
		for k, v := range p.SectionHeadings {
			out.SectionHeadings[k] = v
		}
	}
	if p.TemplateText != nil {
		out.TemplateText = make(map[TemplateID]map[string]string, len(p.TemplateText))
		for id, texts := range p.TemplateText {
			if texts == nil {
				out.TemplateText[id] = nil
				continue
			}
			copied := make(map[string]string, len(texts))
			for k, v := range texts {
				copied[k] = v
			}
			out.TemplateText[id] = copied
		}
	}
	return out
}
