// Package labels resolves user-facing copy: section headings and the
// template-specific text each skin prints. Every lookup walks a fallback
// chain and never fails; missing keys resolve to an empty string.
package labels

import (
	"strings"

	"github.com/goliatone/go-portfolio/pkg/types"
)

var defaultHeadings = map[types.HeadingKey]string{
	types.HeadingSummary:        "Summary",
	types.HeadingExperience:     "Experience",
	types.HeadingEducation:      "Education",
	types.HeadingSkills:         "Skills",
	types.HeadingProjects:       "Projects",
	types.HeadingCertifications: "Certifications",
	types.HeadingContact:        "Contact",
}

// DefaultHeading returns the static heading for key.
func DefaultHeading(key types.HeadingKey) string {
	return defaultHeadings[key]
}

// DefaultHeadings returns a copy of the static heading table.
func DefaultHeadings() map[types.HeadingKey]string {
	out := make(map[types.HeadingKey]string, len(defaultHeadings))
	for k, v := range defaultHeadings {
		out[k] = v
	}
	return out
}

// SectionHeading returns the override for key when present and non-blank,
// otherwise the static default.
func SectionHeading(overrides map[types.HeadingKey]string, key types.HeadingKey) string {
	if value := strings.TrimSpace(overrides[key]); value != "" {
		return value
	}
	return defaultHeadings[key]
}

// TemplateText resolves key for templateID: explicit override, then the
// template's static defaults, then the generic fallback.
func TemplateText(overrides map[types.TemplateID]map[string]string, templateID types.TemplateID, key string) string {
	if texts := overrides[templateID]; texts != nil {
		if value := strings.TrimSpace(texts[key]); value != "" {
			return value
		}
	}
	if cfg, ok := templateConfigs[templateID]; ok {
		if value, ok := cfg.Defaults[key]; ok && value != "" {
			return value
		}
	}
	return genericText[key]
}

// ContactHeading returns the contact block heading: an explicit heading
// override wins over the template copy, which in turn falls back to the
// static default.
func ContactHeading(p types.PersonalizationData) string {
	if value := strings.TrimSpace(p.SectionHeadings[types.HeadingContact]); value != "" {
		return value
	}
	if value := TemplateText(p.TemplateText, p.TemplateID, TextContactHeading); value != "" {
		return value
	}
	return defaultHeadings[types.HeadingContact]
}
