// Package sections computes the ordered, visible set of sections a skin
// renders and owns the mutations that keep custom sections, section order
// and the hidden set consistent with each other.
package sections

import (
	"strings"

	"github.com/goliatone/go-portfolio/pkg/types"
)

// Standard describes a built-in section.
type Standard struct {
	ID       types.SectionID
	Heading  types.HeadingKey
	Required bool
	empty    func(types.ProfileData) bool
}

// Empty reports whether the profile has no data for the section.
func (s Standard) Empty(profile types.ProfileData) bool {
	if s.empty == nil {
		return false
	}
	return s.empty(profile)
}

// canonical order; never mutated.
var standards = []Standard{
	{
		ID: types.SectionSummary, Heading: types.HeadingSummary, Required: true,
		empty: func(p types.ProfileData) bool { return strings.TrimSpace(p.Summary) == "" },
	},
	{
		ID: types.SectionExperience, Heading: types.HeadingExperience, Required: true,
		empty: func(p types.ProfileData) bool { return len(p.Experience) == 0 },
	},
	{
		ID: types.SectionEducation, Heading: types.HeadingEducation, Required: true,
		empty: func(p types.ProfileData) bool { return len(p.Education) == 0 },
	},
	{
		ID: types.SectionSkills, Heading: types.HeadingSkills, Required: true,
		empty: func(p types.ProfileData) bool { return len(p.Skills) == 0 },
	},
	{
		ID: types.SectionProjects, Heading: types.HeadingProjects,
		empty: func(p types.ProfileData) bool { return len(p.Projects) == 0 },
	},
	{
		ID: types.SectionCertifications, Heading: types.HeadingCertifications,
		empty: func(p types.ProfileData) bool { return len(p.Certifications) == 0 },
	},
}

// StandardSections returns the built-in sections in canonical order.
func StandardSections() []Standard {
	return append([]Standard(nil), standards...)
}

// StandardIDs returns the built-in section ids in canonical order.
func StandardIDs() []types.SectionID {
	ids := make([]types.SectionID, len(standards))
	for i, s := range standards {
		ids[i] = s.ID
	}
	return ids
}

// LookupStandard returns the built-in section with id.
func LookupStandard(id types.SectionID) (Standard, bool) {
	for _, s := range standards {
		if s.ID == id {
			return s, true
		}
	}
	return Standard{}, false
}

// IsStandard reports whether id names a built-in section.
func IsStandard(id types.SectionID) bool {
	_, ok := LookupStandard(id)
	return ok
}

// IsRequired reports whether id names a required built-in section.
func IsRequired(id types.SectionID) bool {
	s, ok := LookupStandard(id)
	return ok && s.Required
}
