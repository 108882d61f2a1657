package session

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-portfolio/labels"
	"github.com/goliatone/go-portfolio/pkg/links"
	"github.com/goliatone/go-portfolio/pkg/types"
)

const (
	fieldSlug            = "slug"
	fieldPersonalization = "personalization"
	fieldContact         = "resumeData.contact"
	fieldSummary         = "resumeData.summary"
	fieldExperience      = "resumeData.experience"
	fieldEducation       = "resumeData.education"
	fieldSkills          = "resumeData.skills"
	fieldProjects        = "resumeData.projects"
	fieldCertifications  = "resumeData.certifications"
	fieldCustomSections  = "resumeData.customSections"
)

// SetSlug replaces the draft slug. The store has the final say on format and
// uniqueness.
func (s *Session) SetSlug(slug string) error {
	return s.mutate(fieldSlug, func(d *types.Portfolio) error {
		d.Slug = strings.ToLower(strings.TrimSpace(slug))
		return nil
	})
}

// SetContact replaces the contact block.
func (s *Session) SetContact(contact types.Contact) error {
	contact.LinkedIn = links.NormalizeURL(contact.LinkedIn)
	contact.Website = links.NormalizeURL(contact.Website)
	return s.mutate(fieldContact, func(d *types.Portfolio) error {
		d.Profile.Contact = contact
		return nil
	})
}

// SetSummary replaces the summary.
func (s *Session) SetSummary(summary string) error {
	return s.mutate(fieldSummary, func(d *types.Portfolio) error {
		d.Profile.Summary = summary
		return nil
	})
}

// AddExperience appends an entry and returns its index.
func (s *Session) AddExperience(entry types.Experience) (int, error) {
	return addItem(s, fieldExperience, func(d *types.Portfolio) *[]types.Experience { return &d.Profile.Experience }, entry)
}

// UpdateExperience replaces the entry at index.
func (s *Session) UpdateExperience(index int, entry types.Experience) error {
	return replaceItem(s, fieldExperience, func(d *types.Portfolio) *[]types.Experience { return &d.Profile.Experience }, index, entry)
}

// RemoveExperience deletes the entry at index.
func (s *Session) RemoveExperience(index int) error {
	return removeItem(s, fieldExperience, func(d *types.Portfolio) *[]types.Experience { return &d.Profile.Experience }, index)
}

// AddEducation appends an entry and returns its index.
func (s *Session) AddEducation(entry types.Education) (int, error) {
	return addItem(s, fieldEducation, func(d *types.Portfolio) *[]types.Education { return &d.Profile.Education }, entry)
}

// UpdateEducation replaces the entry at index.
func (s *Session) UpdateEducation(index int, entry types.Education) error {
	return replaceItem(s, fieldEducation, func(d *types.Portfolio) *[]types.Education { return &d.Profile.Education }, index, entry)
}

// RemoveEducation deletes the entry at index.
func (s *Session) RemoveEducation(index int) error {
	return removeItem(s, fieldEducation, func(d *types.Portfolio) *[]types.Education { return &d.Profile.Education }, index)
}

// AddSkillCategory appends a category and returns its index.
func (s *Session) AddSkillCategory(entry types.SkillCategory) (int, error) {
	return addItem(s, fieldSkills, func(d *types.Portfolio) *[]types.SkillCategory { return &d.Profile.Skills }, entry)
}

// UpdateSkillCategory replaces the category at index.
func (s *Session) UpdateSkillCategory(index int, entry types.SkillCategory) error {
	return replaceItem(s, fieldSkills, func(d *types.Portfolio) *[]types.SkillCategory { return &d.Profile.Skills }, index, entry)
}

// RemoveSkillCategory deletes the category at index.
func (s *Session) RemoveSkillCategory(index int) error {
	return removeItem(s, fieldSkills, func(d *types.Portfolio) *[]types.SkillCategory { return &d.Profile.Skills }, index)
}

// AddProject appends a project and returns its index. Links are normalised.
func (s *Session) AddProject(entry types.Project) (int, error) {
	return addItem(s, fieldProjects, func(d *types.Portfolio) *[]types.Project { return &d.Profile.Projects }, normalizeProject(entry))
}

// UpdateProject replaces the project at index. Links are normalised.
func (s *Session) UpdateProject(index int, entry types.Project) error {
	return replaceItem(s, fieldProjects, func(d *types.Portfolio) *[]types.Project { return &d.Profile.Projects }, index, normalizeProject(entry))
}

// RemoveProject deletes the project at index.
func (s *Session) RemoveProject(index int) error {
	return removeItem(s, fieldProjects, func(d *types.Portfolio) *[]types.Project { return &d.Profile.Projects }, index)
}

// AddCertification appends a certification and returns its index.
func (s *Session) AddCertification(entry types.Certification) (int, error) {
	entry.Link = links.NormalizeURL(entry.Link)
	return addItem(s, fieldCertifications, func(d *types.Portfolio) *[]types.Certification { return &d.Profile.Certifications }, entry)
}

// UpdateCertification replaces the certification at index.
func (s *Session) UpdateCertification(index int, entry types.Certification) error {
	entry.Link = links.NormalizeURL(entry.Link)
	return replaceItem(s, fieldCertifications, func(d *types.Portfolio) *[]types.Certification { return &d.Profile.Certifications }, index, entry)
}

// RemoveCertification deletes the certification at index.
func (s *Session) RemoveCertification(index int) error {
	return removeItem(s, fieldCertifications, func(d *types.Portfolio) *[]types.Certification { return &d.Profile.Certifications }, index)
}

func normalizeProject(p types.Project) types.Project {
	p.Link = links.NormalizeURL(p.Link)
	p.GitHub = links.NormalizeURL(p.GitHub)
	return p
}

func addItem[T any](s *Session, field string, target func(*types.Portfolio) *[]T, item T) (int, error) {
	index := -1
	err := s.mutate(field, func(d *types.Portfolio) error {
		list := target(d)
		*list = append(*list, item)
		index = len(*list) - 1
		return nil
	})
	return index, err
}

func replaceItem[T any](s *Session, field string, target func(*types.Portfolio) *[]T, index int, item T) error {
	return s.mutate(field, func(d *types.Portfolio) error {
		list := target(d)
		if index < 0 || index >= len(*list) {
			return indexError(field, index)
		}
		(*list)[index] = item
		return nil
	})
}

func removeItem[T any](s *Session, field string, target func(*types.Portfolio) *[]T, index int) error {
	return s.mutate(field, func(d *types.Portfolio) error {
		list := target(d)
		if index < 0 || index >= len(*list) {
			return indexError(field, index)
		}
		next := make([]T, 0, len(*list)-1)
		next = append(next, (*list)[:index]...)
		next = append(next, (*list)[index+1:]...)
		*list = next
		return nil
	})
}

func indexError(field string, index int) error {
	return types.NewValidationError(field, fmt.Sprintf("index %d out of range", index))
}

// SetTemplate selects the skin. Unknown ids are rejected here even though the
// renderer would fall back.
func (s *Session) SetTemplate(id types.TemplateID) error {
	if !id.Known() {
		return types.NewValidationError(fieldPersonalization+".templateId", "unknown template "+string(id))
	}
	return s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		d.Personalization.TemplateID = id
		return nil
	})
}

// SetColorScheme selects the accent palette.
func (s *Session) SetColorScheme(scheme types.ColorScheme) error {
	if !scheme.Valid() {
		return types.NewValidationError(fieldPersonalization+".colorScheme", "unknown color scheme "+string(scheme))
	}
	return s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		d.Personalization.ColorScheme = scheme
		return nil
	})
}

// SetLayout selects the page arrangement.
func (s *Session) SetLayout(layout types.Layout) error {
	if !layout.Valid() {
		return types.NewValidationError(fieldPersonalization+".layout", "unknown layout "+string(layout))
	}
	return s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		d.Personalization.Layout = layout
		return nil
	})
}

// SetShowPhoto toggles the photo flag.
func (s *Session) SetShowPhoto(show bool) error {
	return s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		d.Personalization.ShowPhoto = show
		return nil
	})
}

// SetSectionHeading overrides a heading. A blank value removes the override.
func (s *Session) SetSectionHeading(key types.HeadingKey, value string) error {
	if labels.DefaultHeading(key) == "" {
		return types.NewValidationError(fieldPersonalization+".sectionHeadings", "unknown heading "+string(key))
	}
	return s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		value = strings.TrimSpace(value)
		if value == "" {
			delete(d.Personalization.SectionHeadings, key)
			return nil
		}
		if d.Personalization.SectionHeadings == nil {
			d.Personalization.SectionHeadings = map[types.HeadingKey]string{}
		}
		d.Personalization.SectionHeadings[key] = value
		return nil
	})
}

// SetTemplateText overrides a copy key of the current template. A blank value
// removes the override.
func (s *Session) SetTemplateText(key, value string) error {
	return s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		id := d.Personalization.TemplateID
		value = strings.TrimSpace(value)
		texts := d.Personalization.TemplateText[id]
		if value == "" {
			delete(texts, key)
			return nil
		}
		if d.Personalization.TemplateText == nil {
			d.Personalization.TemplateText = map[types.TemplateID]map[string]string{}
		}
		if texts == nil {
			texts = map[string]string{}
			d.Personalization.TemplateText[id] = texts
		}
		texts[key] = value
		return nil
	})
}

// SetAdditionalSections replaces the advisory free-form labels.
func (s *Session) SetAdditionalSections(names []string) error {
	return s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		d.Personalization.AdditionalSections = append([]string(nil), names...)
		return nil
	})
}
