package command

import (
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
)

// SchemaValidator checks profile data before it is stored.
type SchemaValidator func(types.ProfileData) error

const (
	fieldContact         = "resumeData.contact"
	fieldPersonalization = "personalization"
)

func validateContact(contact types.Contact) error {
	err := validation.ValidateStruct(&contact,
		validation.Field(&contact.Name, validation.RuneLength(0, 200)),
		validation.Field(&contact.Email, is.EmailFormat),
		validation.Field(&contact.Website, is.URL),
		validation.Field(&contact.LinkedIn, is.URL),
	)
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return types.NewValidationError(fieldContact, err.Error())
	}
	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, key := range keys {
		msgs = append(msgs, key+": "+errs[key].Error())
	}
	return types.NewValidationError(fieldContact, strings.Join(msgs, "; "))
}

// validatePersonalization rejects unknown values. Blank values select the
// skin defaults.
func validatePersonalization(p types.PersonalizationData) error {
	if p.TemplateID != "" && !p.TemplateID.Known() {
		return types.NewValidationError(fieldPersonalization+".templateId", "unknown template "+string(p.TemplateID))
	}
	if p.ColorScheme != "" && !p.ColorScheme.Valid() {
		return types.NewValidationError(fieldPersonalization+".colorScheme", "unknown color scheme "+string(p.ColorScheme))
	}
	if p.Layout != "" && !p.Layout.Valid() {
		return types.NewValidationError(fieldPersonalization+".layout", "unknown layout "+string(p.Layout))
	}
	return nil
}

// reconcileSectionRefs checks sectionOrder and hiddenSections against the
// profile being stored. Duplicate order entries are rejected, required
// sections cannot be hidden, and ids of sections that no longer exist are
// dropped.
func reconcileSectionRefs(profile types.ProfileData, p types.PersonalizationData) (types.PersonalizationData, error) {
	known := make(map[types.SectionID]struct{}, len(profile.CustomSections))
	for _, section := range profile.CustomSections {
		known[section.ID] = struct{}{}
	}
	exists := func(id types.SectionID) bool {
		if sections.IsStandard(id) {
			return true
		}
		_, ok := known[id]
		return ok
	}

	if p.SectionOrder != nil {
		seen := make(map[types.SectionID]struct{}, len(p.SectionOrder))
		order := make([]types.SectionID, 0, len(p.SectionOrder))
		for _, id := range p.SectionOrder {
			if _, dup := seen[id]; dup {
				return p, types.NewValidationError(fieldPersonalization+".sectionOrder", "duplicate section id "+string(id))
			}
			seen[id] = struct{}{}
			if exists(id) {
				order = append(order, id)
			}
		}
		p.SectionOrder = order
	}

	if p.HiddenSections != nil {
		seen := make(map[types.SectionID]struct{}, len(p.HiddenSections))
		hidden := make([]types.SectionID, 0, len(p.HiddenSections))
		for _, id := range p.HiddenSections {
			if sections.IsRequired(id) {
				return p, types.NewPolicyError(id)
			}
			if _, dup := seen[id]; dup || !exists(id) {
				continue
			}
			seen[id] = struct{}{}
			hidden = append(hidden, id)
		}
		p.HiddenSections = hidden
	}
	return p, nil
}

func validateProfile(profile types.ProfileData, schema SchemaValidator) error {
	if err := validateContact(profile.Contact); err != nil {
		return err
	}
	seen := make(map[types.SectionID]struct{}, len(profile.CustomSections))
	for _, section := range profile.CustomSections {
		if _, dup := seen[section.ID]; dup {
			return types.NewValidationError("resumeData.customSections", "duplicate section id "+string(section.ID))
		}
		seen[section.ID] = struct{}{}
	}
	return schema(profile)
}
