package sections

import (
	"fmt"

	"github.com/goliatone/go-portfolio/pkg/types"
)

// WarningCode classifies a diagnostic.
type WarningCode string

const (
	WarningOrphanOrder     WarningCode = "orphan_order_id"
	WarningDuplicateOrder  WarningCode = "duplicate_order_id"
	WarningOrphanHidden    WarningCode = "orphan_hidden_id"
	WarningHiddenRequired  WarningCode = "hidden_required_section"
	WarningUnordered       WarningCode = "unordered_section"
	WarningLegacyVisible   WarningCode = "legacy_visible_flag"
	WarningUnknownTemplate WarningCode = "unknown_template"
)

// Warning is a non-fatal inconsistency in a portfolio. Composition tolerates
// every condition reported here.
type Warning struct {
	Code      WarningCode
	SectionID types.SectionID
	Message   string
}

func (w Warning) String() string {
	if w.SectionID == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", w.Code, w.SectionID, w.Message)
}

// Validate reports stale references and conflicting flags.
func Validate(portfolio types.Portfolio) []Warning {
	var warnings []Warning
	profile, personalization := portfolio.Profile, portfolio.Personalization

	universe := make(map[types.SectionID]struct{})
	for _, id := range IDs(Universe(profile, personalization)) {
		universe[id] = struct{}{}
	}

	seen := make(map[types.SectionID]struct{}, len(personalization.SectionOrder))
	for _, id := range personalization.SectionOrder {
		if _, dup := seen[id]; dup {
			warnings = append(warnings, Warning{Code: WarningDuplicateOrder, SectionID: id, Message: "section listed more than once in order"})
			continue
		}
		seen[id] = struct{}{}
		if _, ok := universe[id]; !ok {
			warnings = append(warnings, Warning{Code: WarningOrphanOrder, SectionID: id, Message: "order references an unknown section"})
		}
	}
	if len(personalization.SectionOrder) > 0 {
		for _, id := range IDs(Universe(profile, personalization)) {
			if _, ok := seen[id]; !ok {
				warnings = append(warnings, Warning{Code: WarningUnordered, SectionID: id, Message: "section missing from order renders after the listed sections"})
			}
		}
	}

	for _, id := range personalization.HiddenSections {
		if _, ok := universe[id]; !ok {
			warnings = append(warnings, Warning{Code: WarningOrphanHidden, SectionID: id, Message: "hidden set references an unknown section"})
			continue
		}
		if IsRequired(id) {
			warnings = append(warnings, Warning{Code: WarningHiddenRequired, SectionID: id, Message: "required section is hidden"})
		}
	}

	for _, section := range profile.CustomSections {
		if !section.Visible && !personalization.IsHidden(section.ID) {
			warnings = append(warnings, Warning{Code: WarningLegacyVisible, SectionID: section.ID, Message: "visible=false is ignored; use the hidden set"})
		}
	}

	if personalization.TemplateID != "" && !personalization.TemplateID.Known() {
		warnings = append(warnings, Warning{
			Code:    WarningUnknownTemplate,
			Message: fmt.Sprintf("template %q is unknown; %q is used", personalization.TemplateID, types.DefaultTemplate),
		})
	}
	return warnings
}

// Messages flattens warnings for logging and events.
func Messages(warnings []Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}
