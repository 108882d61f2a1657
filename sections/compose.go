package sections

import (
	"github.com/goliatone/go-portfolio/labels"
	"github.com/goliatone/go-portfolio/pkg/types"
)

// ComposeFunc is the composition contract injected into every skin.
type ComposeFunc func(profile types.ProfileData, personalization types.PersonalizationData) []types.SectionDescriptor

var _ ComposeFunc = Compose

// Universe returns every section the profile can render: the standard
// sections in canonical order followed by custom sections in list order.
// Visibility and emptiness are not applied.
func Universe(profile types.ProfileData, personalization types.PersonalizationData) []types.SectionDescriptor {
	out := make([]types.SectionDescriptor, 0, len(standards)+len(profile.CustomSections))
	for _, s := range standards {
		out = append(out, types.SectionDescriptor{
			ID:       s.ID,
			Title:    labels.SectionHeading(personalization.SectionHeadings, s.Heading),
			Kind:     types.SectionKindStandard,
			Required: s.Required,
		})
	}
	for i := range profile.CustomSections {
		section := profile.CustomSections[i].Clone()
		out = append(out, types.SectionDescriptor{
			ID:     section.ID,
			Title:  section.Title,
			Kind:   types.SectionKindCustom,
			Custom: &section,
		})
	}
	return out
}

// EffectiveOrder resolves the universe against SectionOrder. An empty order
// yields the universe order. Otherwise the listed ids come first, in list
// order, followed by every universe section the order does not mention, in
// universe order. Orphans and repeats in the order are dropped.
func EffectiveOrder(profile types.ProfileData, personalization types.PersonalizationData) []types.SectionDescriptor {
	universe := Universe(profile, personalization)
	if len(personalization.SectionOrder) == 0 {
		return universe
	}

	index := make(map[types.SectionID]int, len(universe))
	for i, d := range universe {
		if _, seen := index[d.ID]; !seen {
			index[d.ID] = i
		}
	}

	out := make([]types.SectionDescriptor, 0, len(universe))
	placed := make(map[types.SectionID]struct{}, len(universe))
	for _, id := range personalization.SectionOrder {
		if _, dup := placed[id]; dup {
			continue
		}
		i, ok := index[id]
		if !ok {
			continue
		}
		placed[id] = struct{}{}
		out = append(out, universe[i])
	}
	for _, d := range universe {
		if _, ok := placed[d.ID]; ok {
			continue
		}
		placed[d.ID] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Compose returns the ordered, visible, non-empty sections for the pair.
// It is pure and never fails: missing collections are treated as empty and
// stale ids are ignored.
func Compose(profile types.ProfileData, personalization types.PersonalizationData) []types.SectionDescriptor {
	ordered := EffectiveOrder(profile, personalization)
	hidden := make(map[types.SectionID]struct{}, len(personalization.HiddenSections))
	for _, id := range personalization.HiddenSections {
		hidden[id] = struct{}{}
	}

	out := make([]types.SectionDescriptor, 0, len(ordered))
	for _, d := range ordered {
		if _, ok := hidden[d.ID]; ok {
			continue
		}
		if d.Kind == types.SectionKindStandard {
			if s, ok := LookupStandard(d.ID); ok && s.Empty(profile) {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

// IDs projects descriptors onto their ids.
func IDs(descriptors []types.SectionDescriptor) []types.SectionID {
	out := make([]types.SectionID, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.ID
	}
	return out
}
