package sections

import (
	"strings"

	"github.com/goliatone/go-portfolio/pkg/types"
)

// Direction moves a section one slot within the effective order.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// SectionPatch carries the mutable fields of a custom section. Nil fields are
// left untouched; the id is immutable.
type SectionPatch struct {
	Title   *string
	Type    *types.SectionType
	Content *types.SectionContent
}

// Manager mutates custom sections on a portfolio draft and keeps
// SectionOrder and HiddenSections free of dangling references. It holds no
// draft state of its own.
type Manager struct {
	ids IDSource
}

// NewManager builds a manager. A nil source falls back to a clock based one.
func NewManager(ids IDSource) *Manager {
	if ids == nil {
		ids = NewClockIDSource(nil)
	}
	return &Manager{ids: ids}
}

// AddSection appends a new custom section. The id is not added to
// SectionOrder; with an empty order the section surfaces at the end of the
// universe.
func (m *Manager) AddSection(draft *types.Portfolio, title string, kind types.SectionType, content types.SectionContent) (types.CustomSection, error) {
	if draft == nil {
		return types.CustomSection{}, types.ErrPortfolioNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return types.CustomSection{}, types.NewValidationError("title", "section title is required")
	}
	if !kind.Valid() {
		return types.CustomSection{}, types.NewValidationError("type", "unsupported section type "+string(kind))
	}

	id := m.ids.NextSectionID()
	if IsStandard(id) {
		return types.CustomSection{}, types.ErrSectionIDCollision
	}
	if _, exists := draft.Profile.CustomSectionByID(id); exists {
		return types.CustomSection{}, types.ErrSectionIDCollision
	}

	section := types.CustomSection{
		ID:      id,
		Title:   title,
		Type:    kind,
		Content: content.Clone(),
		Order:   len(draft.Profile.CustomSections),
		Visible: true,
	}
	draft.Profile.CustomSections = append(draft.Profile.CustomSections, section)
	return section.Clone(), nil
}

// UpdateSection merges patch into the section with id.
func (m *Manager) UpdateSection(draft *types.Portfolio, id types.SectionID, patch SectionPatch) (types.CustomSection, error) {
	idx := customIndex(draft, id)
	if idx < 0 {
		return types.CustomSection{}, types.ErrSectionNotFound
	}

	updated := draft.Profile.CustomSections[idx].Clone()
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return types.CustomSection{}, types.NewValidationError("title", "section title is required")
		}
		updated.Title = title
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return types.CustomSection{}, types.NewValidationError("type", "unsupported section type "+string(*patch.Type))
		}
		updated.Type = *patch.Type
	}
	if patch.Content != nil {
		updated.Content = patch.Content.Clone()
	}

	draft.Profile.CustomSections[idx] = updated
	return updated.Clone(), nil
}

// DeleteSection removes the section and every reference to it from
// SectionOrder and HiddenSections. The three structures are rebuilt first and
// swapped in together, so either all change or none do.
func (m *Manager) DeleteSection(draft *types.Portfolio, id types.SectionID) error {
	idx := customIndex(draft, id)
	if idx < 0 {
		return types.ErrSectionNotFound
	}

	custom := make([]types.CustomSection, 0, len(draft.Profile.CustomSections)-1)
	custom = append(custom, draft.Profile.CustomSections[:idx]...)
	custom = append(custom, draft.Profile.CustomSections[idx+1:]...)
	order := without(draft.Personalization.SectionOrder, id)
	hidden := without(draft.Personalization.HiddenSections, id)

	draft.Profile.CustomSections = custom
	draft.Personalization.SectionOrder = order
	draft.Personalization.HiddenSections = hidden
	return nil
}

// MoveSection swaps id with its neighbour in the effective order and stores
// the complete resulting order. Moving the first id up or the last id down
// returns the order unchanged without storing it.
func (m *Manager) MoveSection(draft *types.Portfolio, id types.SectionID, dir Direction) ([]types.SectionID, error) {
	if draft == nil {
		return nil, types.ErrPortfolioNotFound
	}
	order := IDs(EffectiveOrder(draft.Profile, draft.Personalization))
	pos := -1
	for i, candidate := range order {
		if candidate == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, types.ErrSectionNotFound
	}

	var target int
	switch dir {
	case DirectionUp:
		target = pos - 1
	case DirectionDown:
		target = pos + 1
	default:
		return nil, types.NewValidationError("direction", "direction must be up or down")
	}
	if target < 0 || target >= len(order) {
		return order, nil
	}

	order[pos], order[target] = order[target], order[pos]
	draft.Personalization.SectionOrder = append([]types.SectionID(nil), order...)
	return order, nil
}

// SetHidden adds or removes id from the hidden set and returns the new set.
// Required sections cannot be hidden.
func (m *Manager) SetHidden(draft *types.Portfolio, id types.SectionID, hidden bool) ([]types.SectionID, error) {
	if draft == nil {
		return nil, types.ErrPortfolioNotFound
	}
	if hidden && IsRequired(id) {
		return nil, types.NewPolicyError(id)
	}
	if !IsStandard(id) && customIndex(draft, id) < 0 {
		return nil, types.ErrSectionNotFound
	}

	next := without(draft.Personalization.HiddenSections, id)
	if hidden {
		next = append(next, id)
	}
	draft.Personalization.HiddenSections = next
	return append([]types.SectionID(nil), next...), nil
}

// SetOrder replaces the section order. Every id must be a standard id or an
// existing custom section; duplicates are rejected. An empty order restores
// the default universe order.
func (m *Manager) SetOrder(draft *types.Portfolio, order []types.SectionID) ([]types.SectionID, error) {
	if draft == nil {
		return nil, types.ErrPortfolioNotFound
	}
	seen := make(map[types.SectionID]struct{}, len(order))
	for _, id := range order {
		if !IsStandard(id) && customIndex(draft, id) < 0 {
			return nil, types.ErrSectionNotFound
		}
		if _, dup := seen[id]; dup {
			return nil, types.NewValidationError("sectionOrder", "duplicate section id "+string(id))
		}
		seen[id] = struct{}{}
	}
	if len(order) == 0 {
		draft.Personalization.SectionOrder = nil
		return IDs(EffectiveOrder(draft.Profile, draft.Personalization)), nil
	}
	draft.Personalization.SectionOrder = append([]types.SectionID(nil), order...)
	return append([]types.SectionID(nil), order...), nil
}

func customIndex(draft *types.Portfolio, id types.SectionID) int {
	if draft == nil {
		return -1
	}
	for i, section := range draft.Profile.CustomSections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

func without(ids []types.SectionID, id types.SectionID) []types.SectionID {
	if ids == nil {
		return nil
	}
	out := make([]types.SectionID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
