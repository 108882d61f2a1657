package session

import (
	"context"

	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
	"github.com/google/uuid"
)

// Custom section operations. A NotFound error from the manager means the
// section is already gone, so the call is treated as a no-op.

// AddSection appends a custom section to the draft.
func (s *Session) AddSection(ctx context.Context, title string, kind types.SectionType, content types.SectionContent) (types.CustomSection, error) {
	var (
		section types.CustomSection
		owner   uuid.UUID
	)
	err := s.mutate(fieldCustomSections, func(d *types.Portfolio) error {
		var err error
		section, err = s.manager.AddSection(d, title, kind, content)
		owner = d.ID
		return err
	})
	if err != nil {
		return types.CustomSection{}, err
	}
	s.emitSection(ctx, owner, section.ID, "section.add")
	return section, nil
}

// UpdateSection merges patch into a custom section. ok is false when the
// section no longer exists.
func (s *Session) UpdateSection(ctx context.Context, id types.SectionID, patch sections.SectionPatch) (section types.CustomSection, ok bool, err error) {
	var owner uuid.UUID
	err = s.mutate(fieldCustomSections, func(d *types.Portfolio) error {
		var err error
		section, err = s.manager.UpdateSection(d, id, patch)
		owner = d.ID
		return err
	})
	if types.IsNotFound(err) {
		return types.CustomSection{}, false, nil
	}
	if err != nil {
		return types.CustomSection{}, false, err
	}
	s.emitSection(ctx, owner, id, "section.update")
	return section, true, nil
}

// DeleteSection removes a custom section along with its order and hidden
// references.
func (s *Session) DeleteSection(ctx context.Context, id types.SectionID) error {
	var owner uuid.UUID
	err := s.mutate(fieldCustomSections, func(d *types.Portfolio) error {
		owner = d.ID
		return s.manager.DeleteSection(d, id)
	})
	if types.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	s.clearField(fieldPersonalization)
	s.emitSection(ctx, owner, id, "section.delete")
	return nil
}

// MoveSection moves a section one slot and returns the complete new order.
func (s *Session) MoveSection(ctx context.Context, id types.SectionID, dir sections.Direction) ([]types.SectionID, error) {
	var (
		order   []types.SectionID
		owner   uuid.UUID
		missing bool
	)
	err := s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		var err error
		owner = d.ID
		order, err = s.manager.MoveSection(d, id, dir)
		if types.IsNotFound(err) {
			missing = true
			order = sections.IDs(sections.EffectiveOrder(d.Profile, d.Personalization))
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !missing {
		s.emitSection(ctx, owner, id, "section.move")
	}
	return order, nil
}

// SetSectionOrder replaces the whole section order, for example to place a
// newly added custom section. Unknown ids are rejected.
func (s *Session) SetSectionOrder(ctx context.Context, order []types.SectionID) ([]types.SectionID, error) {
	var (
		next  []types.SectionID
		owner uuid.UUID
	)
	err := s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		var err error
		owner = d.ID
		next, err = s.manager.SetOrder(d, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.emitSection(ctx, owner, "", "section.reorder")
	return next, nil
}

// SetHidden shows or hides a section and returns the new hidden set.
// Required sections cannot be hidden.
func (s *Session) SetHidden(ctx context.Context, id types.SectionID, hidden bool) ([]types.SectionID, error) {
	var (
		set     []types.SectionID
		owner   uuid.UUID
		missing bool
	)
	err := s.mutate(fieldPersonalization, func(d *types.Portfolio) error {
		var err error
		owner = d.ID
		set, err = s.manager.SetHidden(d, id, hidden)
		if types.IsNotFound(err) {
			missing = true
			set = append([]types.SectionID(nil), d.Personalization.HiddenSections...)
			return nil
		}
		return err
	})
	if err != nil || missing {
		return set, err
	}
	action := "section.show"
	if hidden {
		action = "section.hide"
	}
	s.emitSection(ctx, owner, id, action)
	return set, nil
}

func (s *Session) clearField(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearFieldLocked(field)
}

func (s *Session) emitSection(ctx context.Context, portfolioID uuid.UUID, id types.SectionID, action string) {
	if s.hooks.AfterSectionChange == nil {
		return
	}
	s.hooks.AfterSectionChange(ctx, types.SectionEvent{
		PortfolioID: portfolioID,
		SectionID:   id,
		Action:      action,
		OccurredAt:  s.clock.Now(),
	})
}
