package sections

import (
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestClockIDSource_UniqueWithinSameMillisecond(t *testing.T) {
	src := NewClockIDSource(fixedClock{now: time.UnixMilli(1700000000000)})
	first := src.NextSectionID()
	second := src.NextSectionID()

	require.Equal(t, types.SectionID("custom-1700000000000-1"), first)
	require.NotEqual(t, first, second)
}

func TestManager_AddSectionAppendsWithoutTouchingOrder(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(NewClockIDSource(fixedClock{now: time.UnixMilli(42)}))

	section, err := m.AddSection(&p, " Talks ", types.SectionTypePublications, types.EntryContent(types.StructuredItem{Title: "GopherCon"}))
	require.NoError(t, err)
	require.Equal(t, "Talks", section.Title)
	require.Len(t, p.Profile.CustomSections, 2)
	require.Equal(t, []types.SectionID{types.SectionExperience, "custom-1", types.SectionSkills}, p.Personalization.SectionOrder)

	p.Personalization.SectionOrder = nil
	ids := IDs(Compose(p.Profile, p.Personalization))
	require.Equal(t, section.ID, ids[len(ids)-1])
}

func TestManager_AddSectionValidates(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(nil)

	_, err := m.AddSection(&p, "  ", types.SectionTypeText, types.TextContent("x"))
	require.True(t, types.IsValidation(err))
	require.Equal(t, "title", types.ValidationField(err))

	_, err = m.AddSection(&p, "Blog", types.SectionType("video"), types.TextContent("x"))
	require.True(t, types.IsValidation(err))
	require.Len(t, p.Profile.CustomSections, 1)
}

func TestManager_AddSectionCollisionIsFatal(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(IDSourceFunc(func() types.SectionID { return "custom-1" }))

	_, err := m.AddSection(&p, "Dup", types.SectionTypeText, types.TextContent("x"))
	require.ErrorIs(t, err, types.ErrSectionIDCollision)
	require.Len(t, p.Profile.CustomSections, 1)
	require.Equal(t, "Awards", p.Profile.CustomSections[0].Title)
}

func TestManager_UpdateSection(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(nil)

	title := "Honours"
	updated, err := m.UpdateSection(&p, "custom-1", SectionPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Honours", updated.Title)
	require.Equal(t, types.SectionTypeList, updated.Type)
	require.Equal(t, []string{"Award A", "Award B"}, updated.Content.Items)

	_, err = m.UpdateSection(&p, "custom-404", SectionPatch{Title: &title})
	require.ErrorIs(t, err, types.ErrSectionNotFound)
	require.True(t, types.IsNotFound(err))
}

func TestManager_DeleteSectionIsAtomic(t *testing.T) {
	p := scenarioPortfolio()
	p.Personalization.HiddenSections = append(p.Personalization.HiddenSections, "custom-1")
	m := NewManager(nil)

	require.NoError(t, m.DeleteSection(&p, "custom-1"))
	require.Empty(t, p.Profile.CustomSections)
	require.Equal(t, []types.SectionID{types.SectionExperience, types.SectionSkills}, p.Personalization.SectionOrder)
	require.Equal(t, []types.SectionID{types.SectionSkills}, p.Personalization.HiddenSections)

	require.NotPanics(t, func() {
		require.Equal(t, []types.SectionID{types.SectionExperience}, IDs(Compose(p.Profile, p.Personalization)))
	})

	err := m.DeleteSection(&p, "custom-1")
	require.ErrorIs(t, err, types.ErrSectionNotFound)
}

func TestManager_MoveSectionBoundaries(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(nil)
	before := append([]types.SectionID(nil), p.Personalization.SectionOrder...)
	full := IDs(EffectiveOrder(p.Profile, p.Personalization))

	order, err := m.MoveSection(&p, types.SectionExperience, DirectionUp)
	require.NoError(t, err)
	require.Equal(t, full, order)
	require.Equal(t, before, p.Personalization.SectionOrder)

	order, err = m.MoveSection(&p, types.SectionCertifications, DirectionDown)
	require.NoError(t, err)
	require.Equal(t, full, order)
	require.Equal(t, before, p.Personalization.SectionOrder)
}

func TestManager_MoveSectionReturnsFullOrder(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(nil)

	order, err := m.MoveSection(&p, "custom-1", DirectionUp)
	require.NoError(t, err)
	require.Equal(t, []types.SectionID{
		"custom-1",
		types.SectionExperience,
		types.SectionSkills,
		types.SectionSummary,
		types.SectionEducation,
		types.SectionProjects,
		types.SectionCertifications,
	}, order)
	require.Equal(t, order, p.Personalization.SectionOrder)

	p.Personalization.SectionOrder = nil
	order, err = m.MoveSection(&p, "custom-1", DirectionUp)
	require.NoError(t, err)
	require.Equal(t, []types.SectionID{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
		types.SectionProjects,
		"custom-1",
		types.SectionCertifications,
	}, order)

	_, err = m.MoveSection(&p, "custom-404", DirectionDown)
	require.True(t, types.IsNotFound(err))
	_, err = m.MoveSection(&p, "custom-1", Direction("sideways"))
	require.True(t, types.IsValidation(err))
}

func TestManager_SetHiddenGuardsRequiredSections(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(nil)

	_, err := m.SetHidden(&p, types.SectionExperience, true)
	require.True(t, types.IsPolicy(err))
	require.Equal(t, []types.SectionID{types.SectionSkills}, p.Personalization.HiddenSections)

	hidden, err := m.SetHidden(&p, types.SectionProjects, true)
	require.NoError(t, err)
	require.Equal(t, []types.SectionID{types.SectionSkills, types.SectionProjects}, hidden)

	hidden, err = m.SetHidden(&p, types.SectionProjects, true)
	require.NoError(t, err)
	require.Len(t, hidden, 2)

	hidden, err = m.SetHidden(&p, types.SectionSkills, false)
	require.NoError(t, err)
	require.Equal(t, []types.SectionID{types.SectionProjects}, hidden)

	_, err = m.SetHidden(&p, "custom-404", true)
	require.True(t, types.IsNotFound(err))
}

func TestManager_OrderIntegrityAcrossOperations(t *testing.T) {
	p := scenarioPortfolio()
	p.Personalization.SectionOrder = nil
	p.Personalization.HiddenSections = nil
	m := NewManager(nil)

	var added []types.SectionID
	for i := 0; i < 4; i++ {
		section, err := m.AddSection(&p, fmt.Sprintf("Section %d", i), types.SectionTypeText, types.TextContent("body"))
		require.NoError(t, err)
		added = append(added, section.ID)
		_, err = m.MoveSection(&p, section.ID, DirectionUp)
		require.NoError(t, err)
	}
	require.NoError(t, m.DeleteSection(&p, added[1]))
	_, err := m.MoveSection(&p, added[2], DirectionDown)
	require.NoError(t, err)
	require.NoError(t, m.DeleteSection(&p, "custom-1"))

	universe := map[types.SectionID]bool{}
	for _, id := range IDs(Universe(p.Profile, p.Personalization)) {
		universe[id] = true
	}
	seen := map[types.SectionID]bool{}
	for _, id := range p.Personalization.SectionOrder {
		require.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
		require.True(t, universe[id], "orphan %s", id)
	}
}

func TestManager_NewSectionSurfacesAfterOrderedSections(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(NewClockIDSource(fixedClock{now: time.UnixMilli(7)}))

	section, err := m.AddSection(&p, "Talks", types.SectionTypeText, types.TextContent("x"))
	require.NoError(t, err)
	require.Equal(t, []types.SectionID{types.SectionExperience, "custom-1", section.ID}, IDs(Compose(p.Profile, p.Personalization)))

	order, err := m.MoveSection(&p, section.ID, DirectionUp)
	require.NoError(t, err)
	require.Equal(t, []types.SectionID{
		types.SectionExperience,
		"custom-1",
		types.SectionSkills,
		types.SectionSummary,
		types.SectionEducation,
		types.SectionProjects,
		section.ID,
		types.SectionCertifications,
	}, order)
	require.Equal(t, order, p.Personalization.SectionOrder)
}

func TestManager_SetOrder(t *testing.T) {
	p := scenarioPortfolio()
	m := NewManager(nil)

	order, err := m.SetOrder(&p, []types.SectionID{"custom-1", types.SectionSummary, types.SectionExperience})
	require.NoError(t, err)
	require.Equal(t, []types.SectionID{"custom-1", types.SectionSummary, types.SectionExperience}, order)
	require.Equal(t, order, p.Personalization.SectionOrder)

	_, err = m.SetOrder(&p, []types.SectionID{"custom-9"})
	require.True(t, types.IsNotFound(err))
	_, err = m.SetOrder(&p, []types.SectionID{types.SectionSkills, types.SectionSkills})
	require.True(t, types.IsValidation(err))
	require.Equal(t, order, p.Personalization.SectionOrder, "rejected orders leave the draft alone")

	order, err = m.SetOrder(&p, nil)
	require.NoError(t, err)
	require.Nil(t, p.Personalization.SectionOrder)
	require.Equal(t, IDs(Universe(p.Profile, p.Personalization)), order)
}
