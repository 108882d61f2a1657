package sections

import (
	"testing"

	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/stretchr/testify/require"
)

func scenarioPortfolio() types.Portfolio {
	return types.Portfolio{
		Profile: types.ProfileData{
			Experience: []types.Experience{{Title: "Engineer", Company: "Acme"}},
			Skills:     []types.SkillCategory{{Category: "Languages", Skills: []string{"Go"}}},
			CustomSections: []types.CustomSection{{
				ID:      "custom-1",
				Title:   "Awards",
				Type:    types.SectionTypeList,
				Content: types.ListContent("Award A", "Award B"),
				Visible: true,
			}},
		},
		Personalization: types.PersonalizationData{
			TemplateID:     types.TemplateModern,
			SectionOrder:   []types.SectionID{types.SectionExperience, "custom-1", types.SectionSkills},
			HiddenSections: []types.SectionID{types.SectionSkills},
		},
	}
}

func TestCompose_EndToEndScenario(t *testing.T) {
	p := scenarioPortfolio()

	got := IDs(Compose(p.Profile, p.Personalization))
	require.Equal(t, []types.SectionID{types.SectionExperience, "custom-1"}, got)

	descriptors := Compose(p.Profile, p.Personalization)
	require.Equal(t, "Experience", descriptors[0].Title)
	require.True(t, descriptors[0].Required)
	require.Equal(t, types.SectionKindCustom, descriptors[1].Kind)
	require.NotNil(t, descriptors[1].Custom)
	require.Equal(t, "Awards", descriptors[1].Title)
}

func TestCompose_Idempotent(t *testing.T) {
	p := scenarioPortfolio()
	p.Personalization.SectionOrder = nil
	p.Personalization.HiddenSections = nil

	first := Compose(p.Profile, p.Personalization)
	second := Compose(p.Profile, p.Personalization)
	require.Equal(t, IDs(first), IDs(second))
	require.Equal(t, first, second)
}

func TestCompose_EmptyOrderUsesUniverse(t *testing.T) {
	p := scenarioPortfolio()
	p.Personalization.SectionOrder = nil
	p.Personalization.HiddenSections = nil
	p.Profile.Summary = "Hello"

	require.Equal(t, []types.SectionID{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionSkills,
		"custom-1",
	}, IDs(Compose(p.Profile, p.Personalization)))
}

func TestCompose_EmptyStandardSectionsNeverRender(t *testing.T) {
	p := scenarioPortfolio()
	p.Profile.Experience = []types.Experience{}

	cases := []types.PersonalizationData{
		{},
		{SectionOrder: []types.SectionID{types.SectionExperience}},
		{SectionOrder: []types.SectionID{types.SectionExperience, types.SectionExperience}},
		{HiddenSections: []types.SectionID{types.SectionSkills}},
	}
	for _, personalization := range cases {
		for _, id := range IDs(Compose(p.Profile, personalization)) {
			require.NotEqual(t, types.SectionExperience, id)
		}
	}
}

func TestCompose_CustomSectionsRenderWhenEmpty(t *testing.T) {
	profile := types.ProfileData{
		CustomSections: []types.CustomSection{{ID: "custom-9", Title: "Notes", Type: types.SectionTypeText}},
	}
	require.Equal(t, []types.SectionID{"custom-9"}, IDs(Compose(profile, types.PersonalizationData{})))
}

func TestCompose_OrphansAndDuplicatesIgnored(t *testing.T) {
	p := scenarioPortfolio()
	p.Personalization.HiddenSections = []types.SectionID{"custom-gone"}
	p.Personalization.SectionOrder = []types.SectionID{"custom-gone", types.SectionSkills, types.SectionSkills, types.SectionExperience}

	require.Equal(t, []types.SectionID{types.SectionSkills, types.SectionExperience, "custom-1"}, IDs(Compose(p.Profile, p.Personalization)))
}

func TestCompose_SectionsMissingFromOrderRenderAfterIt(t *testing.T) {
	p := scenarioPortfolio()
	p.Profile.Summary = "Hello"
	p.Profile.Education = []types.Education{{Degree: "BSc", Institution: "Uni"}}

	require.Equal(t, []types.SectionID{
		types.SectionExperience,
		"custom-1",
		types.SectionSummary,
		types.SectionEducation,
	}, IDs(Compose(p.Profile, p.Personalization)))

	p.Profile.CustomSections = append(p.Profile.CustomSections, types.CustomSection{
		ID: "custom-2", Title: "Talks", Type: types.SectionTypeText, Content: types.TextContent("x"),
	})
	got := IDs(Compose(p.Profile, p.Personalization))
	require.Equal(t, types.SectionID("custom-2"), got[len(got)-1])
}

func TestCompose_HiddenRequiredSectionDoesNotRender(t *testing.T) {
	p := scenarioPortfolio()
	p.Personalization.HiddenSections = []types.SectionID{types.SectionExperience}

	var got []types.SectionID
	require.NotPanics(t, func() {
		got = IDs(Compose(p.Profile, p.Personalization))
	})
	require.Equal(t, []types.SectionID{"custom-1", types.SectionSkills}, got)
}

func TestCompose_HeadingOverridesApplyToTitles(t *testing.T) {
	p := scenarioPortfolio()
	p.Personalization.HiddenSections = nil
	p.Personalization.SectionHeadings = map[types.HeadingKey]string{types.HeadingSkills: "Tech Stack"}

	descriptors := Compose(p.Profile, p.Personalization)
	require.Equal(t, "Tech Stack", descriptors[2].Title)
}

func TestValidate_ReportsInconsistencies(t *testing.T) {
	p := scenarioPortfolio()
	p.Profile.CustomSections[0].Visible = false
	p.Personalization.TemplateID = "neon"
	p.Personalization.SectionOrder = append(p.Personalization.SectionOrder, "custom-gone", types.SectionSkills)
	p.Personalization.HiddenSections = append(p.Personalization.HiddenSections, types.SectionSummary, "custom-old")

	codes := map[WarningCode]bool{}
	for _, w := range Validate(p) {
		codes[w.Code] = true
	}
	require.True(t, codes[WarningOrphanOrder])
	require.True(t, codes[WarningDuplicateOrder])
	require.True(t, codes[WarningOrphanHidden])
	require.True(t, codes[WarningHiddenRequired])
	require.True(t, codes[WarningUnordered])
	require.True(t, codes[WarningLegacyVisible])
	require.True(t, codes[WarningUnknownTemplate])
}

func TestValidate_CleanPortfolio(t *testing.T) {
	p := scenarioPortfolio()
	p.Personalization.SectionOrder = nil
	p.Personalization.HiddenSections = nil
	require.Empty(t, Validate(p))
	require.Nil(t, Messages(nil))
}
