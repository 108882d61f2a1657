package labels

import (
	"testing"

	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestSectionHeading_FallbackChain(t *testing.T) {
	require.Equal(t, "Skills", SectionHeading(map[types.HeadingKey]string{}, types.HeadingSkills))
	require.Equal(t, "Skills", SectionHeading(nil, types.HeadingSkills))
	require.Equal(t, "Tech Stack", SectionHeading(map[types.HeadingKey]string{
		types.HeadingSkills: "Tech Stack",
	}, types.HeadingSkills))
	require.Equal(t, "Skills", SectionHeading(map[types.HeadingKey]string{
		types.HeadingSkills: "   ",
	}, types.HeadingSkills), "blank overrides fall through")
	require.Len(t, DefaultHeadings(), 7)
}

func TestTemplateText_ThreeLayers(t *testing.T) {
	overrides := map[types.TemplateID]map[string]string{
		types.TemplateModern: {TextTagline: "Shipping since 2010"},
	}

	require.Equal(t, "Shipping since 2010", TemplateText(overrides, types.TemplateModern, TextTagline))
	require.Equal(t, "Get in touch", TemplateText(overrides, types.TemplateModern, TextContactHeading))
	require.Equal(t, "Present", TemplateText(overrides, types.TemplateModern, TextPresent))
	require.Equal(t, "", TemplateText(overrides, types.TemplateModern, "unknown"))
	require.Equal(t, "Contact", TemplateText(nil, types.TemplateID("nope"), TextContactHeading))
}

func TestTemplateText_IgnoresCustomizableFlag(t *testing.T) {
	require.False(t, Customizable(types.TemplateClassic))
	overrides := map[types.TemplateID]map[string]string{
		types.TemplateClassic: {TextContactHeading: "Reach me"},
	}
	require.Equal(t, "Reach me", TemplateText(overrides, types.TemplateClassic, TextContactHeading))
}

func TestResolve_MatchesPerKeyLookup(t *testing.T) {
	overrides := map[types.TemplateID]map[string]string{
		types.TemplateTechnical: {TextFooter: "EOF", TextTagline: ""},
	}
	snapshot, err := Resolve(overrides, types.TemplateTechnical)
	require.NoError(t, err)

	for _, key := range []string{TextTagline, TextContactHeading, TextFooter, TextPresent, TextViewProject, TextSourceCode} {
		require.Equal(t, TemplateText(overrides, types.TemplateTechnical, key), snapshot.Text(key), key)
	}

	sources := map[string]Layer{}
	for _, trace := range snapshot.Traces {
		sources[trace.Key] = trace.Source
	}
	require.Equal(t, LayerOverride, sources[TextFooter])
	require.Equal(t, LayerTemplate, sources[TextTagline])
	require.Equal(t, LayerGeneric, sources[TextPresent])
}

func TestTemplates_ListsEveryTemplate(t *testing.T) {
	configs := Templates()
	require.Len(t, configs, len(types.TemplateIDs()))
	require.Equal(t, types.TemplateModern, Template(types.TemplateID("missing")).ID)
}

func TestContactHeading(t *testing.T) {
	p := types.PersonalizationData{TemplateID: types.TemplateModern}
	require.Equal(t, "Get in touch", ContactHeading(p))

	p.TemplateID = types.TemplateClassic
	require.Equal(t, "Contact Information", ContactHeading(p))

	p.TemplateID = types.TemplateCompact
	require.Equal(t, "Contact", ContactHeading(p))

	p.SectionHeadings = map[types.HeadingKey]string{types.HeadingContact: "Say hi"}
	require.Equal(t, "Say hi", ContactHeading(p))
}
