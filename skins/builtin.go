package skins

import (
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
)

const (
	fontSans  = "Inter, Helvetica, Arial, sans-serif"
	fontSerif = "Georgia, 'Times New Roman', serif"
	fontMono  = "'JetBrains Mono', Menlo, monospace"
)

var sidebarSections = []types.SectionID{types.SectionSkills, types.SectionCertifications, types.SectionEducation}

type builtinSkin struct {
	id        types.TemplateID
	style     Style
	renderers map[types.SectionID]sectionRenderer
}

var builtinSkins = []builtinSkin{
	{
		id:    types.TemplateModern,
		style: Style{Class: "skin-modern", Contact: ContactInHeader, FontFamily: fontSans, Sidebar: sidebarSections},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionProjects: projectsCards,
		},
	},
	{
		id:    types.TemplateClassic,
		style: Style{Class: "skin-classic", Contact: ContactInHeader, FontFamily: fontSerif, UppercaseHead: true},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionSkills: skillsInline,
		},
	},
	{
		id:    types.TemplateMinimal,
		style: Style{Class: "skin-minimal", Contact: ContactInFooter, FontFamily: fontSans},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionExperience: experienceCompact,
			types.SectionSkills:     skillsInline,
		},
	},
	{
		id:    types.TemplateCreative,
		style: Style{Class: "skin-creative", Contact: ContactInSidebar, FontFamily: fontSans, HeadingFont: fontSerif, Sidebar: sidebarSections},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionSkills:   skillsTags,
			types.SectionProjects: projectsCards,
		},
	},
	{
		id:    types.TemplateProfessional,
		style: Style{Class: "skin-professional", Contact: ContactInSidebar, FontFamily: fontSans, Sidebar: sidebarSections},
	},
	{
		id:    types.TemplateExecutive,
		style: Style{Class: "skin-executive", Contact: ContactInHeader, FontFamily: fontSerif, UppercaseHead: true},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionSummary: summaryLead,
		},
	},
	{
		id:    types.TemplateTechnical,
		style: Style{Class: "skin-technical", Contact: ContactInSidebar, FontFamily: fontMono, Sidebar: sidebarSections},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionSkills:   skillsTags,
			types.SectionProjects: projectsCards,
		},
	},
	{
		id:    types.TemplateElegant,
		style: Style{Class: "skin-elegant", Contact: ContactInFooter, FontFamily: fontSerif},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionSummary: summaryLead,
		},
	},
	{
		id:    types.TemplateBold,
		style: Style{Class: "skin-bold", Contact: ContactInHeader, FontFamily: fontSans, UppercaseHead: true},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionSkills: skillsTags,
		},
	},
	{
		id:    types.TemplateCompact,
		style: Style{Class: "skin-compact", Contact: ContactInHeader, FontFamily: fontSans, Dense: true},
		renderers: map[types.SectionID]sectionRenderer{
			types.SectionExperience: experienceCompact,
			types.SectionSkills:     skillsInline,
		},
	},
}

// Builtins returns the ten built-in skins, each composing sections through
// compose.
func Builtins(compose sections.ComposeFunc) []Skin {
	out := make([]Skin, 0, len(builtinSkins))
	for _, def := range builtinSkins {
		out = append(out, newBaseSkin(def.id, def.style, def.renderers, compose))
	}
	return out
}
