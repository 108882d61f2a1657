package labels

import "github.com/goliatone/go-portfolio/pkg/types"

// TemplateConfig is the static configuration of a skin.
type TemplateConfig struct {
	ID   types.TemplateID
	Name string
	// Customizable tells editors whether template text can be edited. It is a
	// UI policy only; TemplateText resolves overrides regardless.
	Customizable bool
	Layout       types.Layout
	Defaults     map[string]string
}

// Template text keys shared by the skins.
const (
	TextTagline        = "tagline"
	TextContactHeading = "contactHeading"
	TextFooter         = "footer"
	TextPresent        = "present"
	TextViewProject    = "viewProject"
	TextSourceCode     = "sourceCode"
)

var genericText = map[string]string{
	TextTagline:        "",
	TextContactHeading: "Contact",
	TextFooter:         "",
	TextPresent:        "Present",
	TextViewProject:    "View project",
	TextSourceCode:     "Source",
}

var templateConfigs = map[types.TemplateID]TemplateConfig{
	types.TemplateModern: {
		ID: types.TemplateModern, Name: "Modern", Customizable: true, Layout: types.LayoutSingleColumn,
		Defaults: map[string]string{
			TextTagline:        "Building things that matter",
			TextContactHeading: "Get in touch",
			TextFooter:         "Thanks for stopping by.",
		},
	},
	types.TemplateClassic: {
		ID: types.TemplateClassic, Name: "Classic", Customizable: false, Layout: types.LayoutSingleColumn,
		Defaults: map[string]string{
			TextContactHeading: "Contact Information",
		},
	},
	types.TemplateMinimal: {
		ID: types.TemplateMinimal, Name: "Minimal", Customizable: false, Layout: types.LayoutSingleColumn,
		Defaults: map[string]string{
			TextContactHeading: "Contact",
			TextViewProject:    "Link",
		},
	},
	types.TemplateCreative: {
		ID: types.TemplateCreative, Name: "Creative", Customizable: true, Layout: types.LayoutTwoColumn,
		Defaults: map[string]string{
			TextTagline:        "Designing delightful experiences",
			TextContactHeading: "Say hello",
			TextFooter:         "Let's make something together.",
		},
	},
	types.TemplateProfessional: {
		ID: types.TemplateProfessional, Name: "Professional", Customizable: true, Layout: types.LayoutTwoColumn,
		Defaults: map[string]string{
			TextTagline:        "Results-driven professional",
			TextContactHeading: "Contact Details",
		},
	},
	types.TemplateExecutive: {
		ID: types.TemplateExecutive, Name: "Executive", Customizable: true, Layout: types.LayoutSingleColumn,
		Defaults: map[string]string{
			TextTagline:        "Leadership. Strategy. Growth.",
			TextContactHeading: "Contact",
			TextFooter:         "References available upon request.",
		},
	},
	types.TemplateTechnical: {
		ID: types.TemplateTechnical, Name: "Technical", Customizable: true, Layout: types.LayoutTwoColumn,
		Defaults: map[string]string{
			TextTagline:     "$ whoami",
			TextSourceCode:  "Repository",
			TextViewProject: "Live demo",
		},
	},
	types.TemplateElegant: {
		ID: types.TemplateElegant, Name: "Elegant", Customizable: true, Layout: types.LayoutSingleColumn,
		Defaults: map[string]string{
			TextTagline:        "Crafted with care",
			TextContactHeading: "Correspondence",
		},
	},
	types.TemplateBold: {
		ID: types.TemplateBold, Name: "Bold", Customizable: true, Layout: types.LayoutTimeline,
		Defaults: map[string]string{
			TextTagline:        "Make it happen",
			TextContactHeading: "Reach out",
			TextFooter:         "Built to stand out.",
		},
	},
	types.TemplateCompact: {
		ID: types.TemplateCompact, Name: "Compact", Customizable: false, Layout: types.LayoutSingleColumn,
		Defaults: map[string]string{},
	},
}

// Template returns the static config for id, falling back to the default
// template when id is unknown.
func Template(id types.TemplateID) TemplateConfig {
	if cfg, ok := templateConfigs[id]; ok {
		return cloneConfig(cfg)
	}
	return cloneConfig(templateConfigs[types.DefaultTemplate])
}

// Templates lists every template config in display order.
func Templates() []TemplateConfig {
	ids := types.TemplateIDs()
	out := make([]TemplateConfig, 0, len(ids))
	for _, id := range ids {
		out = append(out, Template(id))
	}
	return out
}

// Customizable reports the UI editing flag for id.
func Customizable(id types.TemplateID) bool {
	return Template(id).Customizable
}

func cloneConfig(cfg TemplateConfig) TemplateConfig {
	out := cfg
	out.Defaults = make(map[string]string, len(cfg.Defaults))
	for k, v := range cfg.Defaults {
		out.Defaults[k] = v
	}
	return out
}
