package types

import "strings"

// Contact carries the header block of a profile. Every field may be empty;
// renderers skip blanks instead of failing.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Complete reports whether the contact has the fields a published profile
// needs (name and email).
func (c Contact) Complete() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Email) != ""
}

// Experience is a single work history entry.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	EndDate          string   `json:"endDate,omitempty"`
	Current          bool     `json:"current,omitempty"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Project describes a portfolio project.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// SkillCategory groups skills under a label ("Languages", "Cloud", ...).
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills,omitempty"`
}

// Certification is a standard certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	Link   string `json:"link,omitempty"`
}

// ProfileData is the normalized resume content rendered by every skin.
type ProfileData struct {
	Contact        Contact         `json:"contact"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillCategory `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	CustomSections []CustomSection `json:"customSections"`
}

// CustomSectionByID returns the custom section with the supplied id.
func (p ProfileData) CustomSectionByID(id SectionID) (CustomSection, bool) {
	for _, section := range p.CustomSections {
		if section.ID == id {
			return section, true
		}
	}
	return CustomSection{}, false
}

// Clone returns a deep copy so drafts never alias the canonical record.
func (p ProfileData) Clone() ProfileData {
	out := p
	out.Experience = cloneSlice(p.Experience, func(e Experience) Experience {
		e.Responsibilities = cloneStrings(e.Responsibilities)
		return e
	})
	out.Education = cloneSlice(p.Education, func(e Education) Education {
		e.Highlights = cloneStrings(e.Highlights)
		return e
	})
	out.Skills = cloneSlice(p.Skills, func(s SkillCategory) SkillCategory {
		s.Skills = cloneStrings(s.Skills)
		return s
	})
	out.Projects = cloneSlice(p.Projects, func(pr Project) Project {
		pr.Technologies = cloneStrings(pr.Technologies)
		return pr
	})
	out.Certifications = cloneSlice(p.Certifications, func(c Certification) Certification { return c })
	out.CustomSections = cloneSlice(p.CustomSections, func(c CustomSection) CustomSection { return c.Clone() })
	return out
}

func cloneSlice[T any](in []T, fn func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
