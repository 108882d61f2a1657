package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SectionType selects how a custom section body is rendered.
type SectionType string

const (
	SectionTypeText           SectionType = "text"
	SectionTypeList           SectionType = "list"
	SectionTypeAchievements   SectionType = "achievements"
	SectionTypeCertifications SectionType = "certifications"
	SectionTypePublications   SectionType = "publications"
)

// Valid reports whether the section type is one of the known variants.
func (t SectionType) Valid() bool {
	switch t {
	case SectionTypeText, SectionTypeList, SectionTypeAchievements,
		SectionTypeCertifications, SectionTypePublications:
		return true
	}
	return false
}

// Structured reports whether the type renders StructuredItem entries.
func (t SectionType) Structured() bool {
	switch t {
	case SectionTypeAchievements, SectionTypeCertifications, SectionTypePublications:
		return true
	}
	return false
}

// StructuredItem is an entry of an achievements/certifications/publications
// custom section. All fields are optional.
type StructuredItem struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// SectionContent holds the body of a custom section. Exactly one of the three
// shapes is meaningful; on the wire it is a string, a list of strings or a
// list of objects.
type SectionContent struct {
	Text    string
	Items   []string
	Entries []StructuredItem
}

// TextContent builds prose content.
func TextContent(text string) SectionContent {
	return SectionContent{Text: text}
}

// ListContent builds bullet content.
func ListContent(items ...string) SectionContent {
	if items == nil {
		items = []string{}
	}
	return SectionContent{Items: items}
}

// EntryContent builds structured content.
func EntryContent(entries ...StructuredItem) SectionContent {
	if entries == nil {
		entries = []StructuredItem{}
	}
	return SectionContent{Entries: entries}
}

// Empty reports whether there is nothing to render.
func (c SectionContent) Empty() bool {
	return c.Text == "" && len(c.Items) == 0 && len(c.Entries) == 0
}

// MarshalJSON encodes the content as string | []string | []object.
func (c SectionContent) MarshalJSON() ([]byte, error) {
	switch {
	case c.Entries != nil:
		return json.Marshal(c.Entries)
	case c.Items != nil:
		return json.Marshal(c.Items)
	default:
		return json.Marshal(c.Text)
	}
}

// UnmarshalJSON accepts a string, a list of strings or a list of objects.
func (c *SectionContent) UnmarshalJSON(data []byte) error {
	*c = SectionContent{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '"':
		return json.Unmarshal(trimmed, &c.Text)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		if len(raw) == 0 {
			c.Items = []string{}
			return nil
		}
		first := bytes.TrimSpace(raw[0])
		if len(first) > 0 && first[0] == '{' {
			return json.Unmarshal(trimmed, &c.Entries)
		}
		return json.Unmarshal(trimmed, &c.Items)
	default:
		return fmt.Errorf("go-portfolio: unsupported section content %q", string(trimmed))
	}
}

// Clone returns a deep copy of the content.
func (c SectionContent) Clone() SectionContent {
	out := SectionContent{Text: c.Text}
	if c.Items != nil {
		out.Items = append([]string(nil), c.Items...)
	}
	if c.Entries != nil {
		out.Entries = append([]StructuredItem(nil), c.Entries...)
	}
	return out
}

// CustomSection is a user-defined section. ID is opaque and immutable once
// created. Order and Visible are legacy advisory fields: the composer reads
// PersonalizationData.SectionOrder and HiddenSections instead.
type CustomSection struct {
	ID      SectionID      `json:"id"`
	Title   string         `json:"title"`
	Type    SectionType    `json:"type"`
	Content SectionContent `json:"content"`
	Order   int            `json:"order"`
	Visible bool           `json:"visible"`
}

// Clone returns a deep copy of the section.
func (s CustomSection) Clone() CustomSection {
	out := s
	out.Content = s.Content.Clone()
	return out
}
