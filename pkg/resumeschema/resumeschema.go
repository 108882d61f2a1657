// Package resumeschema checks resume data against the embedded JSON schema
// before it is persisted.
package resumeschema

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

const fieldPrefix = "resumeData"

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// Schema returns the raw JSON schema document.
func Schema() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

func compiled() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
		if schemaErr != nil {
			schemaErr = goerrors.Wrap(schemaErr, goerrors.CategoryInternal, "go-portfolio: compile resume schema")
		}
	})
	return schema, schemaErr
}

// Violation is a single schema failure.
type Violation struct {
	Field   string
	Message string
}

// Check returns every schema violation of profile, sorted by field.
func Check(profile types.ProfileData) ([]Violation, error) {
	s, err := compiled()
	if err != nil {
		return nil, err
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(profile))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "go-portfolio: validate resume data")
	}
	if res.Valid() {
		return nil, nil
	}
	out := make([]Violation, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		out = append(out, Violation{Field: fieldPath(e.Field()), Message: e.Description()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out, nil
}

// Validate returns a validation error tagged with the top-level profile field
// of the first violation, e.g. "resumeData.contact".
func Validate(profile types.ProfileData) error {
	violations, err := Check(profile)
	if err != nil || len(violations) == 0 {
		return err
	}
	first := violations[0]
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return types.NewValidationError(topLevel(first.Field), strings.Join(msgs, "; "))
}

// fieldPath turns gojsonschema paths ("experience.0.title", "(root)") into
// dotted resumeData paths.
func fieldPath(field string) string {
	if field == "" || field == "(root)" {
		return fieldPrefix
	}
	return fieldPrefix + "." + field
}

func topLevel(field string) string {
	parts := strings.SplitN(field, ".", 3)
	if len(parts) < 2 {
		return field
	}
	return parts[0] + "." + parts[1]
}
