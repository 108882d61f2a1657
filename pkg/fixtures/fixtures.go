// Package fixtures loads portfolios from YAML documents. The YAML tree is
// re-encoded as JSON so the json tags on the domain types stay the single
// source of field names.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-portfolio/pkg/types"
	"gopkg.in/yaml.v3"
)

// Load reads a portfolio fixture from path.
func Load(path string) (types.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Portfolio{}, goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("read fixture %s", path))
	}
	return Decode(data)
}

// Decode parses a YAML portfolio document. Missing personalization fields are
// filled from the defaults a new portfolio starts with.
func Decode(data []byte) (types.Portfolio, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return types.Portfolio{}, types.NewValidationError("fixture", err.Error())
	}
	if tree == nil {
		return types.Portfolio{}, types.NewValidationError("fixture", "document is empty")
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return types.Portfolio{}, types.NewValidationError("fixture", err.Error())
	}

	portfolio := types.Portfolio{Personalization: types.DefaultPersonalization()}
	if err := json.Unmarshal(raw, &portfolio); err != nil {
		return types.Portfolio{}, types.NewValidationError("fixture", err.Error())
	}
	return portfolio, nil
}

// DecodeProfile parses a YAML document holding resume data only.
func DecodeProfile(data []byte) (types.ProfileData, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return types.ProfileData{}, types.NewValidationError("fixture", err.Error())
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return types.ProfileData{}, types.NewValidationError("fixture", err.Error())
	}
	var profile types.ProfileData
	if err := json.Unmarshal(raw, &profile); err != nil {
		return types.ProfileData{}, types.NewValidationError("fixture", err.Error())
	}
	return profile, nil
}
