package query

import (
	"context"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-portfolio/command"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/google/uuid"
)

// SlugAvailabilityInput asks whether Slug is free. Exclude skips the
// caller's own portfolio.
type SlugAvailabilityInput struct {
	Slug    string
	Exclude uuid.UUID
}

// SlugAvailability is the answer to a slug check. Reason is set when the
// slug is not available.
type SlugAvailability struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// SlugAvailabilityQuery checks slug format and uniqueness.
type SlugAvailabilityQuery struct {
	repo types.PortfolioRepository
}

// NewSlugAvailabilityQuery constructs the slug check.
func NewSlugAvailabilityQuery(repo types.PortfolioRepository) *SlugAvailabilityQuery {
	return &SlugAvailabilityQuery{repo: repo}
}

var _ gocommand.Querier[SlugAvailabilityInput, SlugAvailability] = (*SlugAvailabilityQuery)(nil)

// Query normalises the slug and reports whether it can be claimed. A
// malformed slug is reported as unavailable rather than as an error.
func (q *SlugAvailabilityQuery) Query(ctx context.Context, input SlugAvailabilityInput) (SlugAvailability, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	out := SlugAvailability{Slug: slug}
	if q.repo == nil {
		return out, types.ErrMissingRepository
	}
	if err := command.ValidateSlug(slug); err != nil {
		out.Reason = err.Error()
		return out, nil
	}
	taken, err := q.repo.SlugTaken(ctx, slug, input.Exclude)
	if err != nil {
		return out, err
	}
	if taken {
		out.Reason = "taken"
		return out, nil
	}
	out.Available = true
	return out, nil
}
