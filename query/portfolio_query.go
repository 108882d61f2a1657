package query

import (
	"context"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-portfolio/pkg/types"
)

// PortfolioQueryInput identifies the caller by the opaque owner token.
type PortfolioQueryInput struct {
	OwnerToken string
}

// PortfolioQuery loads the portfolio owned by the token holder.
type PortfolioQuery struct {
	repo     types.PortfolioRepository
	resolver types.OwnerResolver
}

// NewPortfolioQuery constructs the owner lookup. A nil resolver treats the
// token as the owner id.
func NewPortfolioQuery(repo types.PortfolioRepository, resolver types.OwnerResolver) *PortfolioQuery {
	if resolver == nil {
		resolver = types.PassthroughOwnerResolver{}
	}
	return &PortfolioQuery{repo: repo, resolver: resolver}
}

var _ gocommand.Querier[PortfolioQueryInput, *types.Portfolio] = (*PortfolioQuery)(nil)

// Query resolves the owner and returns their portfolio.
func (q *PortfolioQuery) Query(ctx context.Context, input PortfolioQueryInput) (*types.Portfolio, error) {
	if q.repo == nil {
		return nil, types.ErrMissingRepository
	}
	if strings.TrimSpace(input.OwnerToken) == "" {
		return nil, types.ErrOwnerRequired
	}
	ownerID, err := q.resolver.ResolveOwner(ctx, input.OwnerToken)
	if err != nil {
		return nil, err
	}
	return q.repo.GetByOwner(ctx, ownerID)
}

// PortfolioBySlugInput names a public portfolio.
type PortfolioBySlugInput struct {
	Slug string
}

// PortfolioBySlugQuery loads a portfolio by its public slug.
type PortfolioBySlugQuery struct {
	repo types.PortfolioRepository
}

// NewPortfolioBySlugQuery constructs the slug lookup.
func NewPortfolioBySlugQuery(repo types.PortfolioRepository) *PortfolioBySlugQuery {
	return &PortfolioBySlugQuery{repo: repo}
}

var _ gocommand.Querier[PortfolioBySlugInput, *types.Portfolio] = (*PortfolioBySlugQuery)(nil)

// Query returns the portfolio for the slug, matched case-insensitively.
func (q *PortfolioBySlugQuery) Query(ctx context.Context, input PortfolioBySlugInput) (*types.Portfolio, error) {
	if q.repo == nil {
		return nil, types.ErrMissingRepository
	}
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if slug == "" {
		return nil, types.ErrPortfolioNotFound
	}
	return q.repo.GetBySlug(ctx, slug)
}
