package query

import (
	"bytes"
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
	"github.com/goliatone/go-portfolio/skins"
)

// RenderInput selects what to render. Portfolio wins over Slug so editors
// can preview an unsaved draft. Template overrides the stored template.
type RenderInput struct {
	Slug      string
	Portfolio *types.Portfolio
	Template  types.TemplateID
	// Document also produces a standalone HTML page.
	Document bool
}

// RenderResult is a rendered portfolio.
type RenderResult struct {
	Portfolio types.Portfolio
	Template  types.TemplateID
	Sections  []types.SectionDescriptor
	Tree      *skins.Node
	HTML      []byte
	Warnings  []sections.Warning
}

// RenderQuery dispatches a portfolio to its skin.
type RenderQuery struct {
	bySlug *PortfolioBySlugQuery
	skins  *skins.Registry
}

// NewRenderQuery constructs the render handler.
func NewRenderQuery(repo types.PortfolioRepository, registry *skins.Registry) *RenderQuery {
	return &RenderQuery{bySlug: NewPortfolioBySlugQuery(repo), skins: registry}
}

var _ gocommand.Querier[RenderInput, RenderResult] = (*RenderQuery)(nil)

// Query renders the requested portfolio.
func (q *RenderQuery) Query(ctx context.Context, input RenderInput) (RenderResult, error) {
	if q.skins == nil {
		return RenderResult{}, types.ErrMissingSkinRegistry
	}
	var portfolio types.Portfolio
	if input.Portfolio != nil {
		portfolio = input.Portfolio.Clone()
	} else {
		found, err := q.bySlug.Query(ctx, PortfolioBySlugInput{Slug: input.Slug})
		if err != nil {
			return RenderResult{}, err
		}
		portfolio = found.Clone()
	}
	if input.Template != "" {
		portfolio.Personalization.TemplateID = input.Template
	}

	tree, skin, err := q.skins.Render(portfolio)
	if err != nil {
		return RenderResult{}, err
	}
	result := RenderResult{
		Portfolio: portfolio,
		Template:  skin.ID(),
		Sections:  sections.Compose(portfolio.Profile, portfolio.Personalization),
		Tree:      tree,
		Warnings:  sections.Validate(portfolio),
	}
	if input.Document {
		var buf bytes.Buffer
		if err := q.skins.WriteDocument(&buf, portfolio); err != nil {
			return RenderResult{}, err
		}
		result.HTML = buf.Bytes()
	}
	return result, nil
}
