package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-portfolio/pkg/fixtures"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
	"github.com/goliatone/go-portfolio/skins"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	types.PortfolioRepository
	portfolios []types.Portfolio
	slugChecks int
}

func (f *fakeRepo) GetByOwner(_ context.Context, owner string) (*types.Portfolio, error) {
	for _, p := range f.portfolios {
		if p.OwnerID == owner {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, types.ErrPortfolioNotFound
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*types.Portfolio, error) {
	for _, p := range f.portfolios {
		if strings.EqualFold(p.Slug, slug) {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, types.ErrPortfolioNotFound
}

func (f *fakeRepo) SlugTaken(_ context.Context, slug string, exclude uuid.UUID) (bool, error) {
	f.slugChecks++
	for _, p := range f.portfolios {
		if p.ID != exclude && strings.EqualFold(p.Slug, slug) {
			return true, nil
		}
	}
	return false, nil
}

func fixtureRepo(t *testing.T) (*fakeRepo, types.Portfolio) {
	t.Helper()
	p, err := fixtures.Load("../skins/testdata/portfolio.yaml")
	require.NoError(t, err)
	p.ID = uuid.New()
	p.OwnerID = "owner-1"
	p.Slug = "ada"
	return &fakeRepo{portfolios: []types.Portfolio{p}}, p
}

func TestPortfolioQuery_ResolvesOwner(t *testing.T) {
	repo, p := fixtureRepo(t)
	resolver := types.OwnerResolverFunc(func(_ context.Context, token string) (string, error) {
		if token != "token-1" {
			return "", errors.New("bad token")
		}
		return "owner-1", nil
	})

	found, err := NewPortfolioQuery(repo, resolver).Query(context.Background(), PortfolioQueryInput{OwnerToken: "token-1"})
	require.NoError(t, err)
	require.Equal(t, p.ID, found.ID)

	_, err = NewPortfolioQuery(repo, resolver).Query(context.Background(), PortfolioQueryInput{OwnerToken: "nope"})
	require.EqualError(t, err, "bad token")

	_, err = NewPortfolioQuery(repo, nil).Query(context.Background(), PortfolioQueryInput{})
	require.ErrorIs(t, err, types.ErrOwnerRequired)

	found, err = NewPortfolioQuery(repo, nil).Query(context.Background(), PortfolioQueryInput{OwnerToken: "owner-1"})
	require.NoError(t, err)
	require.Equal(t, p.ID, found.ID)
}

func TestPortfolioBySlugQuery(t *testing.T) {
	repo, p := fixtureRepo(t)
	q := NewPortfolioBySlugQuery(repo)

	found, err := q.Query(context.Background(), PortfolioBySlugInput{Slug: " ADA "})
	require.NoError(t, err)
	require.Equal(t, p.ID, found.ID)

	_, err = q.Query(context.Background(), PortfolioBySlugInput{Slug: ""})
	require.True(t, types.IsNotFound(err))

	_, err = NewPortfolioBySlugQuery(nil).Query(context.Background(), PortfolioBySlugInput{Slug: "ada"})
	require.ErrorIs(t, err, types.ErrMissingRepository)
}

func TestSlugAvailabilityQuery(t *testing.T) {
	repo, p := fixtureRepo(t)
	q := NewSlugAvailabilityQuery(repo)
	ctx := context.Background()

	res, err := q.Query(ctx, SlugAvailabilityInput{Slug: "ADA"})
	require.NoError(t, err)
	require.False(t, res.Available)
	require.Equal(t, "taken", res.Reason)

	res, err = q.Query(ctx, SlugAvailabilityInput{Slug: "ada", Exclude: p.ID})
	require.NoError(t, err)
	require.True(t, res.Available)

	repo.slugChecks = 0
	res, err = q.Query(ctx, SlugAvailabilityInput{Slug: "no spaces"})
	require.NoError(t, err)
	require.False(t, res.Available)
	require.NotEmpty(t, res.Reason)
	require.Zero(t, repo.slugChecks, "malformed slugs never reach the repository")
}

func TestRenderQuery_BySlugAndDraft(t *testing.T) {
	repo, p := fixtureRepo(t)
	q := NewRenderQuery(repo, skins.NewRegistry())
	ctx := context.Background()

	res, err := q.Query(ctx, RenderInput{Slug: "ada", Document: true})
	require.NoError(t, err)
	require.Equal(t, types.TemplateModern, res.Template)
	require.Equal(t, sections.IDs(res.Sections), skins.SectionIDs(res.Tree))
	require.Contains(t, string(res.HTML), "<title>Ada Lovelace</title>")

	draft := p.Clone()
	draft.Personalization.TemplateID = "unknown"
	res, err = q.Query(ctx, RenderInput{Portfolio: &draft, Template: types.TemplateClassic})
	require.NoError(t, err)
	require.Equal(t, types.TemplateClassic, res.Template)
	require.Nil(t, res.HTML)

	res, err = q.Query(ctx, RenderInput{Portfolio: &draft})
	require.NoError(t, err)
	require.Equal(t, types.TemplateModern, res.Template, "unknown templates fall back")
	require.NotEmpty(t, res.Warnings)

	_, err = q.Query(ctx, RenderInput{Slug: "missing"})
	require.True(t, types.IsNotFound(err))

	_, err = NewRenderQuery(repo, nil).Query(ctx, RenderInput{Slug: "ada"})
	require.ErrorIs(t, err, types.ErrMissingSkinRegistry)
}
