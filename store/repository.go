// Package store persists portfolios with go-repository-bun.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-portfolio/pkg/types"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryConfig wires dependencies for the Bun-backed portfolio store.
type RepositoryConfig struct {
	DB         *bun.DB
	Repository repository.Repository[*Record]
	Clock      types.Clock
	IDGen      types.IDGenerator
}

type portfolioStore interface {
	repository.Repository[*Record]
}

// Repository implements types.PortfolioRepository.
type Repository struct {
	portfolioStore
	clock types.Clock
	idGen types.IDGenerator
}

// NewRepository constructs the default portfolio repository.
func NewRepository(cfg RepositoryConfig, options ...RepositoryOption) (*Repository, error) {
	if cfg.Repository == nil && cfg.DB == nil {
		return nil, errors.New("store: db or repository required")
	}
	repo := cfg.Repository
	if repo == nil {
		repo = NewRecordRepository(cfg.DB)
	}

	repo, err := newReadCache(options).wrap(repo)
	if err != nil {
		return nil, err
	}

	clock := cfg.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}
	idGen := cfg.IDGen
	if idGen == nil {
		idGen = types.UUIDGenerator{}
	}
	return &Repository{portfolioStore: repo, clock: clock, idGen: idGen}, nil
}

// NewRecordRepository builds the undecorated go-repository-bun repository.
func NewRecordRepository(db *bun.DB) repository.Repository[*Record] {
	return repository.NewRepository(db, repository.ModelHandlers[*Record]{
		NewRecord: func() *Record { return &Record{} },
		GetID: func(rec *Record) uuid.UUID {
			if rec == nil {
				return uuid.Nil
			}
			return rec.ID
		},
		SetID: func(rec *Record, id uuid.UUID) {
			if rec != nil {
				rec.ID = id
			}
		},
	})
}

var (
	_ repository.Repository[*Record] = (*Repository)(nil)
	_ types.PortfolioRepository      = (*Repository)(nil)
)

// NormalizeSlug lower-cases and trims a slug. Lookups and writes both go
// through it so the slug index stays case-insensitive.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// GetByID returns the portfolio with id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*types.Portfolio, error) {
	rec, err := r.findOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// GetByOwner returns the owner's portfolio.
func (r *Repository) GetByOwner(ctx context.Context, ownerID string) (*types.Portfolio, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, types.ErrOwnerRequired
	}
	rec, err := r.findOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("owner_id = ?", ownerID)
	})
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// GetBySlug returns the portfolio published under slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*types.Portfolio, error) {
	slug = NormalizeSlug(slug)
	if slug == "" {
		return nil, types.ErrPortfolioNotFound
	}
	rec, err := r.findOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("lower(slug) = ?", slug)
	})
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// SlugTaken reports whether slug belongs to a portfolio other than exclude.
func (r *Repository) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	slug = NormalizeSlug(slug)
	rows, _, err := r.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("lower(slug) = ?", slug)
		if exclude != uuid.Nil {
			q = q.Where("id <> ?", exclude)
		}
		return q.Limit(1)
	})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// CreatePortfolio inserts a new portfolio at version 1.
func (r *Repository) CreatePortfolio(ctx context.Context, portfolio types.Portfolio) (*types.Portfolio, error) {
	if strings.TrimSpace(portfolio.OwnerID) == "" {
		return nil, types.ErrOwnerRequired
	}
	now := r.clock.Now()
	payload := fromDomain(portfolio)
	if payload.ID == uuid.Nil {
		payload.ID = r.idGen.UUID()
	}
	payload.Version = 1
	payload.CreatedAt = now
	payload.UpdatedAt = now

	created, err := r.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	return toDomain(created), nil
}

// UpdatePortfolio overwrites the stored portfolio and bumps its version.
func (r *Repository) UpdatePortfolio(ctx context.Context, portfolio types.Portfolio) (*types.Portfolio, error) {
	if portfolio.ID == uuid.Nil {
		return nil, types.ErrPortfolioIDRequired
	}
	existing, err := r.findOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", portfolio.ID)
	})
	if err != nil {
		return nil, err
	}

	payload := fromDomain(portfolio)
	payload.OwnerID = existing.OwnerID
	payload.CreatedAt = existing.CreatedAt
	payload.Version = existing.Version + 1
	payload.UpdatedAt = r.clock.Now()

	updated, err := r.Update(ctx, payload)
	if err != nil {
		return nil, err
	}
	return toDomain(updated), nil
}

func (r *Repository) findOne(ctx context.Context, criteria repository.SelectCriteria) (*Record, error) {
	rows, _, err := r.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return criteria(q).Limit(1)
	})
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, types.ErrPortfolioNotFound
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, types.ErrPortfolioNotFound
	}
	return rows[0], nil
}
