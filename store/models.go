package store

import (
	"time"

	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record models the portfolios row. Profile and personalization are stored
// as JSON documents.
type Record struct {
	bun.BaseModel `bun:"table:portfolios"`

	ID              uuid.UUID                 `bun:"id,pk,type:uuid"`
	OwnerID         string                    `bun:"owner_id"`
	Slug            string                    `bun:"slug"`
	Profile         types.ProfileData         `bun:"profile,type:jsonb"`
	Personalization types.PersonalizationData `bun:"personalization,type:jsonb"`
	Version         int                       `bun:"version"`
	CreatedAt       time.Time                 `bun:"created_at"`
	UpdatedAt       time.Time                 `bun:"updated_at"`
}

func toDomain(rec *Record) *types.Portfolio {
	if rec == nil {
		return nil
	}
	out := types.Portfolio{
		ID:              rec.ID,
		OwnerID:         rec.OwnerID,
		Slug:            rec.Slug,
		Profile:         rec.Profile.Clone(),
		Personalization: rec.Personalization.Clone(),
		Version:         rec.Version,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
	return &out
}

func fromDomain(p types.Portfolio) *Record {
	return &Record{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Slug:            NormalizeSlug(p.Slug),
		Profile:         p.Profile.Clone(),
		Personalization: p.Personalization.Clone(),
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
