package types

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Portfolio pairs the profile content with its presentation config.
type Portfolio struct {
	ID              uuid.UUID           `json:"id"`
	OwnerID         string              `json:"ownerId"`
	Slug            string              `json:"slug"`
	Profile         ProfileData         `json:"resumeData"`
	Personalization PersonalizationData `json:"personalization"`
	Version         int                 `json:"version"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// Clone returns a deep copy of the portfolio.
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Profile = p.Profile.Clone()
	out.Personalization = p.Personalization.Clone()
	return out
}

// PortfolioUpdate is a partial save payload. Nil fields are left untouched.
type PortfolioUpdate struct {
	Slug            *string
	Personalization *PersonalizationData
	Profile         *ProfileData
}

// Empty reports whether the update carries nothing.
func (u PortfolioUpdate) Empty() bool {
	return u.Slug == nil && u.Personalization == nil && u.Profile == nil
}

// SectionKind distinguishes built-in sections from user-defined ones.
type SectionKind string

const (
	SectionKindStandard SectionKind = "standard"
	SectionKindCustom   SectionKind = "custom"
)

// SectionDescriptor is a resolved, renderable section.
type SectionDescriptor struct {
	ID       SectionID
	Title    string
	Kind     SectionKind
	Required bool
	// Custom is set for custom descriptors only.
	Custom *CustomSection
}

// PortfolioStore is the persistence boundary consumed by editing sessions.
type PortfolioStore interface {
	LoadPortfolio(ctx context.Context, ownerToken string) (*Portfolio, error)
	CheckSlugAvailable(ctx context.Context, slug string) (bool, error)
	SavePortfolio(ctx context.Context, id uuid.UUID, update PortfolioUpdate) (*Portfolio, error)
}

// PortfolioRepository persists portfolio records keyed by id, owner and slug.
type PortfolioRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Portfolio, error)
	GetByOwner(ctx context.Context, ownerID string) (*Portfolio, error)
	GetBySlug(ctx context.Context, slug string) (*Portfolio, error)
	SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
	CreatePortfolio(ctx context.Context, portfolio Portfolio) (*Portfolio, error)
	UpdatePortfolio(ctx context.Context, portfolio Portfolio) (*Portfolio, error)
}

// OwnerResolver turns the opaque "current user" token into an owner id.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, token string) (string, error)
}

// OwnerResolverFunc adapts a function to OwnerResolver.
type OwnerResolverFunc func(ctx context.Context, token string) (string, error)

// ResolveOwner implements OwnerResolver.
func (fn OwnerResolverFunc) ResolveOwner(ctx context.Context, token string) (string, error) {
	return fn(ctx, token)
}

// PassthroughOwnerResolver treats the token as the owner id.
type PassthroughOwnerResolver struct{}

// ResolveOwner implements OwnerResolver.
func (PassthroughOwnerResolver) ResolveOwner(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrOwnerRequired
	}
	return token, nil
}

// PortfolioEvent is emitted after a portfolio was created or saved.
type PortfolioEvent struct {
	PortfolioID uuid.UUID
	OwnerID     string
	Action      string
	Version     int
	Warnings    []string
	OccurredAt  time.Time
}

// SectionEvent is emitted after a custom section mutation was applied to a
// draft.
type SectionEvent struct {
	PortfolioID uuid.UUID
	SectionID   SectionID
	Action      string
	OccurredAt  time.Time
}

// Hooks groups optional callbacks invoked after key workflows complete.
type Hooks struct {
	AfterPortfolioSave func(context.Context, PortfolioEvent)
	AfterSectionChange func(context.Context, SectionEvent)
}

// Clock abstracts time retrieval for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID creation.
type IDGenerator interface {
	UUID() uuid.UUID
}

// Logger captures basic logging hooks used by the service.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Error(msg string, err error, fields ...any)
}

// SystemClock defers to time.Now for production usage.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// UUIDGenerator produces UUIDv4 identifiers.
type UUIDGenerator struct{}

// UUID returns a randomly generated UUID.
func (UUIDGenerator) UUID() uuid.UUID { return uuid.New() }

// NopLogger discards all log lines.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...any) {}

// Info implements Logger.
func (NopLogger) Info(string, ...any) {}

// Error implements Logger.
func (NopLogger) Error(string, error, ...any) {}

var (
	// ErrOwnerRequired indicates the owner token or id was empty.
	ErrOwnerRequired = errors.New("go-portfolio: owner required")
	// ErrPortfolioIDRequired indicates a save was attempted without an id.
	ErrPortfolioIDRequired = errors.New("go-portfolio: portfolio id required")
	// ErrServiceNotReady indicates the service has not been properly configured.
	ErrServiceNotReady = errors.New("go-portfolio: service not ready")
	// ErrMissingRepository occurs when no portfolio repository was supplied.
	ErrMissingRepository = errors.New("go-portfolio: missing portfolio repository")
	// ErrMissingSkinRegistry occurs when render queries lack a skin registry.
	ErrMissingSkinRegistry = errors.New("go-portfolio: missing skin registry")
)
