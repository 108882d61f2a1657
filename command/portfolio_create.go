package command

import (
	"context"
	"strings"

	gocommand "github.com/goliatone/go-command"
	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
	"github.com/google/uuid"
)

const maxSlugAttempts = 20

// PortfolioCommandConfig wires dependencies for portfolio commands.
type PortfolioCommandConfig struct {
	Repository  types.PortfolioRepository
	Hooks       types.Hooks
	Clock       types.Clock
	Logger      types.Logger
	FeatureGate featuregate.FeatureGate
	Schema      SchemaValidator
}

// PortfolioCreateInput captures the first generation of an owner's
// portfolio. A blank slug is derived from the contact name.
type PortfolioCreateInput struct {
	OwnerID         string
	Slug            string
	Profile         types.ProfileData
	Personalization *types.PersonalizationData
	Result          *types.Portfolio
}

// Type implements gocommand.Message.
func (PortfolioCreateInput) Type() string {
	return "command.portfolio.create"
}

// Validate implements gocommand.Message.
func (input PortfolioCreateInput) Validate() error {
	if strings.TrimSpace(input.OwnerID) == "" {
		return ErrOwnerRequired
	}
	return nil
}

// PortfolioCreateCommand stores a new portfolio for an owner that has none.
type PortfolioCreateCommand struct {
	repo   types.PortfolioRepository
	hooks  types.Hooks
	clock  types.Clock
	logger types.Logger
	schema SchemaValidator
}

// NewPortfolioCreateCommand constructs the create handler.
func NewPortfolioCreateCommand(cfg PortfolioCommandConfig) *PortfolioCreateCommand {
	return &PortfolioCreateCommand{
		repo:   cfg.Repository,
		hooks:  cfg.Hooks,
		clock:  safeClock(cfg.Clock),
		logger: safeLogger(cfg.Logger),
		schema: safeSchema(cfg.Schema),
	}
}

var _ gocommand.Commander[PortfolioCreateInput] = (*PortfolioCreateCommand)(nil)

// Execute validates the payload, settles on a free slug and persists the
// portfolio with version 1.
func (c *PortfolioCreateCommand) Execute(ctx context.Context, input PortfolioCreateInput) error {
	if c.repo == nil {
		return ErrMissingRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}
	ownerID := strings.TrimSpace(input.OwnerID)

	existing, err := c.repo.GetByOwner(ctx, ownerID)
	if err != nil && !types.IsNotFound(err) {
		return err
	}
	if existing != nil {
		return types.NewValidationError("ownerId", "owner already has a portfolio")
	}

	personalization := types.DefaultPersonalization()
	if input.Personalization != nil {
		personalization = input.Personalization.Clone()
	}
	if err := validatePersonalization(personalization); err != nil {
		return err
	}
	profile := normalizeProfileLinks(input.Profile.Clone())
	if err := validateProfile(profile, c.schema); err != nil {
		return err
	}
	personalization, err = reconcileSectionRefs(profile, personalization)
	if err != nil {
		return err
	}

	slug, err := c.resolveSlug(ctx, input.Slug, profile.Contact.Name, ownerID)
	if err != nil {
		return err
	}

	created, err := c.repo.CreatePortfolio(ctx, types.Portfolio{
		OwnerID:         ownerID,
		Slug:            slug,
		Profile:         profile,
		Personalization: personalization,
	})
	if err != nil {
		return err
	}
	if input.Result != nil {
		*input.Result = created.Clone()
	}

	warnings := sections.Messages(sections.Validate(*created))
	c.logger.Info("portfolio created", "portfolio_id", created.ID, "owner_id", ownerID, "slug", created.Slug)
	emitPortfolioHook(ctx, c.hooks, types.PortfolioEvent{
		PortfolioID: created.ID,
		OwnerID:     ownerID,
		Action:      "portfolio.create",
		Version:     created.Version,
		Warnings:    warnings,
		OccurredAt:  now(c.clock),
	})
	return nil
}

// resolveSlug validates an explicit slug or derives one, appending a numeric
// suffix until a free slug is found.
func (c *PortfolioCreateCommand) resolveSlug(ctx context.Context, requested, name, ownerID string) (string, error) {
	requested = normalizeSlug(requested)
	if requested != "" {
		if err := ValidateSlug(requested); err != nil {
			return "", err
		}
		taken, err := c.repo.SlugTaken(ctx, requested, uuid.Nil)
		if err != nil {
			return "", err
		}
		if taken {
			return "", types.NewValidationError(fieldSlug, "is already taken")
		}
		return requested, nil
	}

	base := Slugify(name)
	if ValidateSlug(base) != nil {
		base = Slugify("portfolio " + ownerID)
	}
	if ValidateSlug(base) != nil {
		base = "portfolio"
	}
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		candidate := base
		if attempt > 1 {
			candidate = withSuffix(base, attempt)
		}
		taken, err := c.repo.SlugTaken(ctx, candidate, uuid.Nil)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrSlugUnavailable
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
