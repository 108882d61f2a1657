package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-portfolio/pkg/links"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
	"github.com/google/uuid"
)

// PortfolioSaveInput carries a partial update. Nil parts of Update are left
// untouched.
type PortfolioSaveInput struct {
	PortfolioID uuid.UUID
	Update      types.PortfolioUpdate
	Result      *types.Portfolio
}

// Type implements gocommand.Message.
func (PortfolioSaveInput) Type() string {
	return "command.portfolio.save"
}

// Validate implements gocommand.Message.
func (input PortfolioSaveInput) Validate() error {
	if input.PortfolioID == uuid.Nil {
		return ErrPortfolioIDRequired
	}
	return nil
}

// PortfolioSaveCommand validates and persists a portfolio update. It is the
// server-side authority for slug normalisation and uniqueness.
type PortfolioSaveCommand struct {
	repo   types.PortfolioRepository
	hooks  types.Hooks
	clock  types.Clock
	logger types.Logger
	gate   featuregate.FeatureGate
	schema SchemaValidator
}

// NewPortfolioSaveCommand constructs the save handler.
func NewPortfolioSaveCommand(cfg PortfolioCommandConfig) *PortfolioSaveCommand {
	return &PortfolioSaveCommand{
		repo:   cfg.Repository,
		hooks:  cfg.Hooks,
		clock:  safeClock(cfg.Clock),
		logger: safeLogger(cfg.Logger),
		gate:   cfg.FeatureGate,
		schema: safeSchema(cfg.Schema),
	}
}

var _ gocommand.Commander[PortfolioSaveInput] = (*PortfolioSaveCommand)(nil)

// Execute applies the update and stores the result. Input.Result receives the
// canonical record, including the bumped version.
func (c *PortfolioSaveCommand) Execute(ctx context.Context, input PortfolioSaveInput) error {
	if c.repo == nil {
		return ErrMissingRepository
	}
	if err := input.Validate(); err != nil {
		return err
	}

	existing, err := c.repo.GetByID(ctx, input.PortfolioID)
	if err != nil {
		return err
	}
	if input.Update.Empty() {
		if input.Result != nil {
			*input.Result = existing.Clone()
		}
		return nil
	}

	next := existing.Clone()
	if input.Update.Slug != nil {
		slug, err := c.checkSlug(ctx, *existing, *input.Update.Slug)
		if err != nil {
			return err
		}
		next.Slug = slug
	}
	if input.Update.Personalization != nil {
		personalization := input.Update.Personalization.Clone()
		if err := validatePersonalization(personalization); err != nil {
			return err
		}
		next.Personalization = personalization
	}
	if input.Update.Profile != nil {
		profile := normalizeProfileLinks(input.Update.Profile.Clone())
		if err := validateProfile(profile, c.schema); err != nil {
			return err
		}
		next.Profile = profile
	}
	next.Personalization, err = reconcileSectionRefs(next.Profile, next.Personalization)
	if err != nil {
		return err
	}

	saved, err := c.repo.UpdatePortfolio(ctx, next)
	if err != nil {
		c.logger.Error("portfolio save failed", err, "portfolio_id", input.PortfolioID)
		return err
	}
	if input.Result != nil {
		*input.Result = saved.Clone()
	}

	warnings := sections.Validate(*saved)
	for _, w := range warnings {
		c.logger.Debug("portfolio section warning", "portfolio_id", saved.ID, "code", string(w.Code), "section_id", string(w.SectionID))
	}
	c.logger.Info("portfolio saved", "portfolio_id", saved.ID, "version", saved.Version, "warnings", len(warnings))
	emitPortfolioHook(ctx, c.hooks, types.PortfolioEvent{
		PortfolioID: saved.ID,
		OwnerID:     saved.OwnerID,
		Action:      "portfolio.save",
		Version:     saved.Version,
		Warnings:    sections.Messages(warnings),
		OccurredAt:  now(c.clock),
	})
	return nil
}

// checkSlug normalises the requested slug. Changing it needs the
// custom-slug feature, a valid format and a slug no other portfolio holds.
func (c *PortfolioSaveCommand) checkSlug(ctx context.Context, existing types.Portfolio, requested string) (string, error) {
	slug := normalizeSlug(requested)
	if slug == normalizeSlug(existing.Slug) {
		return existing.Slug, nil
	}
	enabled, err := featureEnabled(ctx, c.gate, FeatureCustomSlug, existing.OwnerID)
	if err != nil {
		return "", err
	}
	if !enabled {
		return "", types.NewValidationError(fieldSlug, "custom slugs are disabled")
	}
	if err := ValidateSlug(slug); err != nil {
		return "", err
	}
	taken, err := c.repo.SlugTaken(ctx, slug, existing.ID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", types.NewValidationError(fieldSlug, "is already taken")
	}
	return slug, nil
}

func normalizeProfileLinks(profile types.ProfileData) types.ProfileData {
	profile.Contact.Website = links.NormalizeURL(profile.Contact.Website)
	profile.Contact.LinkedIn = links.NormalizeURL(profile.Contact.LinkedIn)
	for i := range profile.Projects {
		profile.Projects[i].Link = links.NormalizeURL(profile.Projects[i].Link)
		profile.Projects[i].GitHub = links.NormalizeURL(profile.Projects[i].GitHub)
	}
	for i := range profile.Certifications {
		profile.Certifications[i].Link = links.NormalizeURL(profile.Certifications[i].Link)
	}
	return profile
}
