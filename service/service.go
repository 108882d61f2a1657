package service

import (
	"context"
	"time"

	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-portfolio/command"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/query"
	"github.com/goliatone/go-portfolio/session"
	"github.com/goliatone/go-portfolio/skins"
	"github.com/google/uuid"
)

// Service is the entry point for go-portfolio. It wires the repository, owner
// resolution, skins, hooks and the command/query facades supplied by the
// host application.
type Service struct {
	cfg      Config
	commands Commands
	queries  Queries
}

var _ types.PortfolioStore = (*Service)(nil)

// Commands exposes the service command handlers.
type Commands struct {
	PortfolioCreate *command.PortfolioCreateCommand
	PortfolioSave   *command.PortfolioSaveCommand
}

// Queries exposes read-model helpers.
type Queries struct {
	Portfolio        *query.PortfolioQuery
	PortfolioBySlug  *query.PortfolioBySlugQuery
	SlugAvailability *query.SlugAvailabilityQuery
	Render           *query.RenderQuery
}

// Config captures all dependencies so callers can provide their own
// instances (cached repositories, feature gates, custom skins, etc.).
type Config struct {
	Repository    types.PortfolioRepository
	OwnerResolver types.OwnerResolver
	Skins         *skins.Registry
	FeatureGate   featuregate.FeatureGate
	Schema        command.SchemaValidator
	Hooks         types.Hooks
	Clock         types.Clock
	Logger        types.Logger
	SaveTimeout   time.Duration
}

// New constructs a Service from the supplied configuration.
func New(cfg Config) *Service {
	norm := normalizeConfig(cfg)
	s := &Service{cfg: norm}
	s.commands = s.buildCommands()
	s.queries = s.buildQueries()
	return s
}

func normalizeConfig(cfg Config) Config {
	if cfg.Clock == nil {
		cfg.Clock = types.SystemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = types.NopLogger{}
	}
	if cfg.OwnerResolver == nil {
		cfg.OwnerResolver = types.PassthroughOwnerResolver{}
	}
	if cfg.Skins == nil {
		cfg.Skins = skins.NewRegistry()
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = session.DefaultSaveTimeout
	}
	return cfg
}

// Commands returns the command facade.
func (s *Service) Commands() Commands {
	return s.commands
}

// Queries returns the query facade.
func (s *Service) Queries() Queries {
	return s.queries
}

// Skins returns the skin registry used for rendering.
func (s *Service) Skins() *skins.Registry {
	return s.cfg.Skins
}

// Ready reports whether the service has the required dependencies wired in.
func (s *Service) Ready() bool {
	return s != nil &&
		s.cfg.Repository != nil &&
		s.cfg.OwnerResolver != nil &&
		s.cfg.Skins != nil
}

// HealthCheck surfaces missing configuration so transports can fail fast.
func (s *Service) HealthCheck(ctx context.Context) error {
	if !s.Ready() {
		if s != nil && s.cfg.Repository == nil {
			return types.ErrMissingRepository
		}
		return types.ErrServiceNotReady
	}
	return ctx.Err()
}

// LoadPortfolio implements types.PortfolioStore.
func (s *Service) LoadPortfolio(ctx context.Context, ownerToken string) (*types.Portfolio, error) {
	return s.queries.Portfolio.Query(ctx, query.PortfolioQueryInput{OwnerToken: ownerToken})
}

// CheckSlugAvailable implements types.PortfolioStore.
func (s *Service) CheckSlugAvailable(ctx context.Context, slug string) (bool, error) {
	res, err := s.queries.SlugAvailability.Query(ctx, query.SlugAvailabilityInput{Slug: slug})
	if err != nil {
		return false, err
	}
	return res.Available, nil
}

// SavePortfolio implements types.PortfolioStore. It returns the canonical
// record as stored.
func (s *Service) SavePortfolio(ctx context.Context, id uuid.UUID, update types.PortfolioUpdate) (*types.Portfolio, error) {
	var saved types.Portfolio
	err := s.commands.PortfolioSave.Execute(ctx, command.PortfolioSaveInput{
		PortfolioID: id,
		Update:      update,
		Result:      &saved,
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// OpenSession starts an editing session for the token holder's portfolio.
func (s *Service) OpenSession(ctx context.Context, ownerToken string) (*session.Session, error) {
	sess, err := session.New(session.Config{
		Store:       s,
		SaveTimeout: s.cfg.SaveTimeout,
		Clock:       s.cfg.Clock,
		Logger:      s.cfg.Logger,
		Hooks:       s.cfg.Hooks,
	})
	if err != nil {
		return nil, err
	}
	if err := sess.Load(ctx, ownerToken); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) buildCommands() Commands {
	cfg := command.PortfolioCommandConfig{
		Repository:  s.cfg.Repository,
		Hooks:       s.cfg.Hooks,
		Clock:       s.cfg.Clock,
		Logger:      s.cfg.Logger,
		FeatureGate: s.cfg.FeatureGate,
		Schema:      s.cfg.Schema,
	}
	return Commands{
		PortfolioCreate: command.NewPortfolioCreateCommand(cfg),
		PortfolioSave:   command.NewPortfolioSaveCommand(cfg),
	}
}

func (s *Service) buildQueries() Queries {
	return Queries{
		Portfolio:        query.NewPortfolioQuery(s.cfg.Repository, s.cfg.OwnerResolver),
		PortfolioBySlug:  query.NewPortfolioBySlugQuery(s.cfg.Repository),
		SlugAvailability: query.NewSlugAvailabilityQuery(s.cfg.Repository),
		Render:           query.NewRenderQuery(s.cfg.Repository, s.cfg.Skins),
	}
}
