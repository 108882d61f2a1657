package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	featuregate "github.com/goliatone/go-featuregate/gate"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-persistence-bun"
	"github.com/goliatone/go-portfolio/command"
	"github.com/goliatone/go-portfolio/export"
	"github.com/goliatone/go-portfolio/migrations"
	"github.com/goliatone/go-portfolio/pkg/authctx"
	"github.com/goliatone/go-portfolio/service"
	"github.com/goliatone/go-portfolio/skins"
	"github.com/goliatone/go-portfolio/store"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/schema"
)

func WithPersistence(ctx context.Context, app *App) error {
	cfg := app.Config().GetPersistence()
	dsn := cfg.GetServer()
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	var (
		driverName string
		dialect    schema.Dialect
	)
	switch strings.ToLower(strings.TrimSpace(cfg.GetDriver())) {
	case "", "sqlite", "sqlite3":
		driverName, dialect = sqliteshim.ShimName, sqlitedialect.New()
	case "postgres", "pgx", "pg":
		driverName, dialect = "pgx", pgdialect.New()
	default:
		return fmt.Errorf("portfolio: unsupported persistence driver %q", cfg.GetDriver())
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return err
	}

	persistence.RegisterModel((*store.Record)(nil))

	bunClient, err := persistence.New(cfg, db, dialect)
	if err != nil {
		return err
	}
	bunClient.SetLogger(app.GetLogger("persistence"))

	for _, migrationsFS := range migrations.Filesystems() {
		bunClient.RegisterDialectMigrations(
			migrationsFS,
			persistence.WithDialectSourceLabel("."),
			persistence.WithValidationTargets(migrations.Dialects...),
		)
	}

	if err := bunClient.ValidateDialects(ctx); err != nil {
		app.GetLogger("persistence").Warn("dialect validation failed", "error", err)
	}

	if err := bunClient.Migrate(ctx); err != nil {
		return err
	}

	if report := bunClient.Report(); report != nil && !report.IsZero() {
		app.GetLogger("persistence").Info("migrations applied", "report", report.String())
	}

	app.bunDB = bunClient.DB()
	return nil
}

func WithPortfolioService(app *App) error {
	cfg := app.Config()

	repo, err := store.NewRepository(store.RepositoryConfig{DB: app.bunDB}, store.WithCache(cfg.Cache.Enabled))
	if err != nil {
		return err
	}

	app.resolver = authctx.NewJWTResolver(cfg.Auth.SigningKey, cfg.Auth.Issuer)

	registry := skins.NewRegistry()
	printer := export.NewPDFRenderer(export.PDFConfig{
		ExecPath: cfg.Export.ChromePath,
		Timeout:  cfg.Export.Timeout,
		Logger:   &loggerAdapter{app.GetLogger("export")},
	})
	app.exporter = export.NewExporter(registry, printer)

	app.svc = service.New(service.Config{
		Repository:    repo,
		OwnerResolver: app.resolver,
		Skins:         registry,
		FeatureGate: staticGate{flags: map[string]bool{
			command.FeatureCustomSlug: cfg.Features.CustomSlug,
		}},
		Logger: &loggerAdapter{app.GetLogger("svc:portfolio")},
	})
	return nil
}

// staticGate answers feature checks from configuration. Unknown keys are
// disabled.
type staticGate struct {
	flags map[string]bool
}

var _ featuregate.FeatureGate = staticGate{}

func (g staticGate) Enabled(_ context.Context, key string, _ ...featuregate.ResolveOption) (bool, error) {
	return g.flags[key], nil
}

type loggerAdapter struct {
	l glog.Logger
}

func (a *loggerAdapter) Debug(msg string, args ...any) {
	a.l.Debug(msg, args...)
}

func (a *loggerAdapter) Info(msg string, args ...any) {
	a.l.Info(msg, args...)
}

func (a *loggerAdapter) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"error", err}, args...)
	}
	a.l.Error(msg, args...)
}
