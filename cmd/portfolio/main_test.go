package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gconfig "github.com/goliatone/go-config/config"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-portfolio/cmd/portfolio/config"
	"github.com/goliatone/go-portfolio/command"
	"github.com/goliatone/go-portfolio/export"
	"github.com/goliatone/go-portfolio/query"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	lgr := glog.NewLogger(glog.WithName("test"))
	cfg := gconfig.New(&config.BaseConfig{
		Auth: config.AuthConfig{
			SigningKey: "test-secret",
			Issuer:     "go-portfolio-test",
			TokenTTL:   time.Hour,
		},
		Persistence: config.PersistenceConfig{
			Driver:         "sqlite",
			Server:         "file:" + filepath.Join(t.TempDir(), "portfolio.db") + "?cache=shared",
			PingTimeout:    time.Second,
			OtelIdentifier: "go-portfolio-test",
		},
		Cache:    config.CacheConfig{Enabled: true},
		Export:   config.ExportConfig{Timeout: time.Second},
		Features: config.FeaturesConfig{CustomSlug: true},
	})
	return &App{config: cfg, logger: lgr}
}

func TestStaticGate(t *testing.T) {
	gate := staticGate{flags: map[string]bool{command.FeatureCustomSlug: true}}

	on, err := gate.Enabled(context.Background(), command.FeatureCustomSlug)
	require.NoError(t, err)
	require.True(t, on)

	on, err = gate.Enabled(context.Background(), "portfolio.unknown")
	require.NoError(t, err)
	require.False(t, on)
}

func TestWithPersistence_RejectsUnknownDriver(t *testing.T) {
	app := testApp(t)
	app.Config().Persistence.Driver = "oracle"
	require.Error(t, WithPersistence(context.Background(), app))
}

func TestSeedAndRenderFixture(t *testing.T) {
	ctx := context.Background()
	app := testApp(t)
	require.NoError(t, WithPersistence(ctx, app))
	require.NoError(t, WithPortfolioService(app))

	require.NoError(t, runSeed(ctx, app, []string{"-owner", "owner-42", "../../skins/testdata/portfolio.yaml"}))

	portfolio, err := app.svc.Queries().PortfolioBySlug.Query(ctx, query.PortfolioBySlugInput{Slug: "ada-lovelace"})
	require.NoError(t, err)
	require.Equal(t, "owner-42", portfolio.OwnerID)

	owner, err := app.resolver.ResolveOwner(ctx, mustSign(t, app, "owner-42"))
	require.NoError(t, err)
	require.Equal(t, "owner-42", owner)

	var buf bytes.Buffer
	require.NoError(t, app.exporter.Export(ctx, &buf, *portfolio, export.FormatHTML))
	require.Contains(t, buf.String(), "Ada Lovelace")

	out := filepath.Join(t.TempDir(), "ada.html")
	require.NoError(t, runRender(ctx, app, []string{"ada-lovelace", "-template", "minimal", "-out", out}))
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(written), "Ada Lovelace")

	require.Error(t, runRender(ctx, app, nil))
	require.Error(t, runSeed(ctx, app, nil))
}

func TestRunToken_RequiresOwner(t *testing.T) {
	require.Error(t, runToken(testApp(t), nil))
	require.NoError(t, runToken(testApp(t), []string{"owner-1", "-ttl", "5m"}))
}

func mustSign(t *testing.T, app *App, owner string) string {
	t.Helper()
	token, err := app.resolver.Sign(owner, time.Minute)
	require.NoError(t, err)
	return token
}
