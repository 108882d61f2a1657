package service_test

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-portfolio/command"
	"github.com/goliatone/go-portfolio/pkg/authctx"
	"github.com/goliatone/go-portfolio/pkg/fixtures"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/query"
	"github.com/goliatone/go-portfolio/sections"
	"github.com/goliatone/go-portfolio/service"
	"github.com/goliatone/go-portfolio/skins"
	"github.com/goliatone/go-portfolio/store"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

type eventLog struct {
	mu        sync.Mutex
	saves     []types.PortfolioEvent
	sectionEv []types.SectionEvent
}

func (l *eventLog) hooks() types.Hooks {
	return types.Hooks{
		AfterPortfolioSave: func(_ context.Context, evt types.PortfolioEvent) {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.saves = append(l.saves, evt)
		},
		AfterSectionChange: func(_ context.Context, evt types.SectionEvent) {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.sectionEv = append(l.sectionEv, evt)
		},
	}
}

func newService(t *testing.T, events *eventLog) (*service.Service, *authctx.JWTResolver) {
	t.Helper()
	sqldb, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ddl, err := os.ReadFile("../data/sql/migrations/sqlite/00001_portfolios.up.sql")
	require.NoError(t, err)
	for _, stmt := range strings.Split(string(ddl), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			_, err := db.Exec(stmt)
			require.NoError(t, err)
		}
	}

	repo, err := store.NewRepository(store.RepositoryConfig{DB: db})
	require.NoError(t, err)
	resolver := authctx.NewJWTResolver("test-secret", "go-portfolio")
	svc := service.New(service.Config{
		Repository:    repo,
		OwnerResolver: resolver,
		Hooks:         events.hooks(),
		SaveTimeout:   2 * time.Second,
	})
	return svc, resolver
}

func TestService_EditAndRenderFlow(t *testing.T) {
	ctx := context.Background()
	events := &eventLog{}
	svc, resolver := newService(t, events)
	require.NoError(t, svc.HealthCheck(ctx))

	fixture, err := fixtures.Load("../skins/testdata/portfolio.yaml")
	require.NoError(t, err)

	var created types.Portfolio
	err = svc.Commands().PortfolioCreate.Execute(ctx, command.PortfolioCreateInput{
		OwnerID:         "owner-1",
		Profile:         fixture.Profile,
		Personalization: &fixture.Personalization,
		Result:          &created,
	})
	require.NoError(t, err)
	require.Equal(t, "ada-lovelace", created.Slug)
	require.Equal(t, "https://linkedin.com/in/ada", created.Profile.Contact.LinkedIn)

	token, err := resolver.Sign("owner-1", time.Hour)
	require.NoError(t, err)
	sess, err := svc.OpenSession(ctx, token)
	require.NoError(t, err)

	talk, err := sess.AddSection(ctx, "Talks", types.SectionTypeList, types.ListContent("On the Engine"))
	require.NoError(t, err)
	_, err = sess.MoveSection(ctx, talk.ID, sections.DirectionUp)
	require.NoError(t, err)
	_, err = sess.SetHidden(ctx, types.SectionProjects, false)
	require.NoError(t, err)
	require.NoError(t, sess.SetSummary("First programmer."))

	saved, err := sess.Save(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, saved.Version)
	require.Contains(t, saved.Personalization.SectionOrder, talk.ID)

	res, err := svc.Queries().Render.Query(ctx, query.RenderInput{Slug: "ADA-LOVELACE", Document: true})
	require.NoError(t, err)
	ids := sections.IDs(res.Sections)
	require.Contains(t, ids, talk.ID)
	require.Contains(t, ids, types.SectionProjects)
	require.Equal(t, ids, skins.SectionIDs(res.Tree))
	require.Contains(t, string(res.HTML), "On the Engine")
	require.Contains(t, string(res.HTML), "First programmer.")

	events.mu.Lock()
	defer events.mu.Unlock()
	require.Len(t, events.saves, 2)
	require.Equal(t, "portfolio.save", events.saves[1].Action)
	require.Len(t, events.sectionEv, 3)
	require.Equal(t, created.ID, events.sectionEv[0].PortfolioID)
}

func TestService_StoreContract(t *testing.T) {
	ctx := context.Background()
	svc, resolver := newService(t, &eventLog{})

	var first types.Portfolio
	require.NoError(t, svc.Commands().PortfolioCreate.Execute(ctx, command.PortfolioCreateInput{
		OwnerID: "owner-1",
		Slug:    "ada",
		Result:  &first,
	}))
	require.NoError(t, svc.Commands().PortfolioCreate.Execute(ctx, command.PortfolioCreateInput{
		OwnerID: "owner-2",
		Slug:    "grace",
	}))

	available, err := svc.CheckSlugAvailable(ctx, "Grace")
	require.NoError(t, err)
	require.False(t, available)
	available, err = svc.CheckSlugAvailable(ctx, "babbage")
	require.NoError(t, err)
	require.True(t, available)

	slug := "grace"
	_, err = svc.SavePortfolio(ctx, first.ID, types.PortfolioUpdate{Slug: &slug})
	require.True(t, types.IsValidation(err))
	require.Equal(t, "slug", types.ValidationField(err))

	_, err = svc.LoadPortfolio(ctx, "forged-token")
	require.True(t, authctx.IsUnauthorized(err))

	token, err := resolver.Sign("nobody", time.Hour)
	require.NoError(t, err)
	_, err = svc.LoadPortfolio(ctx, token)
	require.True(t, types.IsNotFound(err))
}

func TestService_HealthCheckReportsMissingRepository(t *testing.T) {
	svc := service.New(service.Config{})
	require.False(t, svc.Ready())
	require.ErrorIs(t, svc.HealthCheck(context.Background()), types.ErrMissingRepository)
}
