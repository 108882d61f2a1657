package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goliatone/go-portfolio/command"
	"github.com/goliatone/go-portfolio/export"
	"github.com/goliatone/go-portfolio/httpapi"
	"github.com/goliatone/go-portfolio/pkg/authctx"
	"github.com/goliatone/go-portfolio/pkg/fixtures"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/query"
)

func runServe(ctx context.Context, app *App) error {
	serverCfg := app.Config().GetServer()
	if err := app.svc.HealthCheck(ctx); err != nil {
		return err
	}

	srv := httpapi.NewServer(httpapi.Config{
		Service:        app.svc,
		Exporter:       app.exporter,
		Logger:         &loggerAdapter{app.GetLogger("http")},
		RequestTimeout: serverCfg.RequestTimeout,
	})

	addr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	errs := make(chan error, 1)
	go func() {
		app.GetLogger("http").Info("starting server", "addr", "http://"+addr)
		errs <- srv.Serve(addr)
	}()

	select {
	case err := <-errs:
		return err
	case sig := <-waitExit():
		app.GetLogger("http").Info("shutting down", "signal", sig.String())
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func waitExit() <-chan os.Signal {
	ch := make(chan os.Signal, 1)
	go func() { ch <- WaitExitSignal() }()
	return ch
}

func runSeed(ctx context.Context, app *App, args []string) error {
	flags := flag.NewFlagSet("seed", flag.ContinueOnError)
	owner := flags.String("owner", "", "owner id, overrides the fixture's ownerId")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("seed: fixture path required")
	}

	fixture, err := fixtures.Load(flags.Arg(0))
	if err != nil {
		return err
	}
	if *owner != "" {
		fixture.OwnerID = *owner
	}

	var created types.Portfolio
	err = app.svc.Commands().PortfolioCreate.Execute(ctx, command.PortfolioCreateInput{
		OwnerID:         fixture.OwnerID,
		Slug:            fixture.Slug,
		Profile:         fixture.Profile,
		Personalization: &fixture.Personalization,
		Result:          &created,
	})
	if err != nil {
		return err
	}

	token, err := app.resolver.Sign(created.OwnerID, app.Config().GetAuth().TokenTTL)
	if err != nil {
		return err
	}
	app.GetLogger("seed").Info("portfolio created",
		"portfolio_id", created.ID,
		"owner_id", created.OwnerID,
		"slug", created.Slug,
	)
	fmt.Println(token)
	return nil
}

func runRender(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return errors.New("render: slug required")
	}
	slug, rest := args[0], args[1:]

	flags := flag.NewFlagSet("render", flag.ContinueOnError)
	template := flags.String("template", "", "template id, overrides the saved choice")
	out := flags.String("out", "", "output file; a .pdf extension prints through Chrome")
	if err := flags.Parse(rest); err != nil {
		return err
	}

	portfolio, err := app.svc.Queries().PortfolioBySlug.Query(ctx, query.PortfolioBySlugInput{Slug: slug})
	if err != nil {
		return err
	}
	if *template != "" {
		portfolio.Personalization.TemplateID = types.TemplateID(*template)
	}

	format := export.FormatHTML
	var w io.Writer = os.Stdout
	if *out != "" {
		format = export.FormatFromPath(*out)
		file, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer file.Close()
		buf := bufio.NewWriter(file)
		defer buf.Flush()
		w = buf
	}

	return app.exporter.Export(ctx, w, *portfolio, format)
}

func runToken(app *App, args []string) error {
	if len(args) == 0 {
		return errors.New("token: owner id required")
	}
	owner, rest := args[0], args[1:]

	authCfg := app.Config().GetAuth()
	flags := flag.NewFlagSet("token", flag.ContinueOnError)
	ttl := flags.Duration("ttl", authCfg.TokenTTL, "token lifetime")
	if err := flags.Parse(rest); err != nil {
		return err
	}

	resolver := authctx.NewJWTResolver(authCfg.SigningKey, authCfg.Issuer)
	token, err := resolver.Sign(owner, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
