// Command portfolio hosts go-portfolio: it migrates the store, seeds
// portfolios from YAML fixtures, renders public pages to HTML or PDF, signs
// owner tokens and serves the HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	gconfig "github.com/goliatone/go-config/config"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-portfolio/cmd/portfolio/config"
	"github.com/goliatone/go-portfolio/export"
	"github.com/goliatone/go-portfolio/pkg/authctx"
	"github.com/goliatone/go-portfolio/service"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
)

const usage = `usage: portfolio <command> [flags]

commands:
  serve                         start the HTTP server
  seed <fixture.yaml>           create a portfolio from a YAML fixture
  render <slug> [-template id] [-out file.html|file.pdf]
  token <owner-id> [-ttl 24h]   sign an owner token
`

type App struct {
	config   *gconfig.Container[*config.BaseConfig]
	logger   *glog.BaseLogger
	bunDB    *bun.DB
	resolver *authctx.JWTResolver
	exporter *export.Exporter
	svc      *service.Service
}

func (a *App) Config() *config.BaseConfig {
	return a.config.Raw()
}

func (a *App) GetLogger(name string) glog.Logger {
	return a.logger.GetLogger(name)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("portfolio"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	if err := godotenv.Load(); err != nil {
		lgr.GetLogger("config").Debug("no .env file loaded", "error", err)
	}

	cfg := gconfig.New(&config.BaseConfig{}).WithLogger(lgr.GetLogger("config"))

	ctx := context.Background()
	if err := cfg.Load(ctx); err != nil {
		lgr.GetLogger("config").Error("failed to load config", "error", err)
		os.Exit(1)
	}

	app := &App{config: cfg, logger: lgr}

	name, args := os.Args[1], os.Args[2:]
	var err error
	switch name {
	case "token":
		err = runToken(app, args)
	case "serve", "seed", "render":
		if err = WithPersistence(ctx, app); err != nil {
			break
		}
		if err = WithPortfolioService(app); err != nil {
			break
		}
		switch name {
		case "serve":
			err = runServe(ctx, app)
		case "seed":
			err = runSeed(ctx, app, args)
		case "render":
			err = runRender(ctx, app, args)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		app.GetLogger("cmd").Error("command failed", "command", name, "error", err)
		os.Exit(1)
	}
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
