package command

import (
	"context"
	"time"

	"github.com/goliatone/go-portfolio/pkg/resumeschema"
	"github.com/goliatone/go-portfolio/pkg/types"
)

func safeClock(clock types.Clock) types.Clock {
	if clock != nil {
		return clock
	}
	return types.SystemClock{}
}

func safeLogger(logger types.Logger) types.Logger {
	if logger != nil {
		return logger
	}
	return types.NopLogger{}
}

func safeSchema(fn SchemaValidator) SchemaValidator {
	if fn != nil {
		return fn
	}
	return resumeschema.Validate
}

func now(clock types.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now()
}

func emitPortfolioHook(ctx context.Context, hooks types.Hooks, event types.PortfolioEvent) {
	if hooks.AfterPortfolioSave == nil {
		return
	}
	hooks.AfterPortfolioSave(ctx, event)
}
