// Package httpapi serves published portfolios and the owner editing API
// through a go-router server backed by fiber.
package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-portfolio/export"
	"github.com/goliatone/go-portfolio/pkg/authctx"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/service"
	"github.com/goliatone/go-router"
)

// Config wires the HTTP layer.
type Config struct {
	Service  *service.Service
	Exporter *export.Exporter
	Logger   types.Logger
	// RequestTimeout bounds each handler's service calls.
	RequestTimeout time.Duration
}

// Handler holds the route handlers.
type Handler struct {
	svc      *service.Service
	exporter *export.Exporter
	logger   types.Logger
	timeout  time.Duration
}

// NewHandler builds the handler set. A nil exporter renders HTML only.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = types.NopLogger{}
	}
	exporter := cfg.Exporter
	if exporter == nil && cfg.Service != nil {
		exporter = export.NewExporter(cfg.Service.Skins(), nil)
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Handler{svc: cfg.Service, exporter: exporter, logger: logger, timeout: timeout}
}

// NewServer returns a fiber-backed go-router server with every route
// registered.
func NewServer(cfg Config) router.Server[*fiber.App] {
	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return fiber.New(fiber.Config{
			UnescapePath:          true,
			DisableStartupMessage: true,
		})
	})
	NewHandler(cfg).Register(srv.Router())
	return srv
}

// Register mounts the routes on r.
func (h *Handler) Register(r router.Router[*fiber.App]) {
	r.Get("/healthz", h.respond(h.Health))
	r.Get("/p/:slug", h.respond(h.PublicPage))
	r.Get("/p/:slug/pdf", h.respond(h.PublicPDF))

	api := r.Group("/api")
	api.Get("/slugs/:slug/available", h.respond(h.SlugAvailable))
	api.Get("/templates", h.respond(h.Templates))
	api.Get("/portfolio", h.respond(h.GetPortfolio), h.requireOwnerToken)
	api.Put("/portfolio", h.respond(h.SavePortfolio), h.requireOwnerToken)
}

// requireOwnerToken rejects requests without a bearer token.
func (h *Handler) requireOwnerToken(next router.HandlerFunc) router.HandlerFunc {
	return func(c router.Context) error {
		if bearerToken(c) == "" {
			return h.fail(c, errUnauthorized)
		}
		return next(c)
	}
}

var errUnauthorized = goerrors.New("missing bearer token", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("OWNER_TOKEN_MISSING")

func bearerToken(c router.Context) string {
	header := strings.TrimSpace(c.Header("Authorization"))
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == header {
		return ""
	}
	return token
}

type errorBody struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// respond turns handler errors into JSON error bodies.
func (h *Handler) respond(fn router.HandlerFunc) router.HandlerFunc {
	return func(c router.Context) error {
		if err := fn(c); err != nil {
			return h.fail(c, err)
		}
		return nil
	}
}

func (h *Handler) fail(c router.Context, err error) error {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", err, "status", status)
	}
	return c.JSON(status, body)
}

// classify maps service errors onto HTTP statuses.
func classify(err error) (int, errorBody) {
	body := errorBody{Message: err.Error()}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		body.Code = richErr.TextCode
	}
	switch {
	case types.IsValidation(err):
		body.Field = types.ValidationField(err)
		return http.StatusBadRequest, body
	case types.IsNotFound(err):
		return http.StatusNotFound, body
	case authctx.IsUnauthorized(err), errors.Is(err, types.ErrOwnerRequired):
		return http.StatusUnauthorized, body
	case types.IsPolicy(err):
		return http.StatusForbidden, body
	case types.IsTimeout(err):
		return http.StatusGatewayTimeout, body
	}
	body.Message = "internal error"
	return http.StatusInternalServerError, body
}
