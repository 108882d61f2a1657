package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/goliatone/go-portfolio/export"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/query"
	"github.com/goliatone/go-router"
)

func (h *Handler) ctx(c router.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), h.timeout)
}

func send(c router.Context, contentType string, data []byte) error {
	c.SetHeader("Content-Type", contentType)
	return c.Status(http.StatusOK).Send(data)
}

// Health reports service readiness.
func (h *Handler) Health(c router.Context) error {
	if h.svc == nil {
		return types.ErrServiceNotReady
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	if err := h.svc.HealthCheck(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// PublicPage renders the published portfolio as HTML. ?template= previews
// another skin without saving.
func (h *Handler) PublicPage(c router.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	res, err := h.svc.Queries().Render.Query(ctx, query.RenderInput{
		Slug:     c.Param("slug", ""),
		Template: types.TemplateID(c.Query("template", "")),
		Document: true,
	})
	if err != nil {
		return err
	}
	return send(c, "text/html; charset=utf-8", res.HTML)
}

// PublicPDF prints the published portfolio.
func (h *Handler) PublicPDF(c router.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	portfolio, err := h.svc.Queries().PortfolioBySlug.Query(ctx, query.PortfolioBySlugInput{Slug: c.Param("slug", "")})
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := h.exporter.Export(ctx, &buf, *portfolio, export.FormatPDF); err != nil {
		return err
	}
	c.SetHeader("Content-Disposition", `inline; filename="`+portfolio.Slug+`.pdf"`)
	return send(c, "application/pdf", buf.Bytes())
}

// SlugAvailable answers slug checks.
func (h *Handler) SlugAvailable(c router.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	res, err := h.svc.Queries().SlugAvailability.Query(ctx, query.SlugAvailabilityInput{Slug: c.Param("slug", "")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

type templateInfo struct {
	ID           types.TemplateID `json:"id"`
	Name         string           `json:"name"`
	Layout       string           `json:"layout"`
	Customizable bool             `json:"customizable"`
}

// Templates lists the registered skins.
func (h *Handler) Templates(c router.Context) error {
	registry := h.svc.Skins()
	out := make([]templateInfo, 0)
	for _, id := range registry.IDs() {
		info := registry.Resolve(id).Info()
		out = append(out, templateInfo{
			ID:           id,
			Name:         info.Name,
			Layout:       string(info.Layout),
			Customizable: info.Customizable,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": out})
}

// GetPortfolio returns the caller's portfolio.
func (h *Handler) GetPortfolio(c router.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	portfolio, err := h.svc.LoadPortfolio(ctx, bearerToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": portfolio})
}

type saveRequest struct {
	Slug            *string                    `json:"slug"`
	Personalization *types.PersonalizationData `json:"personalization"`
	Profile         *types.ProfileData         `json:"resumeData"`
}

// SavePortfolio applies a partial update to the caller's portfolio and
// returns the canonical record.
func (h *Handler) SavePortfolio(c router.Context) error {
	var req saveRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return types.NewValidationError("body", "malformed JSON")
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	current, err := h.svc.LoadPortfolio(ctx, bearerToken(c))
	if err != nil {
		return err
	}
	saved, err := h.svc.SavePortfolio(ctx, current.ID, types.PortfolioUpdate{
		Slug:            req.Slug,
		Personalization: req.Personalization,
		Profile:         req.Profile,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": saved})
}
