// Package skins renders a portfolio through one of the registered templates.
// Every skin derives its own section list from the injected composer, so all
// skins agree on which sections appear and in what order.
package skins

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-portfolio/labels"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/goliatone/go-portfolio/sections"
)

// Skin renders a portfolio into a tree.
type Skin interface {
	ID() types.TemplateID
	Info() labels.TemplateConfig
	Style() Style
	Render(portfolio types.Portfolio) (*Node, error)
}

// ErrInvalidSkin is returned when registering a nil skin or one without id.
var ErrInvalidSkin = errors.New("go-portfolio: invalid skin")

// Registry maps template ids to skins. Unknown ids resolve to the fallback.
type Registry struct {
	mu       sync.RWMutex
	skins    map[types.TemplateID]Skin
	fallback types.TemplateID
	compose  sections.ComposeFunc
	extra    []Skin
}

// Option customizes registry behaviour.
type Option func(*Registry)

// WithCompose injects the section composer handed to built-in skins.
func WithCompose(fn sections.ComposeFunc) Option {
	return func(r *Registry) {
		if fn != nil {
			r.compose = fn
		}
	}
}

// WithFallback changes the skin used for unknown template ids.
func WithFallback(id types.TemplateID) Option {
	return func(r *Registry) {
		if id != "" {
			r.fallback = id
		}
	}
}

// WithSkins registers additional skins after the built-ins. A skin with a
// built-in id replaces it; nil skins and skins without an id are skipped.
func WithSkins(skins ...Skin) Option {
	return func(r *Registry) {
		r.extra = append(r.extra, skins...)
	}
}

// NewRegistry builds a registry holding the built-in skins.
func NewRegistry(opts ...Option) *Registry {
	reg := &Registry{
		skins:    make(map[types.TemplateID]Skin),
		fallback: types.DefaultTemplate,
		compose:  sections.Compose,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(reg)
		}
	}
	for _, skin := range Builtins(reg.compose) {
		reg.skins[skin.ID()] = skin
	}
	for _, skin := range reg.extra {
		if !validSkin(skin) {
			continue
		}
		reg.skins[skin.ID()] = skin
	}
	reg.extra = nil
	return reg
}

// Register adds or replaces a skin.
func (r *Registry) Register(skin Skin) error {
	if !validSkin(skin) {
		return ErrInvalidSkin
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skins[skin.ID()] = skin
	return nil
}

func validSkin(skin Skin) bool {
	return skin != nil && strings.TrimSpace(string(skin.ID())) != ""
}

// Has reports whether id is registered.
func (r *Registry) Has(id types.TemplateID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.skins[id]
	return ok
}

// Resolve returns the skin for id or the fallback skin.
func (r *Registry) Resolve(id types.TemplateID) Skin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if skin, ok := r.skins[id]; ok {
		return skin
	}
	return r.skins[r.fallback]
}

// IDs lists registered template ids, built-ins first in display order.
func (r *Registry) IDs() []types.TemplateID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.TemplateID, 0, len(r.skins))
	seen := make(map[types.TemplateID]struct{}, len(r.skins))
	for _, id := range types.TemplateIDs() {
		if _, ok := r.skins[id]; ok {
			out = append(out, id)
			seen[id] = struct{}{}
		}
	}
	var rest []types.TemplateID
	for id := range r.skins {
		if _, ok := seen[id]; !ok {
			rest = append(rest, id)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

// Render resolves the portfolio's template and renders it.
func (r *Registry) Render(portfolio types.Portfolio) (*Node, Skin, error) {
	skin := r.Resolve(portfolio.Personalization.TemplateID)
	if skin == nil {
		return nil, nil, ErrInvalidSkin
	}
	tree, err := skin.Render(portfolio)
	if err != nil {
		return nil, skin, err
	}
	return tree, skin, nil
}

// WriteDocument renders the portfolio as a standalone HTML page.
func (r *Registry) WriteDocument(w io.Writer, portfolio types.Portfolio) error {
	tree, skin, err := r.Render(portfolio)
	if err != nil {
		return err
	}
	title := strings.TrimSpace(portfolio.Profile.Contact.Name)
	if title == "" {
		title = "Portfolio"
	}
	layout := portfolio.Personalization.Layout
	if !layout.Valid() {
		layout = skin.Info().Layout
	}
	return WriteDocument(w, Document{
		Title: title,
		CSS:   Stylesheet(skin.Style(), portfolio.Personalization.ColorScheme, layout),
		Root:  tree,
	})
}
