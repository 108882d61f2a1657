package command

import (
	"context"
	"strings"

	featuregate "github.com/goliatone/go-featuregate/gate"
)

const (
	// FeatureCustomSlug lets owners pick their own slug after creation.
	FeatureCustomSlug = "portfolio.custom_slug"
)

func featureEnabled(ctx context.Context, gate featuregate.FeatureGate, key string, ownerID string) (bool, error) {
	if gate == nil {
		return true, nil
	}
	scopeSet := featureScopeSet(ownerID)
	if scopeSet == nil {
		return gate.Enabled(ctx, key)
	}
	return gate.Enabled(ctx, key, featuregate.WithScopeSet(*scopeSet))
}

func featureScopeSet(ownerID string) *featuregate.ScopeSet {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil
	}
	return &featuregate.ScopeSet{
		System: true,
		UserID: ownerID,
	}
}
