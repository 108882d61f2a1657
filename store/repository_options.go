package store

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
)

// RepositoryOption configures NewRepository.
type RepositoryOption func(*readCache)

// readCache describes the go-repository-cache decorator put in front of
// the record repository. A nil config means reads go straight to the DB.
type readCache struct {
	config *cache.Config
}

// WithCache turns the read cache on with the default cache configuration,
// or off.
func WithCache(enabled bool) RepositoryOption {
	return func(rc *readCache) {
		if !enabled {
			rc.config = nil
			return
		}
		if rc.config == nil {
			cfg := cache.DefaultConfig()
			rc.config = &cfg
		}
	}
}

// WithCacheConfig turns the read cache on with cfg.
func WithCacheConfig(cfg cache.Config) RepositoryOption {
	return func(rc *readCache) {
		rc.config = &cfg
	}
}

func newReadCache(options []RepositoryOption) readCache {
	var rc readCache
	for _, opt := range options {
		if opt != nil {
			opt(&rc)
		}
	}
	return rc
}

// wrap decorates repo unless caching is off or repo already caches.
func (rc readCache) wrap(repo repository.Repository[*Record]) (repository.Repository[*Record], error) {
	if rc.config == nil {
		return repo, nil
	}
	if _, cached := repo.(*repositorycache.CachedRepository[*Record]); cached {
		return repo, nil
	}
	service, err := cache.NewCacheService(*rc.config)
	if err != nil {
		return nil, err
	}
	return repositorycache.New(repo, service, cache.NewDefaultKeySerializer()), nil
}
