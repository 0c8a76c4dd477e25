package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EntityAPI is the per-entity facade over the remote service and the
// fallback store. Every method tries the remote service first; when the
// call fails the method logs a warning and serves the fallback store
// instead, reporting Source fallback on the result.
//
// Reads fall back on any remote error. Writes fall back only when the
// service was unreachable; a response the service actually produced
// (validation failure, auth rejection) is returned to the caller.
type EntityAPI[T any] struct {
	client        *Client
	basePath      string
	store         *FallbackStore[T]
	featuredLimit int

	// prepare stamps a record synthesized by a fallback create.
	prepare func(item *T, id string, now time.Time)
	// merge overwrites an existing fallback record with the submitted one,
	// preserving id and created_at.
	merge func(dst *T, src T, now time.Time)
}

// NewEntityAPI creates a facade for the entity rooted at basePath, e.g.
// "/projects". featuredLimit bounds Featured results served from the
// fallback store; pass 0 for entities without a featured variant.
func NewEntityAPI[T any](
	c *Client,
	basePath string,
	store *FallbackStore[T],
	featuredLimit int,
	prepare func(item *T, id string, now time.Time),
	merge func(dst *T, src T, now time.Time),
) *EntityAPI[T] {
	return &EntityAPI[T]{
		client:        c,
		basePath:      basePath,
		store:         store,
		featuredLimit: featuredLimit,
		prepare:       prepare,
		merge:         merge,
	}
}

func (a *EntityAPI[T]) warnFallback(op string, err error) {
	a.client.logger.Warn("remote call failed, serving fallback data",
		zap.String("path", a.basePath),
		zap.String("op", op),
		zap.Error(err),
	)
}

// GetAll lists every record.
func (a *EntityAPI[T]) GetAll(ctx context.Context) (Result[[]T], error) {
	var items []T
	if err := a.client.Get(ctx, a.basePath, nil, &items); err != nil {
		a.warnFallback("get_all", err)
		return fallback(a.store.All()), nil
	}
	return live(items), nil
}

// GetFeatured lists featured records, truncated server-side to the
// entity's configured limit.
func (a *EntityAPI[T]) GetFeatured(ctx context.Context) (Result[[]T], error) {
	var items []T
	if err := a.client.Get(ctx, a.basePath+"/featured", nil, &items); err != nil {
		a.warnFallback("get_featured", err)
		return fallback(a.store.Featured(a.featuredLimit)), nil
	}
	return live(items), nil
}

// GetBySlug fetches a single record by slug. When the remote call fails and
// the fallback store has no matching record either, the remote error is
// returned.
func (a *EntityAPI[T]) GetBySlug(ctx context.Context, slug string) (Result[T], error) {
	var item T
	if err := a.client.Get(ctx, a.basePath+"/"+slug, nil, &item); err != nil {
		a.warnFallback("get_by_slug", err)
		stored, storeErr := a.store.BySlug(slug)
		if storeErr != nil {
			var zero Result[T]
			return zero, err
		}
		return fallback(stored), nil
	}
	return live(item), nil
}

// Create submits a new record. The service derives the slug and stamps id
// and timestamps; a fallback create synthesizes them locally.
func (a *EntityAPI[T]) Create(ctx context.Context, item T) (Result[T], error) {
	var created T
	err := a.client.Post(ctx, a.basePath, item, &created)
	if err == nil {
		return live(created), nil
	}
	if !isRemoteDown(err) {
		var zero Result[T]
		return zero, err
	}
	a.warnFallback("create", err)
	a.prepare(&item, uuid.NewString(), time.Now().UTC())
	a.store.Insert(item)
	return fallback(item), nil
}

// Update overwrites the record with the given id. id and created_at are
// preserved; the slug is re-derived when the title changed.
func (a *EntityAPI[T]) Update(ctx context.Context, id string, item T) (Result[T], error) {
	var updated T
	err := a.client.Put(ctx, a.basePath+"/"+id, item, &updated)
	if err == nil {
		return live(updated), nil
	}
	if !isRemoteDown(err) {
		var zero Result[T]
		return zero, err
	}
	a.warnFallback("update", err)
	now := time.Now().UTC()
	merged, storeErr := a.store.Update(id, func(dst *T) {
		a.merge(dst, item, now)
	})
	if storeErr != nil {
		var zero Result[T]
		return zero, storeErr
	}
	return fallback(merged), nil
}

// Delete removes the record with the given id.
func (a *EntityAPI[T]) Delete(ctx context.Context, id string) (Result[bool], error) {
	err := a.client.Delete(ctx, a.basePath+"/"+id)
	if err == nil {
		return live(true), nil
	}
	if !isRemoteDown(err) {
		var zero Result[bool]
		return zero, err
	}
	a.warnFallback("delete", err)
	if storeErr := a.store.Delete(id); storeErr != nil {
		var zero Result[bool]
		return zero, storeErr
	}
	return fallback(true), nil
}

// SingletonAPI is the facade for the single-record about and profile
// documents. The fallback copy starts from a seed and tracks local updates.
type SingletonAPI[T any] struct {
	client *Client
	path   string

	mu          sync.RWMutex
	fallbackDoc T
}

// NewSingletonAPI creates a facade for the singleton document at path,
// seeded with the given fallback copy.
func NewSingletonAPI[T any](c *Client, path string, seed T) *SingletonAPI[T] {
	return &SingletonAPI[T]{
		client:      c,
		path:        path,
		fallbackDoc: seed,
	}
}

func (a *SingletonAPI[T]) warnFallback(op string, err error) {
	a.client.logger.Warn("remote call failed, serving fallback data",
		zap.String("path", a.path),
		zap.String("op", op),
		zap.Error(err),
	)
}

// Get fetches the document.
func (a *SingletonAPI[T]) Get(ctx context.Context) (Result[T], error) {
	var doc T
	if err := a.client.Get(ctx, a.path, nil, &doc); err != nil {
		a.warnFallback("get", err)
		a.mu.RLock()
		defer a.mu.RUnlock()
		return fallback(a.fallbackDoc), nil
	}
	return live(doc), nil
}

// Update replaces the document.
func (a *SingletonAPI[T]) Update(ctx context.Context, doc T) (Result[T], error) {
	var updated T
	err := a.client.Put(ctx, a.path, doc, &updated)
	if err == nil {
		return live(updated), nil
	}
	if !isRemoteDown(err) {
		var zero Result[T]
		return zero, err
	}
	a.warnFallback("update", err)
	a.mu.Lock()
	a.fallbackDoc = doc
	a.mu.Unlock()
	return fallback(doc), nil
}
