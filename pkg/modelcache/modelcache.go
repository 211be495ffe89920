/*
modelcache keeps the models reported by a backend for a fixed time, so
that model lookups do not hit the backend on every request.
*/
package modelcache

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	// Packages
	llm "github.com/mutablelogic/go-llm-local"
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type modelts struct {
	ts    time.Time
	model schema.Model
}

// ModelCache is safe for concurrent use
type ModelCache struct {
	sync.Mutex
	ttl    time.Duration
	listed time.Time
	model  map[string]modelts
}

type GetModelFunc func(context.Context, string) (*schema.Model, error)
type ListModelsFunc func(context.Context) ([]schema.Model, error)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewModelCache returns a cache where entries expire after ttl. A zero
// ttl disables caching.
func NewModelCache(ttl time.Duration, cap int) *ModelCache {
	self := new(ModelCache)
	if ttl > 0 {
		self.ttl = ttl
	}
	self.model = make(map[string]modelts, cap)
	return self
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetModel returns a cached model, or calls fn and caches the result. A
// not found error from fn removes any stale entry.
func (mc *ModelCache) GetModel(ctx context.Context, name string, fn GetModelFunc) (*schema.Model, error) {
	mc.Lock()
	entry, ok := mc.model[name]
	if ok && time.Since(entry.ts) < mc.ttl {
		mc.Unlock()
		return types.Ptr(entry.model), nil
	} else if ok {
		delete(mc.model, name)
	}
	mc.Unlock()

	// Fetch outside the lock
	model, err := fn(ctx, name)
	if err != nil {
		if errors.Is(err, llm.ErrNotFound) {
			mc.Lock()
			delete(mc.model, name)
			mc.Unlock()
		}
		return nil, err
	} else if model == nil {
		return nil, llm.ErrNotFound.Withf("model %q", name)
	}

	mc.Lock()
	defer mc.Unlock()
	if mc.ttl > 0 {
		mc.model[model.Name] = modelts{ts: time.Now(), model: types.Value(model)}
	}
	return model, nil
}

// ListModels returns the cached list when the last full listing is within
// the ttl, or calls fn and replaces the cache. Models are sorted by name.
func (mc *ModelCache) ListModels(ctx context.Context, fn ListModelsFunc) ([]schema.Model, error) {
	mc.Lock()
	if mc.ttl > 0 && !mc.listed.IsZero() && time.Since(mc.listed) < mc.ttl {
		cached := make([]schema.Model, 0, len(mc.model))
		for _, entry := range mc.model {
			cached = append(cached, entry.model)
		}
		mc.Unlock()
		sortModels(cached)
		return cached, nil
	}
	mc.Unlock()

	// Fetch outside the lock
	models, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	sortModels(models)

	mc.Lock()
	defer mc.Unlock()
	if mc.ttl > 0 {
		now := time.Now()
		clear(mc.model)
		for _, model := range models {
			mc.model[model.Name] = modelts{ts: now, model: model}
		}
		mc.listed = now
	}
	return models, nil
}

// Purge removes all cached models
func (mc *ModelCache) Purge() {
	mc.Lock()
	defer mc.Unlock()
	clear(mc.model)
	mc.listed = time.Time{}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func sortModels(models []schema.Model) {
	slices.SortFunc(models, func(a, b schema.Model) int {
		return strings.Compare(a.Name, b.Name)
	})
}
