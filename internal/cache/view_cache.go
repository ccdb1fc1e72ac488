// Package cache memoizes derived view results between mutations. Entries
// are tagged with the collections they were computed from; a
// collection-changed event drops every entry tagged with that collection.
package cache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/edusphere/edusphere/internal/events"
)

type ViewCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, collections ...events.Collection)
	Invalidate(collection events.Collection)
	InvalidateAll()
}

type entry struct {
	value       interface{}
	collections []events.Collection
}

type viewCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	logger  *slog.Logger
}

func NewViewCache(logger *slog.Logger) ViewCache {
	return &viewCache{
		entries: make(map[string]entry),
		logger:  logger,
	}
}

func (c *viewCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (c *viewCache) Set(key string, value interface{}, collections ...events.Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, collections: collections}
}

func (c *viewCache) Invalidate(collection events.Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, col := range e.collections {
			if col == collection {
				delete(c.entries, key)
				break
			}
		}
	}
}

func (c *viewCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// RunInvalidator consumes collection-changed messages and drops stale
// entries until the context ends. Run it in its own goroutine.
func RunInvalidator(ctx context.Context, cache ViewCache, publisher *events.ChannelPublisher, logger *slog.Logger) error {
	messages, err := publisher.Subscribe(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			collection := events.Collection(msg.Metadata.Get("collection"))
			cache.Invalidate(collection)
			logger.Debug("view cache invalidated", "collection", collection)
			msg.Ack()
		}
	}
}
