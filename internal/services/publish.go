package services

import (
	"context"
	"log/slog"

	"github.com/edusphere/edusphere/internal/events"
)

// notify publishes a collection-changed event after a committed mutation.
// Publish failures are logged and absorbed; the mutation already happened.
func notify(ctx context.Context, publisher events.Publisher, logger *slog.Logger, collection events.Collection, operation string) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishCollectionChanged(ctx, events.NewCollectionChanged(collection, operation)); err != nil {
		logger.Warn("change notification failed",
			"collection", collection,
			"operation", operation,
			"error", err)
	}
}
