// Package events announces collection changes to the rendering layer.
// The runtime is a single process, so the transport is watermill's
// in-process gochannel pub/sub rather than a broker.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// TopicCollectionChanged carries one message per committed mutation.
const TopicCollectionChanged = "edusphere.collection-changed"

// Collection names match the store slot they describe.
type Collection string

const (
	CollectionUsers         Collection = "users"
	CollectionCourses       Collection = "courses"
	CollectionAssignments   Collection = "assignments"
	CollectionQuizzes       Collection = "quizzes"
	CollectionAnnouncements Collection = "announcements"
	CollectionTemplates     Collection = "templates"
	CollectionVideos        Collection = "videos"
	CollectionSettings      Collection = "settings"
)

// CollectionChanged tells a consumer which derived views are stale. It
// names the collection, not the row: consumers recompute views from the
// repositories, they do not patch state from events.
type CollectionChanged struct {
	ID         string     `json:"id"`
	Collection Collection `json:"collection"`
	Operation  string     `json:"operation"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func NewCollectionChanged(collection Collection, operation string) *CollectionChanged {
	return &CollectionChanged{
		ID:         watermill.NewUUID(),
		Collection: collection,
		Operation:  operation,
		OccurredAt: time.Now(),
	}
}

// Publisher is what the services depend on; the channel implementation is
// the production one, the recorder serves tests.
type Publisher interface {
	PublishCollectionChanged(ctx context.Context, event *CollectionChanged) error
	Close() error
}

// ChannelPublisher fans changes out to in-process subscribers.
type ChannelPublisher struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

func NewChannelPublisher(logger *slog.Logger) *ChannelPublisher {
	return &ChannelPublisher{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger)),
		logger: logger,
	}
}

func (p *ChannelPublisher) PublishCollectionChanged(ctx context.Context, event *CollectionChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("collection", string(event.Collection))
	msg.Metadata.Set("operation", event.Operation)

	if err := p.pubSub.Publish(TopicCollectionChanged, msg); err != nil {
		p.logger.Error("failed to publish collection change",
			"collection", event.Collection,
			"operation", event.Operation,
			"error", err)
		return err
	}
	return nil
}

// Subscribe returns the change feed a rendering layer listens on.
func (p *ChannelPublisher) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return p.pubSub.Subscribe(ctx, TopicCollectionChanged)
}

func (p *ChannelPublisher) Close() error {
	return p.pubSub.Close()
}

// Recorder stores published events in memory for tests.
type Recorder struct {
	Events []CollectionChanged
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) PublishCollectionChanged(_ context.Context, event *CollectionChanged) error {
	r.Events = append(r.Events, *event)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Changed reports whether any recorded event touched the collection.
func (r *Recorder) Changed(collection Collection) bool {
	for _, e := range r.Events {
		if e.Collection == collection {
			return true
		}
	}
	return false
}
