// Package store is the durable store adapter: a byte-oriented key-value
// interface with JSON load/save helpers on top. Each domain collection is
// persisted whole under a single fixed key.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Slot keys, one per collection plus the theme preference.
const (
	KeyUsers         = "edusphere_users"
	KeyCourses       = "edusphere_courses"
	KeyAssignments   = "edusphere_assignments"
	KeyQuizzes       = "edusphere_quizzes"
	KeyVideos        = "edusphere_videos"
	KeyAnnouncements = "edusphere_announcements"
	KeyTemplates     = "edusphere_templates"
	KeyTheme         = "edusphere_theme"
)

// KV is a named-slot byte store. Get reports presence explicitly so an
// absent slot is distinguishable from an empty one.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Load reads and decodes one slot. An absent slot returns def; a corrupt
// slot is logged and returns def. Load never fails toward the caller.
func Load[T any](ctx context.Context, kv KV, logger *slog.Logger, key string, def T) T {
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		logger.Warn("store read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warn("store slot corrupt, using default", "key", key, "error", err)
		return def
	}
	return out
}

// Save encodes and writes one slot. Write-through on every change; the
// caller keeps its in-memory value authoritative when the write fails.
func Save[T any](ctx context.Context, kv KV, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}
