package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/repositories"
	repokv "github.com/edusphere/edusphere/internal/repositories/kv"
	"github.com/edusphere/edusphere/internal/session"
	"github.com/edusphere/edusphere/internal/store"
	"github.com/edusphere/edusphere/internal/validator"
)

// testEnv wires the services over a seeded in-memory store, a recording
// publisher, and a frozen clock.
type testEnv struct {
	repo     repositories.Repository
	recorder *events.Recorder
	now      time.Time
	manager  ServiceManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	repo := repokv.New(store.NewMemoryKV(), logger, now)
	recorder := events.NewRecorder()
	manager := NewServiceManager(repo, logger, validator.New(), recorder, func() time.Time { return now })
	return &testEnv{repo: repo, recorder: recorder, now: now, manager: manager}
}

// loginAs starts a session for a seeded user by username.
func (e *testEnv) loginAs(t *testing.T, username, password string) *session.Session {
	t.Helper()
	sess := session.New()
	if err := e.manager.Auth().Login(context.Background(), sess, username, password); err != nil {
		t.Fatalf("login as %s failed: %v", username, err)
	}
	return sess
}

func (e *testEnv) teacherSession(t *testing.T) *session.Session {
	return e.loginAs(t, "Adekunle", "Opemipo@1")
}

func (e *testEnv) studentSession(t *testing.T) *session.Session {
	return e.loginAs(t, "bob.w", "password123")
}

// governorSession logs in the seeded student holding the Governor office.
func (e *testEnv) governorSession(t *testing.T) *session.Session {
	return e.loginAs(t, "alice.j", "password123")
}
