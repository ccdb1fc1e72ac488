package models

import "github.com/google/uuid"

// NewID mints an opaque unique identifier. The kind prefix makes persisted
// slots legible when inspected by hand; nothing parses it back.
func NewID(kind string) string {
	return kind + "-" + uuid.NewString()
}
