package models

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the wire format for every persisted date field:
// UTC, millisecond precision, trailing literal Z.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Timestamp wraps time.Time with an explicit millisecond UTC JSON codec.
// Every date-valued field in the persisted collections uses this type, so
// (de)serialization is typed per field instead of sniffing string values.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Millisecond)}
}

// Now returns the current instant truncated to the persisted precision.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.UTC().Format(TimeLayout) + `"`), nil
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*ts = Timestamp{}
		return nil
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*ts = Timestamp{t}
	return nil
}

// Before and After compare underlying instants against plain time values.
func (ts Timestamp) Before(t time.Time) bool { return ts.Time.Before(t) }
func (ts Timestamp) After(t time.Time) bool  { return ts.Time.After(t) }

// SameDay reports whether the timestamp falls within the calendar day of
// ref, evaluated in ref's location.
func (ts Timestamp) SameDay(ref time.Time) bool {
	y1, m1, d1 := ts.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
