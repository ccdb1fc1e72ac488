package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc instant",
			in:   time.Date(2024, 5, 10, 9, 30, 15, 123000000, time.UTC),
			want: `"2024-05-10T09:30:15.123Z"`,
		},
		{
			name: "non-utc input is normalized",
			in:   time.Date(2024, 5, 10, 11, 30, 15, 0, time.FixedZone("CEST", 2*3600)),
			want: `"2024-05-10T09:30:15.000Z"`,
		},
		{
			name: "sub-millisecond precision is dropped",
			in:   time.Date(2024, 5, 10, 9, 30, 15, 123456789, time.UTC),
			want: `"2024-05-10T09:30:15.123Z"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(NewTimestamp(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	t.Run("wire format", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`"2024-05-10T09:30:15.123Z"`), &ts))
		assert.True(t, ts.Time.Equal(time.Date(2024, 5, 10, 9, 30, 15, 123000000, time.UTC)))
	})

	t.Run("null becomes zero", func(t *testing.T) {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
		assert.True(t, ts.IsZero())
	})

	t.Run("malformed string errors", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"10/05/2024"`), &ts))
	})

	t.Run("round trip", func(t *testing.T) {
		in := NewTimestamp(time.Date(2024, 12, 31, 23, 59, 59, 999000000, time.UTC))
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out Timestamp
		require.NoError(t, json.Unmarshal(data, &out))
		assert.True(t, out.Time.Equal(in.Time))
	})
}

func TestTimestamp_SameDay(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 5, 10, 23, 45, 0, 0, time.UTC))

	assert.True(t, ts.SameDay(time.Date(2024, 5, 10, 0, 0, 1, 0, time.UTC)))
	assert.False(t, ts.SameDay(time.Date(2024, 5, 11, 0, 0, 1, 0, time.UTC)))

	// Evaluated in the reference location: 23:45 UTC is already the next
	// day two hours east.
	east := time.FixedZone("EET", 2*3600)
	assert.True(t, ts.SameDay(time.Date(2024, 5, 11, 1, 0, 0, 0, east)))
}

func TestQuiz_ActiveAt(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	quiz := Quiz{
		StartTime: NewTimestamp(now),
		EndTime:   NewTimestamp(now.Add(2 * time.Hour)),
	}

	assert.True(t, quiz.ActiveAt(now), "start is inclusive")
	assert.True(t, quiz.ActiveAt(now.Add(time.Hour)))
	assert.False(t, quiz.ActiveAt(now.Add(2*time.Hour)), "end is exclusive")
	assert.False(t, quiz.ActiveAt(now.Add(-time.Second)))
}

func TestUser_CanRegisterStudents(t *testing.T) {
	role := func(r StudentRole) *StudentRole { return &r }

	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "teacher", user: User{Role: RoleTeacher}, want: true},
		{name: "governor", user: User{Role: RoleStudent, StudentRole: role(StudentGovernor)}, want: true},
		{name: "assistant governor", user: User{Role: RoleStudent, StudentRole: role(StudentAssistantGovernor)}, want: true},
		{name: "regular student", user: User{Role: RoleStudent, StudentRole: role(StudentRegular)}, want: false},
		{name: "student without office", user: User{Role: RoleStudent}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.CanRegisterStudents())
		})
	}
}

func TestSubmission_IsGraded(t *testing.T) {
	grade := "B+"
	empty := ""

	assert.True(t, (&Submission{Grade: &grade}).IsGraded())
	assert.False(t, (&Submission{}).IsGraded())
	assert.False(t, (&Submission{Grade: &empty}).IsGraded())
}

func TestTheme_Toggled(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
}

func TestNewID(t *testing.T) {
	id := NewID("student")
	assert.Contains(t, id, "student-")
	assert.NotEqual(t, id, NewID("student"))
}
