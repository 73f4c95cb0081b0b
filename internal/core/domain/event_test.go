package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_Success(t *testing.T) {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	e, err := NewEvent(3, 4, ts, "ops", "kernel update")
	require.NoError(t, err)

	assert.Equal(t, int64(3), e.HostID)
	assert.Equal(t, int64(4), e.EventTypeID)
	assert.Equal(t, ts, e.Timestamp)
	assert.Equal(t, "ops", e.User)
}

func TestNewEvent_MissingReferences(t *testing.T) {
	ts := time.Now()

	_, err := NewEvent(0, 4, ts, "ops", "")
	assert.ErrorIs(t, err, ErrEventHostRequired)

	_, err = NewEvent(3, 0, ts, "ops", "")
	assert.ErrorIs(t, err, ErrEventTypeRequired)
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "", FormatTimestamp(time.Time{}))

	ts := time.Date(2026, 8, 1, 13, 30, 45, 0, time.UTC)
	assert.Equal(t, "2026-08-01 13:30:45", FormatTimestamp(ts))

	// Non-UTC timestamps render in UTC.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2026-08-01 18:30:45", FormatTimestamp(time.Date(2026, 8, 1, 13, 30, 45, 0, est)))
}

func TestEvent_Document(t *testing.T) {
	e := Event{
		ID:          9,
		HostID:      3,
		EventTypeID: 4,
		Timestamp:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		User:        "ops",
		Note:        "kernel update",
	}

	data, err := json.Marshal(e.Document("/api/v1"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, float64(3), doc["hostId"])
	assert.Equal(t, float64(4), doc["eventTypeId"])
	assert.Equal(t, "2026-08-01 12:00:00", doc["timestamp"])
	assert.Equal(t, "/api/v1/events/9", doc["href"])
}
