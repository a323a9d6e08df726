package livetiming

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMessages_SubscribeReplySnapshot(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"R":{"RaceControlMessages":{"Messages":[
		{"Utc":"2024-05-26T13:03:29","Category":"Flag","Flag":"YELLOW","Scope":"Sector","Message":"YELLOW IN TRACK SECTOR 7"},
		{"Utc":"2024-05-26T13:05:02.4249316Z","Category":"SafetyCar","Message":"SAFETY CAR DEPLOYED"}
	]}},"I":"1"}`)

	messages := extractMessages(raw)
	require.Len(t, messages, 2)

	assert.Equal(t, "YELLOW IN TRACK SECTOR 7", messages[0].Text)
	assert.Equal(t, "YELLOW", messages[0].Flag)
	assert.Equal(t, "Sector", messages[0].Scope)
	assert.Equal(t, time.Date(2024, 5, 26, 13, 3, 29, 0, time.UTC), messages[0].Time)

	assert.Equal(t, "SafetyCar", messages[1].Category)
	assert.False(t, messages[1].Time.IsZero())
}

func TestExtractMessages_FeedUpdateByIndex(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"M":[{"H":"Streaming","M":"feed","A":[
		"RaceControlMessages",
		{"Messages":{"12":{"Utc":"2024-05-26T14:10:11","Category":"Other","Message":"TRACK CLEAR"},
		             "11":{"Utc":"2024-05-26T14:09:30","Category":"Flag","Flag":"GREEN","Message":"GREEN LIGHT"}}},
		"2024-05-26T14:10:11.001Z"
	]}]}`)

	messages := extractMessages(raw)
	require.Len(t, messages, 2)

	// entries come back in index order
	assert.Equal(t, "GREEN LIGHT", messages[0].Text)
	assert.Equal(t, "TRACK CLEAR", messages[1].Text)
}

func TestExtractMessages_IgnoresOtherTraffic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"keepalive", `{}`},
		{"other stream", `{"M":[{"H":"Streaming","M":"feed","A":["WeatherData",{"AirTemp":"23.1"},"ts"]}]}`},
		{"non-feed invocation", `{"M":[{"H":"Streaming","M":"ping","A":[]}]}`},
		{"malformed json", `{"M":[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, extractMessages([]byte(tt.raw)))
		})
	}
}
