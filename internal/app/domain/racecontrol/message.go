package racecontrol

import (
	"strings"
	"time"
)

// Message is one race control notice as delivered by a data source.
// Immutable once received.
type Message struct {
	Time     time.Time
	Text     string
	Category string
	Flag     string
	Scope    string
}

// Key is the dedup identity. All five fields participate: two distinct
// notices can share text (repeated "TRACK CLEAR"), and two notices can share
// a timestamp but differ in flag, so neither text nor timestamp alone is
// safe. Messages without a timestamp degrade to the field tuple.
func (m Message) Key() string {
	ts := ""
	if !m.Time.IsZero() {
		ts = m.Time.UTC().Format(time.RFC3339Nano)
	}
	return strings.Join([]string{ts, m.Category, m.Flag, m.Scope, m.Text}, "|")
}
