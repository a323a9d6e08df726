package livetiming

import (
	"encoding/json"
	"pitwall/internal/app/domain/racecontrol"
	"sort"
	"strconv"
	"time"
)

type hubRequest struct {
	Hub       string `json:"H"`
	Method    string `json:"M"`
	Arguments []any  `json:"A"`
	ID        int    `json:"I"`
}

type feedEnvelope struct {
	Reply   *subscribeReply `json:"R"`
	Updates []hubInvocation `json:"M"`
}

type subscribeReply struct {
	RaceControl *messageList `json:"RaceControlMessages"`
}

type hubInvocation struct {
	Hub       string            `json:"H"`
	Method    string            `json:"M"`
	Arguments []json.RawMessage `json:"A"`
}

type messageList struct {
	Messages entrySet `json:"Messages"`
}

// entrySet accepts both shapes the hub emits: the subscribe reply carries a
// JSON array, feed updates carry an object keyed by list index.
type entrySet []feedEntry

func (e *entrySet) UnmarshalJSON(data []byte) error {
	var list []feedEntry
	if err := json.Unmarshal(data, &list); err == nil {
		*e = list
		return nil
	}

	var byIndex map[string]feedEntry
	if err := json.Unmarshal(data, &byIndex); err != nil {
		return err
	}

	keys := make([]string, 0, len(byIndex))
	for k := range byIndex {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr != nil || berr != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	entries := make([]feedEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, byIndex[k])
	}
	*e = entries
	return nil
}

type feedEntry struct {
	Utc      string `json:"Utc"`
	Category string `json:"Category"`
	Flag     string `json:"Flag"`
	Scope    string `json:"Scope"`
	Message  string `json:"Message"`
}

var utcLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (e feedEntry) toMessage() racecontrol.Message {
	var ts time.Time
	for _, layout := range utcLayouts {
		if parsed, err := time.Parse(layout, e.Utc); err == nil {
			ts = parsed.UTC()
			break
		}
	}

	return racecontrol.Message{
		Time:     ts,
		Text:     e.Message,
		Category: e.Category,
		Flag:     e.Flag,
		Scope:    e.Scope,
	}
}

// extractMessages pulls race control entries out of one websocket frame.
// Frames for other streams, keepalives and malformed payloads yield nothing.
func extractMessages(raw []byte) []racecontrol.Message {
	var env feedEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}

	var out []racecontrol.Message
	if env.Reply != nil && env.Reply.RaceControl != nil {
		for _, entry := range env.Reply.RaceControl.Messages {
			out = append(out, entry.toMessage())
		}
	}

	for _, inv := range env.Updates {
		if inv.Method != "feed" || len(inv.Arguments) < 2 {
			continue
		}

		var stream string
		if err := json.Unmarshal(inv.Arguments[0], &stream); err != nil || stream != "RaceControlMessages" {
			continue
		}

		var list messageList
		if err := json.Unmarshal(inv.Arguments[1], &list); err != nil {
			continue
		}
		for _, entry := range list.Messages {
			out = append(out, entry.toMessage())
		}
	}
	return out
}
