package format

import (
	"fmt"
	"pitwall/internal/app/domain/racecontrol"
	"strings"
	"unicode/utf8"
)

// Tables is the injectable emoji configuration. Both data sources spell
// category and flag labels differently, so nothing is hard-coded here: the
// maps come straight from config.
type Tables struct {
	Categories      map[string]string
	Flags           map[string]string
	DefaultCategory string
}

type Formatter struct {
	tables   Tables
	hashtags string
	limit    int
}

func New(tables Tables, hashtags string, limit int) *Formatter {
	return &Formatter{
		tables:   tables,
		hashtags: hashtags,
		limit:    limit,
	}
}

// Render produces the post chunks for one message:
//
//	<flag emoji> <category emoji> <header>
//	<message text>
//	Scope: <scope>        (only when set)
//
//	<hashtags>             (final chunk only)
//
// Chunks after the first are posted as replies to the previous one.
func (f *Formatter) Render(msg racecontrol.Message) []string {
	header := "F1 Update:"
	if !msg.Time.IsZero() {
		header = fmt.Sprintf("F1 Race Control (%s UTC):", msg.Time.UTC().Format("15:04:05"))
	}

	catEmoji, ok := f.tables.Categories[msg.Category]
	if !ok {
		catEmoji = f.tables.DefaultCategory
	}
	flagEmoji := f.tables.Flags[msg.Flag]

	var sb strings.Builder
	for _, part := range []string{flagEmoji, catEmoji, header} {
		if part == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(part)
	}
	sb.WriteString("\n")
	sb.WriteString(msg.Text)
	if msg.Scope != "" {
		sb.WriteString("\nScope: ")
		sb.WriteString(msg.Scope)
	}
	base := sb.String()

	suffix := ""
	if f.hashtags != "" && !strings.Contains(base, f.hashtags) {
		suffix = "\n\n" + f.hashtags
	}

	if utf8.RuneCountInString(base+suffix) <= f.limit {
		return []string{base + suffix}
	}

	// Reserve room for the suffix so the final chunk stays within the limit
	// after the hashtags are appended.
	parts := splitText(base, f.limit-utf8.RuneCountInString(suffix))
	parts[len(parts)-1] += suffix
	return parts
}
