package format

import (
	"strings"
	"unicode"
)

const ellipsis = "..."

// splitText breaks text into chunks of at most limit runes. Non-final chunks
// end with an ellipsis, continuation chunks start with one. Breaks happen at
// the last whitespace that fits; a chunk without whitespace is cut hard,
// which keeps the loop making progress. Operating on runes means a cut can
// never land inside a multi-byte character.
func splitText(text string, limit int) []string {
	markerLen := len([]rune(ellipsis))
	if limit <= 2*markerLen {
		limit = 2*markerLen + 1
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var parts []string
	prefix := ""

	for {
		if len([]rune(prefix))+len(runes) <= limit {
			parts = append(parts, prefix+string(runes))
			return parts
		}

		budget := limit - markerLen - len([]rune(prefix))
		cut := -1
		for i := budget; i > 0; i-- {
			if unicode.IsSpace(runes[i-1]) {
				cut = i - 1
				break
			}
		}
		if cut <= 0 {
			cut = budget
		}

		chunk := strings.TrimRight(string(runes[:cut]), " \t\n")
		parts = append(parts, prefix+chunk+ellipsis)

		runes = runes[cut:]
		for len(runes) > 0 && unicode.IsSpace(runes[0]) {
			runes = runes[1:]
		}
		prefix = ellipsis
	}
}
