package bluesky

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Facet marks a hashtag span inside a post. Offsets address BYTES of the
// UTF-8 text, not runes: the protocol indexes the encoded form, and emoji in
// front of a tag shift its byte position by more than its rune position.
type Facet struct {
	ByteStart int
	ByteEnd   int
	Tag       string
}

// hashtagFacets scans text for whitespace-delimited tokens starting with '#'
// and returns their byte spans.
func hashtagFacets(text string) []Facet {
	var facets []Facet

	offset := 0
	for offset < len(text) {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if unicode.IsSpace(r) {
			offset += size
			continue
		}

		start := offset
		for offset < len(text) {
			r, size := utf8.DecodeRuneInString(text[offset:])
			if unicode.IsSpace(r) {
				break
			}
			offset += size
		}

		token := text[start:offset]
		if len(token) > 1 && strings.HasPrefix(token, "#") {
			facets = append(facets, Facet{
				ByteStart: start,
				ByteEnd:   offset,
				Tag:       token[1:],
			})
		}
	}
	return facets
}

func facetsJSON(text string) []facetJSON {
	facets := hashtagFacets(text)
	if len(facets) == 0 {
		return nil
	}

	out := make([]facetJSON, 0, len(facets))
	for _, f := range facets {
		out = append(out, facetJSON{
			Index: facetIndex{ByteStart: f.ByteStart, ByteEnd: f.ByteEnd},
			Features: []facetFeature{
				{Type: "app.bsky.richtext.facet#tag", Tag: f.Tag},
			},
		})
	}
	return out
}
