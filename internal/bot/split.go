package bot

import (
	"strings"
	"unicode/utf16"
)

// maxMessageLength is Telegram's message limit in UTF-16 code units.
const maxMessageLength = 4096

// splitMessage breaks text into chunks of at most limit UTF-16 units,
// preferring line boundaries so Markdown entities are never cut. A single
// line longer than limit is split wherever it has to be.
func splitMessage(text string, limit int) []string {
	if utf16Len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	size := 0
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
			current.Reset()
			size = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		n := utf16Len(line)
		if size+n > limit {
			flush()
		}
		for n > limit {
			head, rest := cutUTF16(line, limit)
			chunks = append(chunks, head)
			line, n = rest, utf16Len(rest)
		}
		current.WriteString(line)
		size += n
	}
	flush()
	return chunks
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// cutUTF16 splits s after the last rune that fits within limit units.
func cutUTF16(s string, limit int) (string, string) {
	size := 0
	for i, r := range s {
		units := runeUnits(r)
		if size+units > limit {
			return s[:i], s[i:]
		}
		size += units
	}
	return s, ""
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
