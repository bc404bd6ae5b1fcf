package services

import (
	"strings"
	"unicode"
)

// Normalize collapses the extracted fragments into a single canonical string:
// fragments joined by newline, whitespace runs spanning a line break become
// one newline, every other whitespace run becomes one ASCII space, and the
// result is trimmed. Pure and idempotent.
func Normalize(fragments ExtractedText) string {
	text := strings.Join(fragments, "\n")

	var (
		out        strings.Builder
		inRun      bool
		runNewline bool
	)
	out.Grow(len(text))

	flush := func() {
		if !inRun {
			return
		}
		if out.Len() > 0 {
			if runNewline {
				out.WriteByte('\n')
			} else {
				out.WriteByte(' ')
			}
		}
		inRun = false
		runNewline = false
	}

	for _, r := range text {
		if unicode.IsSpace(r) {
			inRun = true
			if r == '\n' || r == '\r' {
				runNewline = true
			}
			continue
		}

		flush()
		out.WriteRune(r)
	}

	return out.String()
}
