package snippet

import (
	"strings"

	"codereview/internal/types"
)

// Snippet represents pasted source code
type Snippet struct {
	Language types.Language
	Code     string
	Lines    []Line
}

// Line represents a single non-blank source line
type Line struct {
	Number int
	Text   string
}

// Parse splits code into numbered lines; the code itself is kept verbatim.
// Lines of any length are accepted.
func Parse(lang types.Language, data []byte) *Snippet {
	s := &Snippet{
		Language: lang,
		Code:     string(data),
		Lines:    []Line{},
	}

	for i, raw := range strings.Split(s.Code, "\n") {
		text := strings.TrimRight(raw, " \t\r")

		// Skip blank lines
		if strings.TrimSpace(text) == "" {
			continue
		}

		s.Lines = append(s.Lines, Line{
			Number: i + 1,
			Text:   text,
		})
	}

	return s
}

// Blank reports whether the snippet holds only whitespace
func (s *Snippet) Blank() bool {
	return strings.TrimSpace(s.Code) == ""
}
