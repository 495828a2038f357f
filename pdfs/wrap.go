package pdfs

import "strings"

// Measurer reports the rendered width of a text run in pt
type Measurer interface {
	TextWidth(s string, face Font, size float64) float64
}

// WrapText splits text into an ordered sequence of lines that each measure
// within maxWidth, breaking at word boundaries. A single word wider than
// maxWidth is placed alone on its own line unmodified - words are never split
// mid-word (callers that need guaranteed width use CutText instead).
// Empty input yields exactly one empty line, never zero lines, so callers can
// always reserve at least one line of vertical space
func WrapText(m Measurer, text string, maxWidth float64, face Font, size float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.TextWidth(candidate, face, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// CutText hard-cuts text into chunks of at most maxChars runes each.
// Character-budget fallback for callers preferring guaranteed-width output
// over the never-break-words policy of WrapText
func CutText(text string, maxChars int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}
	if maxChars <= 0 {
		return []string{text}
	}
	var lines []string
	for len(runes) > maxChars {
		lines = append(lines, string(runes[:maxChars]))
		runes = runes[maxChars:]
	}
	return append(lines, string(runes))
}

// TruncateToWidth returns the longest prefix of s measuring within maxWidth.
// Used for single cells whose row height is fixed and cannot grow
func TruncateToWidth(m Measurer, s string, maxWidth float64, face Font, size float64) string {
	if m.TextWidth(s, face, size) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if m.TextWidth(string(runes), face, size) <= maxWidth {
			break
		}
	}
	return string(runes)
}
