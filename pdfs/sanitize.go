package pdfs

import "strings"

// glyphSubs - typographic runes the embedded faces either lack or that render
// badly, each replaced by an ASCII approximation. Output must itself survive
// Sanitize unchanged so the mapping stays idempotent
var glyphSubs = map[rune]string{
	'•': "- ", // bullet
	'●': "- ", // black circle, used as a bullet
	'·': "-",  // middle dot
	'‐': "-",  // hyphen
	'–': "-",  // en dash
	'—': "-",  // em dash
	'―': "-",  // horizontal bar
	'‘': "'",
	'’': "'",
	'‚': "'",
	'“': `"`,
	'”': `"`,
	'„': `"`,
	'…': "...",
	'‹': "<",
	'›': ">",
	'™': "(TM)",
	' ': " ", // no-break space
}

// Sanitize maps raw input to the subset the embedded cp1252 core fonts can
// render. Total and idempotent: Sanitize(Sanitize(x)) == Sanitize(x).
//   - carriage returns dropped
//   - newlines and tabs flattened to single spaces (draw calls are single-line)
//   - known typographic runes substituted with ASCII approximations
//   - printable ASCII, the euro sign and Latin-1 0xA1~0xFF kept
//   - everything else dropped
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if sub, ok := glyphSubs[r]; ok {
			b.WriteString(sub)
			continue
		}
		switch {
		case r == '\r':
			// dropped
		case r == '\n' || r == '\t':
			b.WriteByte(' ')
		case r >= 0x20 && r <= 0x7e:
			b.WriteRune(r)
		case r == '€': // euro, cp1252 0x80
			b.WriteRune(r)
		case r >= 0xa1 && r <= 0xff:
			b.WriteRune(r)
		default:
			// no defined substitute. dropped
		}
	}
	return b.String()
}

// strictKeep - punctuation allowed by the aggressive fallback tier
const strictKeep = ".,:;!?()%$@'\"/- "

// SanitizeStrict is the aggressive fallback for a run that still failed to
// render after Sanitize: alphanumerics, spaces, a small punctuation set and
// the common currency signs only. Total and idempotent
func SanitizeStrict(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range Sanitize(raw) {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case strings.ContainsRune(strictKeep, r):
			b.WriteRune(r)
		case r == '€' || r == '£' || r == '¥':
			b.WriteRune(r)
		}
	}
	return b.String()
}
