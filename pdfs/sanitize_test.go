package pdfs

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii kept", "Invoice #42 (net 30)", "Invoice #42 (net 30)"},
		{"bullets become dashes", "• first\n• second", "- first - second"},
		{"smart punctuation", "“Fancy” – it’s done…", `"Fancy" - it's done...`},
		{"crlf dropped, tabs flattened", "a\r\nb\tc", "a b c"},
		{"latin-1 kept", "Müller's Café, 25€", "Müller's Café, 25€"},
		{"unmapped runes dropped", "前払い ¥500", " ¥500"},
		{"trademark", "Widget™", "Widget(TM)"},
		{"no-break space", "a b", "a b"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in)
			if got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if again := Sanitize(got); again != got {
				t.Errorf("not idempotent: Sanitize(%q) = %q", got, again)
			}
		})
	}
}

// Sanitize must accept any input and its output must be a fixed point
func TestSanitizeTotalAndIdempotent(t *testing.T) {
	var b strings.Builder
	for r := rune(0); r <= 0x20ac; r++ {
		b.WriteRune(r)
	}
	out := Sanitize(b.String())
	if again := Sanitize(out); again != out {
		t.Fatal("Sanitize output is not a fixed point over the full rune range")
	}
}

func TestSanitizeStrict(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keeps alphanumerics and spaces", "Payment due in 30 days", "Payment due in 30 days"},
		{"keeps allowed punctuation", `"ok": (50%) - $9 @x/y;!?`, `"ok": (50%) - $9 @x/y;!?`},
		{"keeps currency signs", "€100 / £80 / ¥900", "€100 / £80 / ¥900"},
		{"drops latin-1 letters", "Café", "Caf"},
		{"drops section sign", "§ 5 Abs. 2", " 5 Abs. 2"},
		{"runs the base tier first", "it’s\t“done”", `it's "done"`},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeStrict(tc.in)
			if got != tc.want {
				t.Errorf("SanitizeStrict(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if again := SanitizeStrict(got); again != got {
				t.Errorf("not idempotent: SanitizeStrict(%q) = %q", got, again)
			}
		})
	}
}
