package invoices

import "strings"

// pathUnsafe - separators and reserved characters replaced in download names
var pathUnsafe = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "-",
	`"`, "-",
	"<", "-",
	">", "-",
	"|", "-",
)

// SuggestedFilename builds the download filename from the recipient name and
// the record's display date. An empty recipient falls back to "Invoice"
func SuggestedFilename(recipientName string, dateDisplay string) string {
	name := strings.TrimSpace(recipientName)
	if name == "" {
		name = "Invoice"
	}
	return pathUnsafe.Replace(name) + "_" + pathUnsafe.Replace(dateDisplay) + ".pdf"
}
