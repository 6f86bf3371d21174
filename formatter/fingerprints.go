package formatter

import (
	"strings"

	tt "github.com/gnolang/sfxtree/internal/types"
)

const noFingerprint = "no fingerprint"

// Fingerprints lists the fingerprints of every input as a header line
// ">name" followed by one "i: fingerprint" line per fingerprint.
func Fingerprints(report *tt.Report) string {
	var builder strings.Builder
	for _, fp := range report.Fingerprints {
		builder.WriteString(headerStyle.Sprintf(">%s", fp.Input.Name))
		builder.WriteString("\n")
		if len(fp.Prints) == 0 {
			builder.WriteString(emptyStyle.Sprint(noFingerprint))
			builder.WriteString("\n")
			continue
		}
		for i, p := range fp.Prints {
			builder.WriteString(indexStyle.Sprintf("%d: ", i))
			builder.WriteString(printStyle.Sprint(p))
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
