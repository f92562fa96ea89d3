package operation

import (
	"strings"
	"unicode"
)

// CommandName converts an operation name to its verb-noun command name,
// e.g. "ResetPersonalPIN" -> "reset-personal-pin".
func CommandName(operation string) string {
	return kebab(operation)
}

// FlagName converts a request field name to its flag name,
// e.g. "OutboundEventsHTTPSEndpoint" -> "outbound-events-https-endpoint".
func FlagName(field string) string {
	return kebab(field)
}

// kebab splits on lower->upper and acronym->word boundaries.
func kebab(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte('-')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
