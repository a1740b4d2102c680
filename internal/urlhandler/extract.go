package urlhandler

import (
	"strings"
)

// ExtractAddresses splits pasted text into candidate addresses: one per line,
// trimmed, keeping only lines that contain a dot. Order is preserved.
func ExtractAddresses(text string) []string {
	var addresses []string
	for _, line := range strings.Split(text, "\n") {
		if addr, ok := keepAddress(line); ok {
			addresses = append(addresses, addr)
		}
	}
	return addresses
}

// ExtractFirstColumn is ExtractAddresses for comma-delimited tables: each
// line contributes the field before its first comma.
func ExtractFirstColumn(text string) []string {
	var addresses []string
	for _, line := range strings.Split(text, "\n") {
		field, _, _ := strings.Cut(line, ",")
		field = strings.Trim(strings.TrimSpace(field), `"`)
		if addr, ok := keepAddress(field); ok {
			addresses = append(addresses, addr)
		}
	}
	return addresses
}

// CanonicalizeAll applies Canonicalize to every address.
func CanonicalizeAll(addresses []string) []string {
	out := make([]string, len(addresses))
	for i, a := range addresses {
		out[i] = Canonicalize(a)
	}
	return out
}

func keepAddress(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || !strings.Contains(trimmed, ".") {
		return "", false
	}
	return trimmed, true
}
