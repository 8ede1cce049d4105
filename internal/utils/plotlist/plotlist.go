// Package plotlist handles the comma-joined plot number lists stored on accounts.
package plotlist

import "strings"

// Split breaks a comma-joined list into trimmed, non-empty tokens.
// Duplicates are kept.
func Split(list string) []string {
	if strings.TrimSpace(list) == "" {
		return []string{}
	}
	parts := strings.Split(list, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Join is the inverse of Split for already-clean tokens.
func Join(tokens []string) string {
	return strings.Join(tokens, ",")
}
