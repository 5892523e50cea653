package normalize

import "strings"

// ParseList splits a comma-separated list such as "www., m., login.".
// Whitespace around each piece is trimmed, since it only separates the
// pieces; empty pieces and repeats are dropped.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	pieces := strings.Split(s, ",")
	for i, p := range pieces {
		pieces[i] = strings.TrimSpace(p)
	}
	return CleanList(pieces)
}

// CleanList drops empty entries and repeats, keeping the first position
// of each value. Entries are kept verbatim, so a suffix such as " - Work"
// keeps its leading space.
func CleanList(items []string) []string {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
