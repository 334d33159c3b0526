package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateName shortens a file name by removing characters from the middle,
// keeping the extension when there is room for it.
func truncateName(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	ellipsis := []rune("…")
	if limit <= 3 {
		return string(runes[:limit])
	}

	ext := ""
	if dot := strings.LastIndex(value, "."); dot > 0 {
		if e := []rune(value[dot:]); len(e) < 10 && len(e) < limit/2 {
			ext = value[dot:]
			runes = []rune(value[:dot])
		}
	}

	keep := limit - len(ellipsis) - len([]rune(ext))
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:]) + ext
}
