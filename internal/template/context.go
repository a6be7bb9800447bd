package template

import "strings"

// ParseContext parses a flat key=value,key=value context string into a
// map. Pairs split on the first '='; pairs without one are silently
// skipped. Keys and values are trimmed of surrounding whitespace.
func ParseContext(s string) map[string]string {
	ctx := make(map[string]string)
	if s == "" {
		return ctx
	}
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		ctx[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return ctx
}
