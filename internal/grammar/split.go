package grammar

import "strings"

// Split splits s around the leftmost byte that belongs to delims.
//
// The trim amounts select whether the matched delimiter is kept on each side:
// trimLeft 1 drops it from before, trimLeft 0 keeps it as the last byte of before;
// trimRight 1 drops it from after, trimRight 0 keeps it as the first byte of after.
// If no delimiter is found, ok is false and both segments are empty.
func Split(s, delims string, trimLeft, trimRight int) (before, after string, ok bool) {
	i := strings.IndexAny(s, delims)
	if i < 0 {
		return "", "", false
	}
	return s[:i+1-clampTrim(trimLeft)], s[i+clampTrim(trimRight):], true
}

// SplitOr works like [Split] but returns def and an empty after segment when no delimiter is found.
func SplitOr(s, delims string, trimLeft, trimRight int, def string) (before, after string) {
	if before, after, ok := Split(s, delims, trimLeft, trimRight); ok {
		return before, after
	}
	return def, ""
}

func clampTrim(n int) int {
	if n <= 0 {
		return 0
	}
	return 1
}
