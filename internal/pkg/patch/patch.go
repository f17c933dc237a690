package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceString also treats a blank string as absent.
func CoalesceString(ptr *string, fallback string) string {
	if v := strings.TrimSpace(Coalesce(ptr, "")); v != "" {
		return v
	}
	return fallback
}
