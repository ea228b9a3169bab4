package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceTrimmed is Coalesce for text fields where a blank value means "keep".
func CoalesceTrimmed(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	v := strings.TrimSpace(*ptr)
	if v == "" {
		return fallback
	}
	return v
}

// Changed reports whether applying ptr would modify current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
