// Package patch has helpers for optional fields of partial updates, where a
// nil pointer means "leave as is".
package patch

func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Assign copies *src into *dst when src is set and reports whether it did.
func Assign[T any](dst *T, src *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}

func Ptr[T any](v T) *T {
	return &v
}
