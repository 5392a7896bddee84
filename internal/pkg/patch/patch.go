// Package patch applies partial updates: request fields arrive as pointers
// where nil means "leave the stored value alone".
package patch

// Coalesce returns *ptr when ptr is set, otherwise the current value.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}
