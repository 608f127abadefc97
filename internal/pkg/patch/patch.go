// Package patch resolves partial updates where nil pointer fields mean
// "leave unchanged".
package patch

// Value returns *field when the update carried it, else current.
func Value[T any](field *T, current T) T {
	if field == nil {
		return current
	}
	return *field
}

// Touched reports whether the update carried any of fields.
func Touched[T any](fields ...*T) bool {
	for _, f := range fields {
		if f != nil {
			return true
		}
	}
	return false
}
