package optional

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state JSON value: absent from the payload, explicitly null,
// or set. Partial-update handlers need the distinction because an explicit
// null clears a column while an absent field leaves it alone.
type Field[T any] struct {
	set   bool
	value *T
}

// Of returns a Field carrying v.
func Of[T any](v T) Field[T] {
	return Field[T]{set: true, value: &v}
}

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value = &v
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.value)
}

// Present reports whether the field appeared in the payload at all.
func (f Field[T]) Present() bool { return f.set }

// Null reports whether the field was explicitly set to null.
func (f Field[T]) Null() bool { return f.set && f.value == nil }

// Get returns the value and whether a non-null value is present.
func (f Field[T]) Get() (T, bool) {
	if f.value == nil {
		var zero T
		return zero, false
	}
	return *f.value, true
}

// Ptr returns a pointer to a copy of the value, nil when absent or null.
func (f Field[T]) Ptr() *T {
	if f.value == nil {
		return nil
	}
	v := *f.value
	return &v
}
