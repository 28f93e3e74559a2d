package api

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional holds a value that upstream may or may not have sent.
// The zero value is absent. JSON null decodes as absent as well.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// ValueOr returns the value if present and def otherwise.
func (o Optional[T]) ValueOr(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Optional[T]{}
		return nil
	}

	var v T

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}
