package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field that separates "omitted" from "explicitly null".
//
//	{}            -> Set=false
//	{"f": null}   -> Set=true, Null=true
//	{"f": "x"}    -> Set=true, Value="x"
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns an Optional that explicitly clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only called by encoding/json when the key is present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns nil for omitted or null, otherwise a pointer to the value.
func (o Optional[T]) Ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// SQLValue returns the value to bind: nil for an explicit null.
func (o Optional[T]) SQLValue() any {
	if o.Null {
		return nil
	}
	return o.Value
}
