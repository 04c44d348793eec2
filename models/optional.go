// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional carries a value that a caller may or may not have supplied.
//
// The zero value means "absent". Set distinguishes an absent field from a
// field explicitly sent with the zero value of T (for example an empty
// string).
type Optional[T comparable] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// None returns an absent Optional.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// NonZero reports whether the value was supplied and differs from the zero
// value of T.
func (o Optional[T]) NonZero() bool {
	var zero T
	return o.Set && o.Value != zero
}

// UnmarshalJSON marks the field as present. A JSON null is treated as absent.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*o = Some(v)
	return nil
}

// MarshalJSON writes the value, or null when absent.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
