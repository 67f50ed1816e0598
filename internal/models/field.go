// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldNull
	fieldValue
)

// Field is a tri-state value used at JSON boundaries where "absent" and "null"
// must be told apart from a concrete value.
//
// The zero Field is unset. Decoding a JSON null yields a null Field; any other
// JSON value yields a set Field. Inside the application a Field is collapsed
// with Ptr, where both unset and null become nil.
type Field[T any] struct {
	state fieldState
	value T
}

// Unset returns a Field that carries no information.
func Unset[T any]() Field[T] {
	return Field[T]{}
}

// Null returns a Field that was explicitly provided as null.
func Null[T any]() Field[T] {
	return Field[T]{state: fieldNull}
}

// Value returns a Field holding v.
func Value[T any](v T) Field[T] {
	return Field[T]{state: fieldValue, value: v}
}

// IsUnset reports whether the field was absent.
func (f Field[T]) IsUnset() bool { return f.state == fieldUnset }

// IsNull reports whether the field was explicitly null.
func (f Field[T]) IsNull() bool { return f.state == fieldNull }

// IsSet reports whether the field holds a value.
func (f Field[T]) IsSet() bool { return f.state == fieldValue }

// Get returns the value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == fieldValue
}

// Ptr collapses the field to a plain optional.
func (f Field[T]) Ptr() *T {
	if f.state != fieldValue {
		return nil
	}
	v := f.value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.state, f.value = fieldNull, zero
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.state, f.value = fieldValue, v
	return nil
}

// MarshalJSON implements json.Marshaler. Unset and null fields both encode as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != fieldValue {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
