// Package jsonutil wraps standard JSON serialization with an
// exemplar-driven deserializer: a serialized blob can be turned back into a
// fresh instance of a prototype's concrete type.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ToJSON serializes v with the standard marshaler. Arrays render as
// bracketed comma lists and objects as key/value maps; callers must not
// rely on any particular key order.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize value: %w", err)
	}
	return string(data), nil
}

// FromPrototype constructs a new instance of proto's concrete type and
// fills it from the serialized data. The returned value has the same type
// as proto (not a pointer to it). Field values round-trip as long as the
// prototype type serializes its own fields, matching the contract of
// ToJSON.
func FromPrototype(proto any, data string) (any, error) {
	if proto == nil {
		return nil, fmt.Errorf("prototype must not be nil")
	}

	t := reflect.TypeOf(proto)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := reflect.New(t)
	if err := json.Unmarshal([]byte(data), out.Interface()); err != nil {
		return nil, fmt.Errorf("failed to reconstruct %s: %w", t, err)
	}
	return out.Elem().Interface(), nil
}
