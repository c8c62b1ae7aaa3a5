// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"encoding/hex"
	"encoding/json"
	"unicode/utf8"
)

// JSONKey is the JSON form of a key. Keys that are not valid UTF-8
// are rendered in Hex, Key is then empty.
type JSONKey struct {
	Key string `json:"key,omitempty"`
	Hex string `json:"hex,omitempty"`
}

// JSONEntry is the JSON form of a table entry.
type JSONEntry[V any] struct {
	JSONKey
	Value V `json:"value"`
}

func jsonKey(key string) JSONKey {
	if utf8.ValidString(key) {
		return JSONKey{Key: key}
	}
	return JSONKey{Hex: hex.EncodeToString([]byte(key))}
}

// MarshalJSON dumps the keys in ascending order, the order matters.
// The empty key is rendered as {}.
func (x *Index) MarshalJSON() ([]byte, error) {
	result := struct {
		Nested string    `json:"nested"`
		Keys   []JSONKey `json:"keys"`
	}{
		Nested: x.policy.String(),
		Keys:   make([]JSONKey, 0, len(x.keys)),
	}

	for _, key := range x.keys {
		result.Keys = append(result.Keys, jsonKey(key))
	}

	return json.Marshal(result)
}

// MarshalJSON dumps the entries in ascending key order, see
// [Index.MarshalJSON] for the rendering of the keys.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	result := struct {
		Nested  string         `json:"nested"`
		Entries []JSONEntry[V] `json:"entries"`
	}{
		Nested:  t.policy.String(),
		Entries: t.DumpList(),
	}

	return json.Marshal(result)
}

// DumpList returns the entries in their JSON form.
func (t *Table[V]) DumpList() []JSONEntry[V] {
	elements := make([]JSONEntry[V], 0, len(t.keys))
	for i, key := range t.keys {
		elements = append(elements, JSONEntry[V]{
			JSONKey: jsonKey(key),
			Value:   t.values[i],
		})
	}
	return elements
}
