// Package objutil provides stateless helpers for stripping fields from, and plucking values out of, objects.
package objutil

import "golang.org/x/exp/maps"

// Omit returns a copy of the given map without the given keys.
//
// NOTE: The input map is never mutated, and a <nil> input yields a <nil> output.
func Omit[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	stripped := maps.Clone(m)

	for _, key := range keys {
		delete(stripped, key)
	}

	return stripped
}

// Pick returns a copy of the given map containing only the given keys; keys absent from the input are ignored.
func Pick[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	picked := make(M, len(keys))

	for _, key := range keys {
		if value, ok := m[key]; ok {
			picked[key] = value
		}
	}

	return picked
}
