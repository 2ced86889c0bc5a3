package pq

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator defines a total ordering over T, returning a negative value when 'a' orders before 'b', zero when the
// two order equally, and a positive value when 'a' orders after 'b'.
//
// NOTE: The error return exists for orderings which may only detect failure once two concrete values are compared,
// for example the default ordering; comparators which cannot fail should return a <nil> error.
type Comparator[T any] func(a, b T) (int, error)

// Natural returns a comparator which orders values using the built-in '<' operator; it never fails.
func Natural[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) (int, error) {
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		}

		return 0, nil
	}
}

// Ordering adapts a plain compare function into a 'Comparator' which never fails.
func Ordering[T any](fn func(a, b T) int) Comparator[T] {
	return func(a, b T) (int, error) {
		return fn(a, b), nil
	}
}

// UnorderableError is returned when the default ordering is asked to compare a pair of values it does not support.
type UnorderableError struct {
	a, b any
}

func (e UnorderableError) Error() string {
	return fmt.Sprintf("no comparator supplied, and values of types %T and %T are not supported by the default "+
		"ordering", e.a, e.b)
}

// defaultComparator returns the ordering installed when no comparator is supplied: numeric values are ordered by
// magnitude and strings by the Unicode collation order. Any other pairing fails with an 'UnorderableError' at the
// point of comparison, meaning unsupported values may be enqueued freely and only fail once they must actually be
// compared against one another.
func defaultComparator[T any]() Comparator[T] {
	collator := collate.New(language.Und)

	return func(a, b T) (int, error) {
		x, okX := toFloat(a)
		y, okY := toFloat(b)

		if okX && okY {
			switch {
			case x < y:
				return -1, nil
			case x > y:
				return 1, nil
			}

			return 0, nil
		}

		s, okS := any(a).(string)
		t, okT := any(b).(string)

		if okS && okT {
			return collator.CompareString(s, t), nil
		}

		return 0, UnorderableError{a: a, b: b}
	}
}

// toFloat converts any of the built-in numeric kinds into a float64 suitable for ordering by magnitude.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}
