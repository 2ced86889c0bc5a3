package objutil

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Pluck returns the value found at the given dotted path within the given document, which may be any JSON-encodable
// value. Path segments address object fields and purely numeric segments address array indices, so the path
// "orders.0.total" plucks the total of the first order. The boolean indicates whether a non-null value existed at the
// path.
func Pluck(document any, path string) (any, bool) {
	data, err := jsoniter.Marshal(document)
	if err != nil {
		return nil, false
	}

	segments := make([]any, 0)

	for _, segment := range strings.Split(path, ".") {
		if idx, err := strconv.Atoi(segment); err == nil {
			segments = append(segments, idx)
			continue
		}

		segments = append(segments, segment)
	}

	result := jsoniter.Get(data, segments...)
	if result.ValueType() == jsoniter.InvalidValue || result.ValueType() == jsoniter.NilValue {
		return nil, false
	}

	return result.GetInterface(), true
}
