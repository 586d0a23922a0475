// Package extjson normalizes MongoDB Extended JSON wrapper values into native
// Go values. Exports produced by mongoexport wrap non-native types in tagged
// single-key objects ({"$date": ...}, {"$numberLong": "..."}, {"$oid": "..."})
// so they survive a JSON round trip; this package unwraps them recursively so
// documents can be written back through the bson encoder with their original
// types intact.
package extjson

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timestamp formats accepted inside a $date wrapper, in order of likelihood.
var supportedDateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize recursively converts Extended JSON wrapper objects in v into
// native values. Maps and slices are rebuilt; scalars pass through unchanged.
// A wrapper that cannot be decoded is left as-is rather than dropped, so a
// malformed value surfaces in the seeded document instead of vanishing.
func Normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		if native, ok := unwrap(val); ok {
			return native
		}
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = Normalize(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = Normalize(inner)
		}
		return out
	default:
		return v
	}
}

// NormalizeDocument normalizes a decoded JSON document in place-compatible
// fashion and returns the rebuilt map.
func NormalizeDocument(doc map[string]interface{}) map[string]interface{} {
	normalized, _ := Normalize(doc).(map[string]interface{})
	return normalized
}

// unwrap converts a single-key Extended JSON wrapper object. Returns false
// when m is not a recognized wrapper.
func unwrap(m map[string]interface{}) (interface{}, bool) {
	if len(m) != 1 {
		return nil, false
	}

	if raw, ok := m["$date"]; ok {
		if t, err := parseDate(raw); err == nil {
			return t, true
		}
		return nil, false
	}
	if raw, ok := m["$numberLong"]; ok {
		if n, err := parseInt(raw); err == nil {
			return n, true
		}
		return nil, false
	}
	if raw, ok := m["$numberInt"]; ok {
		n, err := parseInt(raw)
		if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
			return nil, false
		}
		return n, true
	}
	if raw, ok := m["$numberDouble"]; ok {
		if f, err := parseDouble(raw); err == nil {
			return f, true
		}
		return nil, false
	}
	if raw, ok := m["$oid"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, false
		}
		oid, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, false
		}
		return oid, true
	}

	return nil, false
}

// parseDate handles both wrapper shapes:
//
//	{"$date": "2024-10-04T19:48:57.118Z"}
//	{"$date": {"$numberLong": "1728071337118"}}   (epoch milliseconds)
func parseDate(raw interface{}) (time.Time, error) {
	switch d := raw.(type) {
	case string:
		for _, format := range supportedDateFormats {
			if t, err := time.Parse(format, d); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("extjson: cannot parse %q as date", d)
	case map[string]interface{}:
		inner, ok := d["$numberLong"]
		if !ok {
			return time.Time{}, fmt.Errorf("extjson: unsupported $date wrapper %v", d)
		}
		ms, err := parseInt(inner)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms).UTC(), nil
	case float64:
		// Relaxed form: numeric epoch milliseconds.
		return time.UnixMilli(int64(d)).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("extjson: unsupported $date value of type %T", raw)
	}
}

func parseInt(raw interface{}) (int64, error) {
	switch n := raw.(type) {
	case string:
		return strconv.ParseInt(n, 10, 64)
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("extjson: unsupported numeric value of type %T", raw)
	}
}

func parseDouble(raw interface{}) (float64, error) {
	switch f := raw.(type) {
	case string:
		switch f {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
		return strconv.ParseFloat(f, 64)
	case float64:
		return f, nil
	default:
		return 0, fmt.Errorf("extjson: unsupported double value of type %T", raw)
	}
}
