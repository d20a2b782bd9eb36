// Package dict reads proxy settings out of loosely typed dictionaries such as
// the SystemConfiguration proxy dictionary, a URLSession connection proxy
// dictionary, or a decoded YAML snapshot.
package dict

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Dictionary is a proxy settings dictionary keyed by the platform's own key
// names (HTTPEnable, HTTPProxy, HTTPPort, ...). Values keep whatever dynamic
// type the platform produced.
type Dictionary map[string]any

// Bool reports the value of a flag key. Present is false when the key is
// missing. Only true, a numeric 1, "1" and "true" count as set.
func (d Dictionary) Bool(key string) (value bool, present bool) {
	v, ok := d[key]
	if !ok || v == nil {
		return false, false
	}

	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		s := strings.TrimSpace(b)
		return s == "1" || strings.EqualFold(s, "true"), true
	}

	n, isNum := number(v)
	return isNum && n == 1, true
}

// String returns a string value. Non-string values count as missing.
func (d Dictionary) String(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns an integer value. Numbers and decimal strings are accepted;
// a present value that cannot be read as an integer yields 0.
func (d Dictionary) Int(key string) (int, bool) {
	v, ok := d[key]
	if !ok || v == nil {
		return 0, false
	}

	if s, isStr := v.(string); isStr {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, true
		}
		return n, true
	}

	n, isNum := number(v)
	if !isNum {
		return 0, true
	}
	return n, true
}

// Keys returns the dictionary keys in sorted order.
func (d Dictionary) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy, or nil for a nil dictionary.
func (d Dictionary) Clone() Dictionary {
	if d == nil {
		return nil
	}
	out := make(Dictionary, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func number(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float32:
		return integral(float64(n))
	case float64:
		return integral(n)
	}
	return 0, false
}

func integral(f float64) (int, bool) {
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
