// Package probe reads loosely shaped JSON payloads whose field names vary
// between producers. Lookups take an ordered list of candidate keys and the
// first non-empty match wins.
package probe

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Object is one loosely shaped JSON object. Numbers are kept as json.Number
// so large token ids survive without precision loss.
type Object map[string]interface{}

// Decode parses raw JSON into an Object.
func Decode(raw []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	obj := Object{}
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// FromValue converts an already decoded value into an Object if it is one.
func FromValue(v interface{}) (Object, bool) {
	switch m := v.(type) {
	case Object:
		return m, true
	case map[string]interface{}:
		return Object(m), true
	}
	return nil, false
}

// String returns the first candidate key holding a non-empty string or a
// number, stringified.
func (o Object) String(keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := o[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := stringify(v); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Object returns the first candidate key holding a nested object.
func (o Object) Object(keys ...string) (Object, bool) {
	for _, k := range keys {
		if obj, ok := FromValue(o[k]); ok {
			return obj, true
		}
	}
	return nil, false
}

// Objects returns the elements of the array under key that are objects.
func (o Object) Objects(key string) ([]Object, bool) {
	arr, ok := o[key].([]interface{})
	if !ok {
		return nil, false
	}
	res := make([]Object, 0, len(arr))
	for _, v := range arr {
		if obj, ok := FromValue(v); ok {
			res = append(res, obj)
		}
	}
	return res, true
}

// Path walks nested objects and returns the leaf value.
func (o Object) Path(keys ...string) (interface{}, bool) {
	cur := o
	for i, k := range keys {
		v, ok := cur[k]
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		cur, ok = FromValue(v)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// PathString is Path with the leaf stringified.
func (o Object) PathString(keys ...string) (string, bool) {
	v, ok := o.Path(keys...)
	if !ok {
		return "", false
	}
	s, ok := stringify(v)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Raw re-serializes the object verbatim.
func (o Object) Raw() (json.RawMessage, error) {
	return json.Marshal(o)
}

func stringify(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(t, 10), true
	}
	return "", false
}
