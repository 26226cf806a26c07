package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// fieldMaps caches JSON tag -> struct field index mappings per type
var fieldMaps sync.Map

func getFieldMap(t reflect.Type) map[string]int {
	if cached, ok := fieldMaps.Load(t); ok {
		return cached.(map[string]int)
	}
	m := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		m[name] = i
	}
	fieldMaps.Store(t, m)
	return m
}

// flexUnmarshal decodes data into target (a pointer to an alias struct type
// without its own UnmarshalJSON). The provider is inconsistent about value
// types: counts may come quoted or bare, keys may come as strings, and empty
// values may be "" or null. Mismatched fields are coerced instead of failing
// the whole record.
func flexUnmarshal(data []byte, target any) error {
	// Fast path: standard unmarshal works when all types match natively
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	v := reflect.ValueOf(target).Elem()
	fieldMap := getFieldMap(v.Type())

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		s := strings.TrimSpace(string(rawVal))
		if len(s) > 1 && s[0] == '"' {
			if err := json.Unmarshal(rawVal, &s); err != nil {
				continue
			}
		}
		if s == "" || s == "null" {
			continue
		}
		coerceStringToField(fv, s)
	}

	return nil
}

// coerceStringToField converts a string value to the field's native type.
// Unparsable values leave the field at its zero value.
func coerceStringToField(fv reflect.Value, s string) {
	switch fv.Kind() {
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetFloat(n)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// ParseFloat handles "28.0" -> truncate to int
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetInt(int64(n))
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(s); err == nil {
			fv.SetBool(b)
		}
	case reflect.String:
		fv.SetString(s)
	}
}

// UnmarshalJSON implements flexible decoding for MatchRecord.
func (m *MatchRecord) UnmarshalJSON(data []byte) error {
	type alias MatchRecord
	return flexUnmarshal(data, (*alias)(m))
}

// UnmarshalJSON implements flexible decoding for PlayerResult.
func (p *PlayerResult) UnmarshalJSON(data []byte) error {
	type alias PlayerResult
	return flexUnmarshal(data, (*alias)(p))
}

// UnmarshalJSON implements flexible decoding for SeasonStat.
func (s *SeasonStat) UnmarshalJSON(data []byte) error {
	type alias SeasonStat
	return flexUnmarshal(data, (*alias)(s))
}

// UnmarshalJSON implements flexible decoding for Standing.
func (s *Standing) UnmarshalJSON(data []byte) error {
	type alias Standing
	return flexUnmarshal(data, (*alias)(s))
}

// UnmarshalJSON implements flexible decoding for PlayerInfo. The stats
// slice decodes through SeasonStat.UnmarshalJSON.
func (p *PlayerInfo) UnmarshalJSON(data []byte) error {
	type alias PlayerInfo
	return flexUnmarshal(data, (*alias)(p))
}
