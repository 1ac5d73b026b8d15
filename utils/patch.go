package utils

import (
	"reflect"
	"strconv"
	"strings"
)

// UpdatesFromPtrDTO builds a map[string]any containing only non-nil *fields from
// a pointer DTO, keyed for GORM's Updates. The column name comes from the
// `gorm:"column:..."` tag when present, otherwise from the `json` tag (before any
// comma options). A renames map can still override either (e.g.,
// {"customer_id":"c_id"}).
func UpdatesFromPtrDTO(dto any, renames map[string]string) map[string]any {
	res := make(map[string]any)
	v := reflect.ValueOf(dto)
	if v.Kind() != reflect.Ptr {
		return res
	}
	s := v.Elem()
	if s.Kind() != reflect.Struct {
		return res
	}
	t := s.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := s.Field(i)
		if fv.Kind() != reflect.Ptr || fv.IsNil() {
			continue
		}
		name := columnName(sf)
		if name == "" {
			continue
		}
		if renames != nil {
			if alt, ok := renames[name]; ok && alt != "" {
				name = alt
			}
		}
		res[name] = fv.Elem().Interface()
	}
	return res
}

func columnName(sf reflect.StructField) string {
	for _, part := range strings.Split(sf.Tag.Get("gorm"), ";") {
		if col, ok := strings.CutPrefix(part, "column:"); ok && col != "" {
			return col
		}
	}
	jsonTag := sf.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return ""
	}
	return strings.Split(jsonTag, ",")[0]
}

func ParseIntDefault(s string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v >= 0 {
		return v
	}
	return def
}
