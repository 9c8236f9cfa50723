package usecase

import "math"

// document is an untyped JSON object. Every accessor is total: a missing
// key or a value of the wrong type yields the supplied default.
type document map[string]any

func (d document) str(key, def string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return def
}

func (d document) number(key string, def float64) float64 {
	if v, ok := d[key].(float64); ok {
		return v
	}
	return def
}

func (d document) integer(key string, def int) int {
	v, ok := d[key].(float64)
	if !ok || v > math.MaxInt32 || v < math.MinInt32 {
		return def
	}
	return int(v)
}

// stringList keeps the string entries of an array value.
func (d document) stringList(key string, def []string) []string {
	arr, ok := d[key].([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// objects keeps the object entries of an array value.
func (d document) objects(key string) []document {
	arr, ok := d[key].([]any)
	if !ok {
		return nil
	}
	out := make([]document, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]any); ok {
			out = append(out, document(m))
		}
	}
	return out
}

func (d document) floatMap(key string, def map[string]float64) map[string]float64 {
	m, ok := d[key].(map[string]any)
	if !ok {
		return def
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	return out
}
