package data

import "fmt"

// Merge deep-merges src into dst and returns dst. Nested maps are merged
// recursively; every other value from src, nil included, replaces the value
// in dst. Maps taken from src are copied, so later merges never modify src.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		srcMap, ok := value.(map[string]any)
		if !ok {
			dst[key] = value
			continue
		}
		if dstMap, ok := dst[key].(map[string]any); ok {
			dst[key] = Merge(dstMap, srcMap)
			continue
		}
		dst[key] = Merge(nil, srcMap)
	}
	return dst
}

// MergeAll merges every source, in order, into a fresh map
func MergeAll(sources ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, src := range sources {
		Merge(out, src)
	}
	return out
}

// normalize converts decoded YAML into JSON-shaped values: maps keyed by
// non-strings become map[string]any with formatted keys
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return v
	}
}
