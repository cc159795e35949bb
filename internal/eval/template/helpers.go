package template

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/aescanero/hbs/internal/eval/cel"
	"github.com/aescanero/hbs/pkg/registry"
	"github.com/aymerick/raymond"
)

// RegisterBuiltins registers the built-in helpers into r. Helper modules
// loaded afterwards may replace any of them.
func RegisterBuiltins(r registry.Registry, evaluator *cel.Evaluator) {
	// uppercase helper
	r.RegisterHelper("uppercase", func(str string) string {
		return strings.ToUpper(str)
	})

	// lowercase helper
	r.RegisterHelper("lowercase", func(str string) string {
		return strings.ToLower(str)
	})

	// trim helper
	r.RegisterHelper("trim", func(str string) string {
		return strings.TrimSpace(str)
	})

	// default helper - return default value if first arg is empty
	r.RegisterHelper("default", func(value any, defaultValue any) any {
		if value == nil || value == "" {
			return defaultValue
		}
		return value
	})

	r.RegisterHelper("eq", func(a, b any) bool {
		return equal(a, b)
	})

	r.RegisterHelper("ne", func(a, b any) bool {
		return !equal(a, b)
	})

	r.RegisterHelper("gt", func(a, b any) bool {
		x, okX := toFloat(a)
		y, okY := toFloat(b)
		return okX && okY && x > y
	})

	r.RegisterHelper("lt", func(a, b any) bool {
		x, okX := toFloat(a)
		y, okY := toFloat(b)
		return okX && okY && x < y
	})

	// contains helper - check if string contains substring
	r.RegisterHelper("contains", func(str, substr string) bool {
		return strings.Contains(str, substr)
	})

	// join helper - join array elements with separator
	r.RegisterHelper("join", func(arr []any, sep string) string {
		strs := make([]string, len(arr))
		for i, v := range arr {
			strs[i] = fmt.Sprint(v)
		}
		return strings.Join(strs, sep)
	})

	// len helper - get length of array/string/map
	r.RegisterHelper("len", func(value any) int {
		switch v := value.(type) {
		case string:
			return len(v)
		case []any:
			return len(v)
		case map[string]any:
			return len(v)
		default:
			return 0
		}
	})

	// json helper - serialize a value without HTML escaping
	r.RegisterHelper("json", func(value any) raymond.SafeString {
		data, err := json.Marshal(value)
		if err != nil {
			panic(fmt.Errorf("json helper: %w", err))
		}
		return raymond.SafeString(data)
	})

	if evaluator != nil {
		// expr helper - evaluate a CEL expression against the current context
		r.RegisterHelper("expr", func(expression string, options *raymond.Options) any {
			result, err := evaluator.EvaluateContext(context.Background(), expression, options.Ctx())
			if err != nil {
				panic(fmt.Errorf("expr helper %q: %w", expression, err))
			}
			return result
		})
	}
}

// equal compares numbers by value and everything else deeply
func equal(a, b any) bool {
	x, okX := toFloat(a)
	y, okY := toFloat(b)
	if okX && okY {
		return x == y
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}
