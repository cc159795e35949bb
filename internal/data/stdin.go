package data

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aescanero/hbs/internal/errs"
)

// ReadStdin reads r to EOF and decodes it as a JSON object
func ReadStdin(r io.Reader) (map[string]any, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(errs.ErrFileIO, "stdin", err)
	}

	var v any
	if err := json.Unmarshal(content, &v); err != nil {
		return nil, errs.Wrap(errs.ErrStdinNotJSON, "", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errs.Wrap(errs.ErrStdinNotJSON, "", fmt.Errorf("expected a JSON object, got %s", kindOf(v)))
	}
	return obj, nil
}

// kindOf names the JSON kind of a decoded value
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
