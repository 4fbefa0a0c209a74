package projection

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	sonic "github.com/bytedance/sonic"
)

// FormatValue renders a cell as text. NaN renders as "NaN" and lists as JSON.
func FormatValue(v Value) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return formatFloat(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int:
		return strconv.Itoa(typed)
	case bool:
		return strconv.FormatBool(typed)
	case json.Number:
		return typed.String()
	default:
		body, err := sonic.ConfigStd.Marshal(jsonSafe(typed))
		if err != nil {
			return fmt.Sprint(typed)
		}
		return string(body)
	}
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// jsonSafe replaces NaN with null, which JSON cannot carry.
func jsonSafe(v Value) Value {
	switch typed := v.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return nil
		}
		return typed
	case []float64:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, jsonSafe(item))
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, jsonSafe(item))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = jsonSafe(item)
		}
		return out
	default:
		return v
	}
}
