package projection

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

// ErrMissingField marks a projection that could not find an identifying field.
var ErrMissingField = crerr.New("required field missing")

func lookup(doc rawdata.Document, path ...string) (any, bool) {
	var current any = doc
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok || obj == nil {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, current != nil
}

func text(doc rawdata.Document, path ...string) string {
	raw, ok := lookup(doc, path...)
	if !ok {
		return ""
	}
	return textValue(raw)
}

func textValue(raw any) string {
	switch typed := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(typed)
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int:
		return strconv.Itoa(typed)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(typed)
	}
}

func number(doc rawdata.Document, path ...string) float64 {
	raw, ok := lookup(doc, path...)
	if !ok {
		return math.NaN()
	}
	return numberValue(raw)
}

func numberValue(raw any) float64 {
	switch typed := raw.(type) {
	case json.Number:
		v, err := typed.Float64()
		if err != nil {
			return math.NaN()
		}
		return v
	case float64:
		return typed
	case int64:
		return float64(typed)
	case int:
		return float64(typed)
	case bool:
		if typed {
			return 1
		}
		return 0
	case string:
		v, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	default:
		return math.NaN()
	}
}

func integer(doc rawdata.Document, path ...string) (int64, bool) {
	raw, ok := lookup(doc, path...)
	if !ok {
		return 0, false
	}
	return integerValue(raw)
}

func integerValue(raw any) (int64, bool) {
	switch typed := raw.(type) {
	case json.Number:
		if v, err := typed.Int64(); err == nil {
			return v, true
		}
		v, err := typed.Float64()
		if err != nil || v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		return v, err == nil
	default:
		v := numberValue(raw)
		if math.IsNaN(v) || v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	}
}

func integerPtr(doc rawdata.Document, path ...string) *int64 {
	v, ok := integer(doc, path...)
	if !ok {
		return nil
	}
	return &v
}

func requiredText(doc rawdata.Document, field string) (string, error) {
	value := text(doc, field)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return value, nil
}

func requiredInteger(doc rawdata.Document, field string) (int64, error) {
	value, ok := integer(doc, field)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return value, nil
}

func object(doc rawdata.Document, key string) rawdata.Document {
	raw, ok := lookup(doc, key)
	if !ok {
		return nil
	}
	obj, _ := raw.(map[string]any)
	return obj
}

func items(doc rawdata.Document, key string) []any {
	raw, ok := lookup(doc, key)
	if !ok {
		return nil
	}
	list, _ := raw.([]any)
	return list
}

// textList never returns nil so missing lists render as an empty list.
func textList(doc rawdata.Document, key string) []string {
	list := items(doc, key)
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, textValue(item))
	}
	return out
}

func numberList(doc rawdata.Document, key string) []float64 {
	list := items(doc, key)
	out := make([]float64, 0, len(list))
	for _, item := range list {
		out = append(out, numberValue(item))
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
