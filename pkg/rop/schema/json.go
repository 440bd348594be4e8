package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Check refines an already decoded value.
type Check[T any] func(v T) []Issue

// JSON decodes unknown values into T through their JSON form. Values that
// already are a T pass untouched, []byte and json.RawMessage are decoded
// directly, anything else is marshalled first. Unknown fields are rejected.
// Checks run in order after a successful decode and their issues are
// reported together.
func JSON[T any](checks ...Check[T]) ParserSchema[T] {
	return Func[T](func(_ context.Context, v any) ParseResult[T] {
		data, issue, ok := decode[T](v)
		if !ok {
			return Invalid[T](issue)
		}

		var issues []Issue
		for _, check := range checks {
			issues = append(issues, check(data)...)
		}
		if len(issues) > 0 {
			return Invalid[T](issues...)
		}
		return Ok(data)
	})
}

// Required reports a missing-field issue when get returns the zero value.
func Required[T any, F comparable](field string, get func(T) F) Check[T] {
	return func(v T) []Issue {
		var zero F
		if get(v) == zero {
			return []Issue{{Path: []string{field}, Message: "Required"}}
		}
		return nil
	}
}

func decode[T any](v any) (T, Issue, bool) {
	var data T
	if typed, ok := v.(T); ok {
		return typed, Issue{}, true
	}

	var raw []byte
	switch b := v.(type) {
	case []byte:
		raw = b
	case json.RawMessage:
		raw = b
	default:
		var err error
		if raw, err = json.Marshal(v); err != nil {
			return data, Issue{Message: err.Error()}, false
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return data, toIssue(err), false
	}
	return data, Issue{}, true
}

func toIssue(err error) Issue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Issue{
			Path:    fieldPath(typeErr.Field),
			Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type, typeErr.Value),
		}
	}

	// decoder reports unknown fields as `json: unknown field "name"`
	msg := err.Error()
	if name, found := strings.CutPrefix(msg, "json: unknown field "); found {
		return Issue{Path: []string{strings.Trim(name, `"`)}, Message: "Unrecognized key"}
	}
	return Issue{Message: msg}
}

func fieldPath(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, ".")
}
