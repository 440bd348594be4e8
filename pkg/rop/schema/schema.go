package schema

import (
	"context"
	"fmt"
	"reflect"
)

// Issue locates one validation problem.
type Issue struct {
	Path    []string
	Message string
}

type ParseResult[T any] struct {
	Success bool
	Data    T
	Issues  []Issue
}

// ParserSchema is anything that can turn an unknown value into a T or
// explain why it cannot.
type ParserSchema[T any] interface {
	ParseAsync(ctx context.Context, v any) ParseResult[T]
}

// Func adapts a plain function to ParserSchema.
type Func[T any] func(ctx context.Context, v any) ParseResult[T]

func (f Func[T]) ParseAsync(ctx context.Context, v any) ParseResult[T] {
	return f(ctx, v)
}

func Ok[T any](data T) ParseResult[T] {
	return ParseResult[T]{Success: true, Data: data}
}

func Invalid[T any](issues ...Issue) ParseResult[T] {
	return ParseResult[T]{Success: false, Issues: issues}
}

// Undefined accepts only nil. It is the input schema of units declared
// without one.
func Undefined[T any]() ParserSchema[T] {
	return Func[T](func(_ context.Context, v any) ParseResult[T] {
		if v != nil {
			return Invalid[T](Issue{Message: "Expected undefined"})
		}
		var zero T
		return Ok(zero)
	})
}

// Object accepts object-shaped values: maps keyed by strings, structs and
// pointers to structs. It is the environment schema of units declared
// without one.
func Object[T any]() ParserSchema[T] {
	return Func[T](func(_ context.Context, v any) ParseResult[T] {
		if !isObject(v) {
			return Invalid[T](Issue{Message: "Expected an object"})
		}
		data, ok := v.(T)
		if !ok {
			return Invalid[T](Issue{Message: fmt.Sprintf("Expected %s", reflect.TypeFor[T]())})
		}
		return Ok(data)
	})
}

// Any accepts every value as is.
func Any() ParserSchema[any] {
	return Func[any](func(_ context.Context, v any) ParseResult[any] {
		return Ok(v)
	})
}

func isObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}
