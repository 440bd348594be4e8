package serialize

import (
	"github.com/goccy/go-json"

	"github.com/ib-77/composable/pkg/rop"
)

// SerializableError is the wire form of an error.
type SerializableError struct {
	Name    string   `json:"name"`
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// SerializedResult is the wire form of a Result. Data is omitted on
// failure, Errors on success.
type SerializedResult[T any] struct {
	Success bool                `json:"success"`
	Data    *T                  `json:"data,omitempty"`
	Errors  []SerializableError `json:"errors"`
}

func SerializeError(err error) SerializableError {
	return SerializableError{
		Name:    rop.ErrorName(err),
		Message: err.Error(),
		Path:    rop.ErrorPath(err),
	}
}

func Serialize[T any](res rop.Result[T]) SerializedResult[T] {
	if res.IsSuccess() {
		data := res.Data()
		return SerializedResult[T]{Success: true, Data: &data, Errors: []SerializableError{}}
	}

	errs := make([]SerializableError, 0, len(res.Errors()))
	for _, err := range res.Errors() {
		errs = append(errs, SerializeError(err))
	}
	return SerializedResult[T]{Success: false, Errors: errs}
}

// Marshal encodes the wire form of res.
func Marshal[T any](res rop.Result[T]) ([]byte, error) {
	return json.Marshal(Serialize(res))
}

// Unmarshal rebuilds a Result from its wire form. Validation errors keep
// their kind and path, other errors come back as plain errors.
func Unmarshal[T any](b []byte) (rop.Result[T], error) {
	var wire SerializedResult[T]
	if err := json.Unmarshal(b, &wire); err != nil {
		return rop.Result[T]{}, err
	}

	if wire.Success {
		var data T
		if wire.Data != nil {
			data = *wire.Data
		}
		return rop.Success(data), nil
	}

	errs := make([]error, 0, len(wire.Errors))
	for _, e := range wire.Errors {
		errs = append(errs, e.toError())
	}
	return rop.Failure[T](errs...), nil
}

func (e SerializableError) toError() error {
	switch e.Name {
	case rop.InputErrorKind:
		return rop.NewInputError(e.Message, e.Path...)
	case rop.EnvironmentErrorKind:
		return rop.NewEnvironmentError(e.Message, e.Path...)
	default:
		return wireError(e.Message)
	}
}

type wireError string

func (e wireError) Error() string {
	return string(e)
}
