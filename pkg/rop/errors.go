package rop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

const (
	ErrorKind            = "Error"
	InputErrorKind       = "InputError"
	EnvironmentErrorKind = "EnvironmentError"
)

// InputError reports a problem with the primary input of a composable,
// located by Path (e.g. ["user", "id"]).
type InputError struct {
	Message string
	Path    []string
}

func NewInputError(message string, path ...string) *InputError {
	return &InputError{Message: message, Path: path}
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Name() string {
	return InputErrorKind
}

// EnvironmentError reports a problem with the environment (context-like
// input such as the current user) of a composable.
type EnvironmentError struct {
	Message string
	Path    []string
}

func NewEnvironmentError(message string, path ...string) *EnvironmentError {
	return &EnvironmentError{Message: message, Path: path}
}

func (e *EnvironmentError) Error() string {
	return e.Message
}

func (e *EnvironmentError) Name() string {
	return EnvironmentErrorKind
}

// ErrorList carries several errors across a function-call boundary as a
// single error. Composables unwrap it back into their failure's error list.
type ErrorList struct {
	List []error
}

func NewErrorList(errs ...error) *ErrorList {
	return &ErrorList{List: errs}
}

func (e *ErrorList) Error() string {
	msgs := make([]string, 0, len(e.List))
	for _, err := range e.List {
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return "ErrorList: " + strings.Join(msgs, "; ")
}

func (e *ErrorList) Unwrap() []error {
	return e.List
}

func IsInputError(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

func IsEnvironmentError(err error) bool {
	var target *EnvironmentError
	return errors.As(err, &target)
}

// ErrorName classifies err as InputError, EnvironmentError or Error.
func ErrorName(err error) string {
	switch {
	case IsInputError(err):
		return InputErrorKind
	case IsEnvironmentError(err):
		return EnvironmentErrorKind
	default:
		return ErrorKind
	}
}

// ErrorPath returns the field path of a validation error, nil otherwise.
func ErrorPath(err error) []string {
	var in *InputError
	if errors.As(err, &in) {
		return in.Path
	}
	var env *EnvironmentError
	if errors.As(err, &env) {
		return env.Path
	}
	return nil
}

// ToError normalizes a recovered value into an error. Values that are not
// errors are serialized as JSON when possible, else formatted with fmt.
func ToError(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	if s, ok := v.(string); ok {
		return errors.New(s)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return errors.New(fmt.Sprint(v))
	}
	return errors.New(string(b))
}
