// Package reporting evaluates report column expressions against the fields of
// the row being rendered.
package reporting

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrFieldNotFound reports a field that is missing or nil in the parameters.
var ErrFieldNotFound = errors.New("reporting: field not found")

// FieldError names the field an expression could not read.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("reporting: field %q not found", e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrFieldNotFound
}

// Parameters exposes the field values of the row being rendered.
type Parameters interface {
	FieldValue(name string) (any, bool)
}

// Fields is a map backed Parameters.
type Fields map[string]any

// FieldValue returns the value stored under name.
func (f Fields) FieldValue(name string) (any, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f[name]
	return v, ok
}

// Expression evaluates to the text shown in a report cell.
type Expression interface {
	Evaluate(params Parameters) (string, error)
}

// fieldText reads name from params as text. Missing, nil and nil-pointer
// values are reported as a *FieldError.
func fieldText(params Parameters, name string) (string, error) {
	value, err := fieldValue(params, name)
	if err != nil {
		return "", err
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case *string:
		return *v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return fmt.Sprint(value), nil
}

func fieldValue(params Parameters, name string) (any, error) {
	name = strings.TrimSpace(name)
	if params == nil || name == "" {
		return nil, &FieldError{Field: name}
	}
	value, ok := params.FieldValue(name)
	if !ok || isNil(value) {
		return nil, &FieldError{Field: name}
	}
	return value, nil
}

// isNil reports nil values, including typed nils boxed in an interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
