package form

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/threadly/threadly/internal/threadly/errors"
)

// Messages surfaced next to a field.
const (
	MsgRequired     = "required"
	MsgInvalidEmail = "invalid email"
)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// Fields returns the names of the failing fields in lexical order.
func (fe FieldErrors) Fields() []string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (fe FieldErrors) clone() FieldErrors {
	c := make(FieldErrors, len(fe))
	for k, v := range fe {
		c[k] = v
	}
	return c
}

// ValidationError is returned by Submit when the schema rejects the values.
type ValidationError struct {
	Mode   Mode
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, name := range e.Fields.Fields() {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return e.Mode.String() + " " + errors.ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return errors.ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	})
	return v
}

// Validate checks values against the schema of their mode. A nil result means the values
// are valid.
func Validate(values Values) FieldErrors {
	err := validate.Struct(values)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": err.Error()}
	}

	result := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := topLevelField(fe.Namespace())
		if _, seen := result[field]; seen {
			continue
		}
		result[field] = message(fe.Tag())
	}
	return result
}

// topLevelField maps "RegisterValues.picture.name" to "picture".
func topLevelField(namespace string) string {
	parts := strings.SplitN(namespace, ".", 3)
	if len(parts) < 2 {
		return namespace
	}
	return parts[1]
}

func message(tag string) string {
	if tag == "email" {
		return MsgInvalidEmail
	}
	return MsgRequired
}
