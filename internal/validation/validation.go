// Package validation checks requests against the service constraints before
// they are sent.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bravo68web/codecommit/pkg/errors"
)

// Validator wraps validator/v10 with wire field names and the enum rule.
type Validator struct {
	validate *validator.Validate
}

type knowable interface {
	IsKnown() bool
}

// New creates a Validator. It is safe for concurrent use.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// enum accepts only declared values
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		k, ok := fl.Field().Interface().(knowable)
		return !ok || k.IsKnown()
	})

	return &Validator{validate: v}
}

// Struct validates s and reports the first violation as an
// errors.ErrInvalidArgument naming the offending wire field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errors.InvalidArgument(fieldPath(fe), describe(fe))
	}
	return errors.InvalidArgument("", err.Error())
}

// fieldPath drops the struct name from the namespace:
// "CreateCommitRequest.putFiles[0].filePath" becomes "putFiles[0].filePath".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	kind := fe.Kind()
	sized := kind == reflect.String || kind == reflect.Slice || kind == reflect.Map

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if sized {
			return fmt.Sprintf("must have length at least %s", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if sized {
			return fmt.Sprintf("must have length at most %s", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "enum":
		return fmt.Sprintf("unknown value %v", fe.Value())
	}
	return fmt.Sprintf("failed %s constraint", fe.Tag())
}
