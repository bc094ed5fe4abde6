// Package validation holds the shared struct validator used for presets,
// configuration and HTTP request bodies.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/cssplay/internal/color"
	cssplayerrors "github.com/alexisbeaulieu97/cssplay/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the shared validator. Besides the built-in tags it knows
// "css_hex" (a 3 or 6 digit hex colour) and "finite" (a number that is
// neither NaN nor infinite). Field names in errors follow the
// yaml tag of each field.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_hex", func(fl validator.FieldLevel) bool {
			return color.IsValidHex(fl.Field().String())
		})
		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(f.Name)
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts the first failure into a ValidationError.
// scope prefixes the reported field path, e.g. "presets.border.subtle".
func Struct(scope string, s any) error {
	if err := Instance().Struct(s); err != nil {
		return convert(scope, err)
	}
	return nil
}

func convert(scope string, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldPath(scope, ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return cssplayerrors.NewValidationError(field, msg, err)
	}

	if scope == "" {
		scope = "value"
	}
	return cssplayerrors.NewValidationError(scope, err.Error(), err)
}

// fieldPath drops the root struct name from the namespace and prefixes scope.
func fieldPath(scope string, fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if scope == "" {
		return ns
	}
	return scope + "." + ns
}
