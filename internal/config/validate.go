package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"huectl/internal/colorspace"
	"huectl/internal/notation"
)

// ValidationError lists every invalid field of a configuration, keyed by
// its YAML path.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// parsers maps each custom validation tag to the parser that defines it.
var parsers = map[string]func(string) error{
	"illuminant": func(s string) error { _, err := colorspace.ParseIlluminant(s); return err },
	"observer":   func(s string) error { _, err := colorspace.ParseObserver(s); return err },
	"adaptation": func(s string) error { _, err := colorspace.ParseAdaptation(s); return err },
	"alphaposition": func(s string) error {
		_, err := notation.ParseAlphaPosition(s)
		return err
	},
	"notation": func(s string) error { _, err := notation.FromLabel(s); return err },
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report YAML names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	for tag, parse := range parsers {
		// The tags are static and well-formed; registration cannot fail.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return parse(fl.Field().String()) == nil
		})
	}
	return v
}

var validate = newValidator()

// Validate checks every field of c and reports all failures together.
func (c HuectlConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		// Namespace is "HuectlConfig.color.illuminant"; drop the type name.
		_, path, _ := strings.Cut(e.Namespace(), ".")
		fields[path] = friendlyMessage(e)
	}
	return &ValidationError{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "illuminant":
		var known []string
		for _, i := range colorspace.Illuminants() {
			known = append(known, i.String())
		}
		return fmt.Sprintf("%q is not an illuminant (one of: %s)", e.Value(), strings.Join(known, " "))
	case "observer":
		return fmt.Sprintf("%q is not an observer (2 or 10)", e.Value())
	case "alphaposition":
		return fmt.Sprintf("%q is not an alpha position (none, end or start)", e.Value())
	case "adaptation":
		return fmt.Sprintf("%q is not a chromatic adaptation (none or bradford)", e.Value())
	case "notation":
		return fmt.Sprintf("%q is not a notation", e.Value())
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}
