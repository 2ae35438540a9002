package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps the validator engine with an english translator.
// Field names are reported using their mapstructure keys.
type Validator struct {
	engine *validator.Validate
	trans  ut.Translator
}

// New configures the validator engine.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &Validator{engine: v, trans: trans}
}

// Struct validates s and returns the field errors keyed by their dotted path.
// A nil map means s is valid.
func (v *Validator) Struct(s interface{}) (map[string]string, error) {
	err := v.engine.Struct(s)
	if err == nil {
		return nil, nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}
	return v.parse(validationErrors), nil
}

// parse converts raw technical errors into a clean map.
// Nested errors are resolved into their hierarchical naming.
func (v *Validator) parse(validationErrors validator.ValidationErrors) map[string]string {
	errMap := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		ns := e.Namespace()

		// drop the root struct name
		if i := strings.Index(ns, "."); i != -1 {
			ns = ns[i+1:]
		}

		msg := e.Translate(v.trans)

		if e.Tag() == "oneof" {
			msg = fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(e.Param(), " ", ", "))
		}

		errMap[ns] = msg
	}
	return errMap
}

// Format renders field errors as a stable, single line message.
func Format(errMap map[string]string) string {
	keys := make([]string, 0, len(errMap))
	for k := range errMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, errMap[k]))
	}
	return strings.Join(parts, "; ")
}
