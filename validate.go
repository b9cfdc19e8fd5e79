package fishtext

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate *validator.Validate
var translator ut.Translator

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	var ok bool
	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("fishtext: failed to get 'en' translator")
	}

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// validateConfig checks cfg against its declared tags. A missing format
// is reported as [ErrTextFormatRequired], anything else as [ErrConfiguration].
func validateConfig(cfg config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrors validator.ValidationErrors
	if !errors.As(err, &verrors) {
		return &ConfigError{Err: errors.Join(ErrConfiguration, err)}
	}

	cerr := ConfigError{Err: ErrConfiguration}
	for _, verror := range verrors {
		if verror.Field() == "format" && verror.Tag() == "required" {
			cerr.Err = ErrTextFormatRequired
		}

		cerr.Fields = append(cerr.Fields, FieldError{
			Field: verror.Field(),
			Err:   customErrForTag(verror.Tag(), verror),
		})
	}

	return &cerr
}

func customErrForTag(tag string, verror validator.FieldError) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "must be an absolute URL"
	default:
		return verror.Translate(translator)
	}
}
