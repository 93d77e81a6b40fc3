package board

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/matzehuels/audiocircuits/pkg/errors"
)

// Validate checks field-level constraints of the config. Module kinds and
// parameters are checked when the board is built.
func (c Config) Validate() error {
	validate, trans := configValidator()

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return errors.Wrap(errors.ErrCodeInternal, err, "validate config")
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msg := e.Translate(trans)
		if ns := parentNamespace(e.Namespace()); ns != "" {
			msg = ns + "." + msg
		}
		msgs = append(msgs, msg)
	}
	return errors.New(errors.ErrCodeInvalidConfig, "%s", strings.Join(msgs, "; "))
}

// customRule is a validation tag with its EN message.
type customRule struct {
	tag     string
	fn      validator.Func
	message string
}

var customRules = []customRule{
	{
		tag:     "dimension",
		fn:      func(fl validator.FieldLevel) bool { return dimensionRe.MatchString(fl.Field().String()) },
		message: "{0} must be a length such as 80mm",
	},
	{
		tag:     "declname",
		fn:      func(fl validator.FieldLevel) bool { return errors.ValidateName(fl.Field().String()) == nil },
		message: "{0} must not contain whitespace, '.' or '>'",
	},
}

// configValidator returns the shared validator and its EN translator. Both
// are safe for concurrent use once built.
var configValidator = sync.OnceValues(newValidator)

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()

	enLocale := en.New()
	trans, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(fmt.Errorf("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Errorf("translator was not registered: %w", err))
	}

	for _, rule := range customRules {
		if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
			panic(err)
		}
		if err := validate.RegisterTranslation(rule.tag, trans,
			func(t ut.Translator) error { return t.Add(rule.tag, rule.message, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(fe.Tag(), fe.Field())
				return msg
			},
		); err != nil {
			panic(err)
		}
	}

	// Use TOML key names in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return validate, trans
}

// parentNamespace strips the struct name and the field name from a
// validator namespace: "Config.modules[0].name" -> "modules[0]".
func parentNamespace(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) <= 2 {
		return ""
	}
	return strings.Join(parts[1:len(parts)-1], ".")
}
