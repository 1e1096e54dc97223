package dto

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/exception"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details []exception.FieldError `json:"details,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return nil
}

// ValidateFields validates req and reports every failing field. The first
// translated message becomes the error message.
func ValidateFields(req interface{}) error {
	err := Validate.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make([]exception.FieldError, len(ve))
	for i, fe := range ve {
		fields[i] = exception.FieldError{
			Path:    fe.Namespace(),
			Field:   fe.Field(),
			Message: fe.Translate(trans),
		}
	}

	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    fields[0].Message,
		Fields:     fields,
	}
}
