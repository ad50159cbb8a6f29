package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kedeea/kedeea-consent-api/src/dtos"
	"github.com/kedeea/kedeea-consent-api/src/models"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the notblank rule to gin's validator and makes
// field errors report json names instead of Go field names.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("gin binding validator is not go-playground/validator")
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("notblank", notBlank); err != nil {
			panic(err)
		}
	})
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// validationErrorResponse turns a binding error into the 422 body.
func validationErrorResponse(err error) dtos.ValidationErrorResponse {
	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		items     []dtos.ValidationErrorItem
	)

	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			items = append(items, fieldErrorItem(fe))
		}
	case errors.As(err, &typeErr):
		items = append(items, dtos.ValidationErrorItem{
			Loc:  bodyLoc(typeErr.Field),
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type.String()),
			Type: "type_error." + typeErr.Type.Kind().String(),
		})
	case errors.Is(err, models.ErrInvalidDate):
		items = append(items, dtos.ValidationErrorItem{
			Loc:  bodyLoc("signed_at"),
			Msg:  err.Error(),
			Type: "value_error.date",
		})
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		items = append(items, dtos.ValidationErrorItem{
			Loc:  bodyLoc(""),
			Msg:  "request body is not valid JSON",
			Type: "value_error.jsondecode",
		})
	default:
		items = append(items, dtos.ValidationErrorItem{
			Loc:  bodyLoc(""),
			Msg:  err.Error(),
			Type: "value_error",
		})
	}

	return dtos.ValidationErrorResponse{Detail: items}
}

func fieldErrorItem(fe validator.FieldError) dtos.ValidationErrorItem {
	item := dtos.ValidationErrorItem{Loc: bodyLoc(fe.Field())}
	switch fe.Tag() {
	case "required":
		item.Msg = "field required"
		item.Type = "value_error.missing"
	case "notblank":
		item.Msg = "field must not be blank"
		item.Type = "value_error.blank"
	case "email":
		item.Msg = "value is not a valid email address"
		item.Type = "value_error.email"
	default:
		item.Msg = fmt.Sprintf("failed on the %q rule", fe.Tag())
		item.Type = "value_error." + fe.Tag()
	}
	return item
}

func bodyLoc(field string) []string {
	if field == "" {
		return []string{"body"}
	}
	return []string{"body", field}
}
