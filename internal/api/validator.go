package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/rifmis/internal/pkg/constants"
)

// messageTag on a struct field overrides the text returned when the field fails validation.
const messageTag = "message"

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = fld.Tag.Get("query")
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return constants.NewValidationError(err.Error())
	}

	fe := fieldErrs[0]
	if msg := fieldMessage(i, fe.StructField()); msg != "" {
		return constants.NewValidationError(msg)
	}
	return constants.NewValidationError(fmt.Sprintf("Invalid field %s: failed on %s", fe.Field(), fe.Tag()))
}

func fieldMessage(i interface{}, structField string) string {
	t := reflect.TypeOf(i)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return ""
	}
	return f.Tag.Get(messageTag)
}
