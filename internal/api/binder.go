package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rifmis/internal/pkg/constants"
)

// Binder binds the request and then validates the result.
type Binder struct {
	echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			return constants.NewValidationError(err.Error())
		}
		if he.Code != http.StatusBadRequest {
			return err
		}
		return constants.NewValidationError(fmt.Sprint(he.Message))
	}

	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(i)
}
