package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/logger"
)

const msgInternal = "Internal server error"

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := msgInternal

	var (
		ce *constants.CodedError
		he *echo.HTTPError
		op *constants.OpError
	)
	switch {
	case errors.As(err, &ce):
		code = ce.Code()
		msg = ce.Error()
	case errors.As(err, &he):
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	resp := domain.ErrorResponse{Message: msg}
	if code >= http.StatusInternalServerError {
		if errors.As(err, &op) {
			resp.Message = op.Message
		}
		resp.Error = diagnostic(err)
		logger.Errorf(c.Request().Context(), "%s %s: %s: %s", c.Request().Method, c.Path(), resp.Message, err.Error())
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, resp)
}

// diagnostic is the fault's own message: the server's text for database errors, the
// network cause for failed connects, the innermost cause otherwise. Connection
// settings never appear in it.
func diagnostic(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		if cause := errors.Unwrap(connErr); cause != nil {
			return innermost(cause).Error()
		}
		return "failed to connect to database"
	}

	var op *constants.OpError
	if errors.As(err, &op) && op.Err == nil {
		return op.Message
	}
	return innermost(err).Error()
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if !errors.As(err, new(*constants.CodedError)) && errors.As(err, &he) {
		return he.Code
	}
	return constants.StatusCode(err)
}

func innermost(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
