package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rifmis/internal/domain"
	"github.com/ougirez/rifmis/internal/pkg/constants"
)

func respondData(ctx echo.Context, key string, data interface{}) error {
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		key:       data,
	})
}

func respondMessage(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusOK, domain.MessageResponse{Success: true, Message: message})
}

func (c *Controller) Health(ctx echo.Context) error {
	if err := c.db.Ping(ctx.Request().Context()); err != nil {
		return constants.Fail("Database unavailable", err)
	}
	return respondData(ctx, "status", "ok")
}
