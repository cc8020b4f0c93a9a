package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
)

func (c *Controller) GetTrackingSheet(ctx echo.Context) error {
	rows, err := c.tracking.ListTrackingSheet(ctx.Request().Context(), filter.FromQuery(ctx.QueryParams()))
	if err != nil {
		return constants.Fail("Failed to fetch tracking sheet data", err)
	}

	return respondData(ctx, "trackingData", rows)
}

func (c *Controller) GetActivityProgressSummary(ctx echo.Context) error {
	rows, err := c.tracking.ListActivityProgress(ctx.Request().Context())
	if err != nil {
		return constants.Fail("Failed to fetch activity progress summary", err)
	}

	return respondData(ctx, "activityProgress", rows)
}

func (c *Controller) GetOutputWeightage(ctx echo.Context) error {
	weightage, err := c.tracking.OutputWeightage(ctx.Request().Context())
	if err != nil {
		return constants.Fail("Failed to fetch output weightage", err)
	}

	return respondData(ctx, "outputWeightage", weightage)
}
