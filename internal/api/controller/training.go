package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rifmis/internal/domain/dto"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
)

var errInvalidTrainingID = constants.NewValidationError("Invalid training event ID")

// GetTrainingEvents returns one event as trainingData when ?id= is given, otherwise the
// filtered list as trainingEvents.
func (c *Controller) GetTrainingEvents(ctx echo.Context) error {
	if ctx.QueryParam("id") != "" {
		var req dto.GetTrainingEventRequest
		if err := ctx.Bind(&req); err != nil {
			return err
		}
		if req.ID <= 0 {
			return errInvalidTrainingID
		}

		event, err := c.training.Get(ctx.Request().Context(), req.ID.Int64())
		if err != nil {
			return constants.Fail("Failed to fetch training data", err)
		}
		return respondData(ctx, "trainingData", event)
	}

	events, err := c.training.List(ctx.Request().Context(), filter.FromQuery(ctx.QueryParams()))
	if err != nil {
		return constants.Fail("Failed to fetch training events", err)
	}
	return respondData(ctx, "trainingEvents", events)
}

func (c *Controller) AddTrainingEvent(ctx echo.Context) error {
	var req dto.TrainingEventRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.training.Add(ctx.Request().Context(), callerID(ctx), &req); err != nil {
		return constants.Fail("Failed to add training event", err)
	}

	return respondMessage(ctx, "Training event added successfully")
}

func (c *Controller) UpdateTrainingEvent(ctx echo.Context) error {
	var req dto.UpdateTrainingEventRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.training.Update(ctx.Request().Context(), callerID(ctx), &req); err != nil {
		return constants.Fail("Failed to update training event", err)
	}

	return respondMessage(ctx, "Training event updated successfully")
}

func (c *Controller) DeleteTrainingEvent(ctx echo.Context) error {
	var req dto.DeleteTrainingEventRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.training.Delete(ctx.Request().Context(), req.ID.Int64()); err != nil {
		return constants.Fail("Failed to delete training event", err)
	}

	return respondMessage(ctx, "Training event deleted successfully")
}

func (c *Controller) GetTrainingDashboard(ctx echo.Context) error {
	dashboard, err := c.training.Dashboard(ctx.Request().Context())
	if err != nil {
		return constants.Fail("Failed to fetch training dashboard data", err)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"overall":     dashboard.Overall,
		"byEventType": dashboard.ByEventType,
		"byDistrict":  dashboard.ByDistrict,
	})
}
