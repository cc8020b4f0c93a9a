package controller

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rifmis/internal/domain/dto"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/pkg/filter"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (c *Controller) GetParticipants(ctx echo.Context) error {
	rows, err := c.participants.List(ctx.Request().Context(), filter.FromQuery(ctx.QueryParams()))
	if err != nil {
		return constants.Fail("Failed to fetch workshop participants data", err)
	}

	return respondData(ctx, "participants", rows)
}

func (c *Controller) ExportParticipants(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := c.participants.Export(ctx.Request().Context(), filter.FromQuery(ctx.QueryParams()), &buf); err != nil {
		return constants.Fail("Failed to export workshop participants data", err)
	}

	name := "workshop_participants_" + time.Now().Format("2006-01-02") + ".xlsx"
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (c *Controller) AddParticipant(ctx echo.Context) error {
	var req dto.ParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	sn, err := c.participants.Add(ctx.Request().Context(), callerID(ctx), &req)
	if err != nil {
		return constants.Fail("Failed to add participant record", err)
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Participant record added successfully",
		"sn":      sn,
	})
}

func (c *Controller) UpdateParticipant(ctx echo.Context) error {
	var req dto.UpdateParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.participants.Update(ctx.Request().Context(), callerID(ctx), &req); err != nil {
		return constants.Fail("Failed to update participant record", err)
	}

	return respondMessage(ctx, "Participant record updated successfully")
}

func (c *Controller) DeleteParticipant(ctx echo.Context) error {
	var req dto.DeleteParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.participants.Delete(ctx.Request().Context(), req.SN.Int64()); err != nil {
		return constants.Fail("Failed to delete participant record", err)
	}

	return respondMessage(ctx, "Participant record deleted successfully")
}
