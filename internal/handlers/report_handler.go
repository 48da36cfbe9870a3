package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/samuraihq/samurai-backend/internal/dto"
	"github.com/samuraihq/samurai-backend/internal/services"
)

type ReportHandler struct {
	actions *services.ActionService
}

func NewReportHandler(actions *services.ActionService) *ReportHandler {
	return &ReportHandler{actions: actions}
}

// Report handles POST /report - records a single user action.
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Action == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "action and email are required",
		})
	}

	row, err := h.actions.Create(req.Action, req.Email, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrFieldTooLong) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("failed to record action", "error", err, "email", req.Email)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to record action",
		})
	}

	return c.JSON(dto.ReportResponse{ID: row.ID, Status: "success"})
}
