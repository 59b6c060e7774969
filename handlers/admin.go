// File: eccos/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	calendarRepo "eccos/database/repository/calendar"
	requestRepo "eccos/database/repository/request"
	"eccos/models"
	calendarSvc "eccos/services/calendar"
	"eccos/services/request"
	"eccos/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Requests request.RequestService
	Calendar calendarSvc.CalendarService
	Logger   *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(requests request.RequestService, cal calendarSvc.CalendarService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Requests: requests,
		Calendar: cal,
		Logger:   logger,
	}
}

// ListRequestsHandler returns all requests, optionally filtered by type,
// status, and requester.
func (ah *AdminHandler) ListRequestsHandler(c *gin.Context) {
	filter := requestRepo.Filter{
		Type:        models.RequestType(c.Query("type")),
		Status:      models.Status(c.Query("status")),
		RequesterID: c.Query("requesterId"),
	}
	requests, err := ah.Requests.ListAll(filter)
	if err != nil {
		ah.Logger.Error("Failed to list requests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list requests", "")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// UpdateStatusHandler moves a request to a new workflow status.
func (ah *AdminHandler) UpdateStatusHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var input struct {
		Status models.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, err := ah.Requests.Transition(actor, c.Param("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "request not found", "")
		case errors.Is(err, request.ErrForbidden):
			utils.JSONError(c, http.StatusForbidden, "access denied", "")
		case errors.Is(err, request.ErrInvalidTransition):
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid status transition", err.Error())
		default:
			ah.Logger.Error("Failed to update status", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to update status", "")
		}
		return
	}
	c.JSON(http.StatusOK, req)
}

// DeleteRequestHandler hard-deletes a request and its message thread.
func (ah *AdminHandler) DeleteRequestHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := ah.Requests.Delete(actor, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, request.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "request not found", "")
		case errors.Is(err, request.ErrForbidden):
			utils.JSONError(c, http.StatusForbidden, "access denied", "")
		default:
			ah.Logger.Error("Failed to delete request", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to delete request", "")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// OpenCalendarDateHandler marks a date open for instant self-service booking.
func (ah *AdminHandler) OpenCalendarDateHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := ah.Calendar.OpenDate(c.Param("date"), actor.UID); err != nil {
		ah.Logger.Error("Failed to open calendar date", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to open calendar date", "")
		return
	}
	c.Status(http.StatusNoContent)
}

// CloseCalendarDateHandler removes a date from the open set.
func (ah *AdminHandler) CloseCalendarDateHandler(c *gin.Context) {
	if err := ah.Calendar.CloseDate(c.Param("date")); err != nil {
		if errors.Is(err, calendarRepo.ErrDateNotOpen) {
			utils.JSONError(c, http.StatusNotFound, "calendar date is not open", "")
			return
		}
		ah.Logger.Error("Failed to close calendar date", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to close calendar date", "")
		return
	}
	c.Status(http.StatusNoContent)
}
