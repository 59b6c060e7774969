package handlers

import (
	"errors"
	"net/http"

	requestRepo "eccos/database/repository/request"
	"eccos/models"
	"eccos/services/request"
	"eccos/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestHandler serves the staff-facing request endpoints.
type RequestHandler struct {
	Service request.RequestService
	Logger  *zap.Logger
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(svc request.RequestService, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{Service: svc, Logger: logger}
}

// CreatePurchaseHandler submits a purchase request.
func (h *RequestHandler) CreatePurchaseHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var details models.PurchaseDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, err := h.Service.CreatePurchase(actor, details)
	if err != nil {
		h.respondServiceError(c, err, "failed to create purchase request")
		return
	}
	c.JSON(http.StatusCreated, req)
}

// CreateSupportHandler submits a support ticket.
func (h *RequestHandler) CreateSupportHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var details models.SupportDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, err := h.Service.CreateSupport(actor, details)
	if err != nil {
		h.respondServiceError(c, err, "failed to create support ticket")
		return
	}
	c.JSON(http.StatusCreated, req)
}

// CreateReservationHandler submits a reservation request. The response
// carries any conflicts detected at submission time so the client can render
// the itemized resource/time lines.
func (h *RequestHandler) CreateReservationHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var window models.ReservationWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	req, conflicts, err := h.Service.CreateReservation(actor, window)
	if err != nil {
		h.respondServiceError(c, err, "failed to create reservation request")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"request":   req,
		"conflicts": conflicts,
	})
}

// ListMyRequestsHandler returns the caller's own requests.
func (h *RequestHandler) ListMyRequestsHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	requests, err := h.Service.ListMine(actor)
	if err != nil {
		h.Logger.Error("failed to list requests", zap.String("uid", actor.UID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list requests", "")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// CancelRequestHandler lets the requester withdraw their own still-active
// request. The workflow guard enforces ownership and rejects terminal states.
func (h *RequestHandler) CancelRequestHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	req, err := h.Service.Transition(actor, c.Param("id"), models.StatusCanceled)
	if err != nil {
		h.respondServiceError(c, err, "failed to cancel request")
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetRequestByIDHandler returns one request (owner or admin).
func (h *RequestHandler) GetRequestByIDHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	req, err := h.Service.GetByID(actor, c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "failed to fetch request")
		return
	}
	c.JSON(http.StatusOK, req)
}

// respondServiceError maps service sentinels to HTTP statuses.
func (h *RequestHandler) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, request.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, request.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "request not found", "")
	case errors.Is(err, request.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "access denied", "")
	case errors.Is(err, request.ErrInvalidTransition):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid status transition", err.Error())
	case errors.Is(err, requestRepo.ErrLockHeld):
		utils.JSONError(c, http.StatusConflict, "slot is being booked by another request", "Please retry in a moment.")
	default:
		h.Logger.Error(fallback, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, fallback, "")
	}
}
