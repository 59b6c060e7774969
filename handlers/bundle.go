package handlers

import (
	staffRepo "eccos/database/repository/staff"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// StaffRepo feeds the auth middleware's profile upserts.
	StaffRepo staffRepo.StaffRepository

	// Request endpoints.
	CreatePurchaseHandler    gin.HandlerFunc
	CreateSupportHandler     gin.HandlerFunc
	CreateReservationHandler gin.HandlerFunc
	ListMyRequestsHandler    gin.HandlerFunc
	GetRequestByIDHandler    gin.HandlerFunc
	CancelRequestHandler     gin.HandlerFunc

	// Message thread endpoints.
	PostMessageHandler  gin.HandlerFunc
	ListMessagesHandler gin.HandlerFunc

	// Availability endpoints.
	AvailabilityPreviewHandler gin.HandlerFunc
	ListOpenDatesHandler       gin.HandlerFunc

	// Device endpoints.
	UpdateFCMTokenHandler gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
