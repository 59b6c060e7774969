package handlers

import (
	"net/http"

	staffRepo "eccos/database/repository/staff"
	"eccos/middleware"
	"eccos/models"
	"eccos/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler manages the caller's push-notification registration.
type DeviceHandler struct {
	Staff  staffRepo.StaffRepository
	Logger *zap.Logger
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(staff staffRepo.StaffRepository, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{Staff: staff, Logger: logger}
}

// UpdateFCMTokenHandler stores the caller's FCM device token.
func (dh *DeviceHandler) UpdateFCMTokenHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var input struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := dh.Staff.SetFCMToken(actor.UID, input.FCMToken); err != nil {
		dh.Logger.Error("Failed to update FCM token", zap.String("uid", actor.UID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update FCM token", "")
		return
	}
	c.Status(http.StatusNoContent)
}

// mustActor pulls the authenticated actor from the context, aborting with
// 401 when the auth middleware did not run.
func mustActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return models.Actor{}, false
	}
	return actor, true
}
