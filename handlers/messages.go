package handlers

import (
	"net/http"

	"eccos/utils"

	"github.com/gin-gonic/gin"
)

// PostMessageHandler appends a message to a request's thread.
func (h *RequestHandler) PostMessageHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var input struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	msg, err := h.Service.PostMessage(actor, c.Param("id"), input.Body)
	if err != nil {
		h.respondServiceError(c, err, "failed to post message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMessagesHandler returns a request's thread and marks it read for the
// caller's side.
func (h *RequestHandler) ListMessagesHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	messages, err := h.Service.ListMessages(actor, c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "failed to list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}
