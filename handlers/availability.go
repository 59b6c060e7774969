package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"eccos/models"
	calendarSvc "eccos/services/calendar"
	"eccos/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityPreviewHandler runs the conflict check for a prospective
// window without persisting anything. Query params: date, resources
// (comma-separated), start, end.
func (h *RequestHandler) AvailabilityPreviewHandler(c *gin.Context) {
	start, err := strconv.Atoi(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start must be minutes from midnight")
		return
	}
	end, err := strconv.Atoi(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "end must be minutes from midnight")
		return
	}

	var resources []string
	for _, id := range strings.Split(c.Query("resources"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			resources = append(resources, id)
		}
	}

	window := models.ReservationWindow{
		Date:        c.Query("date"),
		Start:       start,
		End:         end,
		ResourceIDs: resources,
	}
	conflicts, err := h.Service.PreviewConflicts(window)
	if err != nil {
		h.respondServiceError(c, err, "failed to check availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": len(conflicts) == 0,
		"conflicts": conflicts,
	})
}

// CalendarHandler serves availability-calendar reads.
type CalendarHandler struct {
	Service calendarSvc.CalendarService
	Logger  *zap.Logger
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(svc calendarSvc.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Service: svc, Logger: logger}
}

// ListOpenDatesHandler returns open dates in [from, to].
func (h *CalendarHandler) ListOpenDatesHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "from and to are required (YYYY-MM-DD)")
		return
	}

	dates, err := h.Service.ListRange(from, to)
	if err != nil {
		h.Logger.Error("failed to list calendar dates", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list calendar dates", "")
		return
	}
	c.JSON(http.StatusOK, dates)
}
