package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eccos/models"
	"eccos/services/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubRequestService overrides the one method under test; everything else
// panics if reached.
type stubRequestService struct {
	request.RequestService
	transition func(actor models.Actor, id string, to models.Status) (*models.Request, error)
}

func (s *stubRequestService) Transition(actor models.Actor, id string, to models.Status) (*models.Request, error) {
	return s.transition(actor, id, to)
}

func cancelRouter(svc request.RequestService, actor models.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRequestHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/requests/:id/cancel",
		func(c *gin.Context) { c.Set("actor", actor) },
		h.CancelRequestHandler,
	)
	return r
}

func TestCancelRequestHandler(t *testing.T) {
	var gotActor models.Actor
	var gotID string
	var gotStatus models.Status
	svc := &stubRequestService{
		transition: func(actor models.Actor, id string, to models.Status) (*models.Request, error) {
			gotActor, gotID, gotStatus = actor, id, to
			return &models.Request{ID: id, Status: to}, nil
		},
	}

	r := cancelRouter(svc, models.Actor{UID: "staff-1", Name: "Pat"})
	req := httptest.NewRequest(http.MethodPost, "/api/requests/req-1/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "staff-1", gotActor.UID)
	assert.Equal(t, "req-1", gotID)
	assert.Equal(t, models.StatusCanceled, gotStatus)
}

func TestCancelRequestHandlerForbidden(t *testing.T) {
	svc := &stubRequestService{
		transition: func(actor models.Actor, id string, to models.Status) (*models.Request, error) {
			return nil, request.ErrForbidden
		},
	}

	r := cancelRouter(svc, models.Actor{UID: "stranger"})
	req := httptest.NewRequest(http.MethodPost, "/api/requests/req-1/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
