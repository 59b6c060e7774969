package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	requestRepo "eccos/database/repository/request"
	"eccos/models"
	"eccos/services/availability"
	"eccos/services/workflow"
	"eccos/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePurchase submits a purchase request. Purchases always await manual
// triage, so the initial status is pending.
func (s *DefaultRequestService) CreatePurchase(actor models.Actor, details models.PurchaseDetails) (*models.Request, error) {
	if strings.TrimSpace(details.ItemName) == "" {
		return nil, fmt.Errorf("%w: itemName is required", ErrInvalidInput)
	}
	if details.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(details.Justification) == "" {
		return nil, fmt.Errorf("%w: justification is required", ErrInvalidInput)
	}

	req := s.newRequest(actor, models.RequestTypePurchase, models.StatusPending)
	req.Purchase = &details
	if err := s.Repo.Insert(req); err != nil {
		return nil, err
	}
	s.notifySubmitted(req)
	return req, nil
}

// CreateSupport submits a support ticket; always pending initially.
func (s *DefaultRequestService) CreateSupport(actor models.Actor, details models.SupportDetails) (*models.Request, error) {
	if strings.TrimSpace(details.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if strings.TrimSpace(details.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	req := s.newRequest(actor, models.RequestTypeSupport, models.StatusPending)
	req.Support = &details
	if err := s.Repo.Insert(req); err != nil {
		return nil, err
	}
	s.notifySubmitted(req)
	return req, nil
}

// CreateReservation runs the availability engine over a same-date snapshot of
// existing windows and persists the request with the decided initial status.
// Advisory locks on each (date, resource) pair serialize concurrent
// submissions for the same slot.
func (s *DefaultRequestService) CreateReservation(actor models.Actor, window models.ReservationWindow) (*models.Request, []models.Conflict, error) {
	if err := validateWindowInput(window); err != nil {
		return nil, nil, err
	}

	release, err := s.Locks.Acquire(window.Date, window.ResourceIDs)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	conflicts, err := s.checkConflicts(window)
	if err != nil {
		return nil, nil, err
	}

	open, err := s.Calendar.IsDateOpen(window.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read availability calendar: %w", err)
	}
	calendar := availability.DateSet{}
	if open {
		calendar = availability.NewDateSet(window.Date)
	}
	decision := availability.DecideAutoApproval(window, calendar, conflicts)

	req := s.newRequest(actor, models.RequestTypeReservation, workflow.Initial(decision))
	req.Reservation = &window
	if err := s.Repo.Insert(req); err != nil {
		return nil, nil, err
	}

	s.notifySubmitted(req)
	if req.Status == models.StatusApproved {
		s.scheduleReminder(req)
	}
	return req, conflicts, nil
}

// PreviewConflicts reports conflicts for a not-yet-submitted window.
func (s *DefaultRequestService) PreviewConflicts(window models.ReservationWindow) ([]models.Conflict, error) {
	if err := validateWindowInput(window); err != nil {
		return nil, err
	}
	return s.checkConflicts(window)
}

// checkConflicts fetches the same-date snapshot and runs the engine. A failed
// fetch fails the whole operation; missing data is never "no conflicts".
func (s *DefaultRequestService) checkConflicts(window models.ReservationWindow) ([]models.Conflict, error) {
	existing, err := s.Repo.ListWindowsForDate(window.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing reservations: %w", err)
	}

	labels, err := s.Repo.ResourceLabels(window.ResourceIDs)
	if err != nil {
		// Labels are presentational; degrade to raw ids.
		utils.GetLogger().Warn("resource label lookup failed",
			zap.String("date", window.Date), zap.Error(err))
		labels = nil
	}
	labeler := func(id string) string {
		if label, ok := labels[id]; ok {
			return label
		}
		return id
	}

	conflicts, err := availability.FindConflicts(window, existing, labeler)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidWindow) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}
	return conflicts, nil
}

// GetByID returns the request if the actor owns it or is an admin, with the
// actor's unread message count attached.
func (s *DefaultRequestService) GetByID(actor models.Actor, id string) (*models.Request, error) {
	req, err := s.getAuthorized(actor, id)
	if err != nil {
		return nil, err
	}
	if unread, err := s.Messages.UnreadCount(req.ID, actor.Admin); err != nil {
		utils.GetLogger().Warn("failed to count unread messages",
			zap.String("requestID", req.ID), zap.Error(err))
	} else {
		req.UnreadMessages = unread
	}
	return req, nil
}

func (s *DefaultRequestService) getAuthorized(actor models.Actor, id string) (*models.Request, error) {
	req, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.Admin && actor.UID != req.RequesterID {
		return nil, ErrForbidden
	}
	return req, nil
}

// ListMine returns the actor's own requests, newest first.
func (s *DefaultRequestService) ListMine(actor models.Actor) ([]models.Request, error) {
	return s.Repo.List(requestRepo.Filter{RequesterID: actor.UID})
}

// ListAll returns requests matching the filter. Route-level admin gating is
// assumed.
func (s *DefaultRequestService) ListAll(filter requestRepo.Filter) ([]models.Request, error) {
	return s.Repo.List(filter)
}

func (s *DefaultRequestService) newRequest(actor models.Actor, typ models.RequestType, status models.Status) *models.Request {
	now := time.Now()
	return &models.Request{
		ID:             uuid.New().String(),
		Type:           typ,
		RequesterID:    actor.UID,
		RequesterName:  actor.Name,
		RequesterEmail: actor.Email,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *DefaultRequestService) notifySubmitted(req *models.Request) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.RequestSubmitted(context.Background(), req); err != nil {
		utils.GetLogger().Warn("failed to notify admins of submission",
			zap.String("requestID", req.ID), zap.Error(err))
	}
}

func (s *DefaultRequestService) scheduleReminder(req *models.Request) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleReservationReminder(req); err != nil {
		utils.GetLogger().Warn("failed to schedule reservation reminder",
			zap.String("requestID", req.ID), zap.Error(err))
	}
}

func validateWindowInput(w models.ReservationWindow) error {
	if _, err := time.Parse("2006-01-02", w.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if w.Start < 0 || w.End >= 1440 {
		return fmt.Errorf("%w: minutes must lie within [0, 1440)", ErrInvalidInput)
	}
	if w.Start >= w.End {
		return fmt.Errorf("%w: start must precede end", ErrInvalidInput)
	}
	if len(w.ResourceIDs) == 0 {
		return fmt.Errorf("%w: at least one resource is required", ErrInvalidInput)
	}
	return nil
}
