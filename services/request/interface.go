package request

import (
	messageRepo "eccos/database/repository/message"
	requestRepo "eccos/database/repository/request"
	"eccos/models"
	"eccos/services/calendar"
	"eccos/services/notification"
	"eccos/services/tasks"
)

// RequestService is the portal's request lifecycle: submission, listing,
// triage transitions, hard deletion, and the embedded message threads.
type RequestService interface {
	CreatePurchase(actor models.Actor, details models.PurchaseDetails) (*models.Request, error)
	CreateSupport(actor models.Actor, details models.SupportDetails) (*models.Request, error)
	// CreateReservation persists the request and returns any conflicts
	// detected at submission time; conflicts do not block creation, they
	// only force the pending-review path.
	CreateReservation(actor models.Actor, window models.ReservationWindow) (*models.Request, []models.Conflict, error)
	// PreviewConflicts runs the availability check without persisting.
	PreviewConflicts(window models.ReservationWindow) ([]models.Conflict, error)

	GetByID(actor models.Actor, id string) (*models.Request, error)
	ListMine(actor models.Actor) ([]models.Request, error)
	ListAll(filter requestRepo.Filter) ([]models.Request, error)

	Transition(actor models.Actor, id string, to models.Status) (*models.Request, error)
	Delete(actor models.Actor, id string) error

	PostMessage(actor models.Actor, requestID, body string) (*models.Message, error)
	ListMessages(actor models.Actor, requestID string) ([]models.Message, error)
}

// DefaultRequestService is the production implementation.
type DefaultRequestService struct {
	Repo      requestRepo.RequestRepository
	Locks     requestRepo.LockManager
	Messages  messageRepo.MessageRepository
	Calendar  calendar.CalendarService
	Notifier  notification.Notifier
	Reminders tasks.ReminderScheduler
}
