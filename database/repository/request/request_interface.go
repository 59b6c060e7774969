package requestRepo

import "eccos/models"

// Filter narrows admin listings.
type Filter struct {
	Type        models.RequestType
	Status      models.Status
	RequesterID string
}

// RequestRepository defines persistence for portal requests and the
// reservation-store reads the availability engine's callers depend on.
type RequestRepository interface {
	Insert(req *models.Request) error
	GetByID(id string) (*models.Request, error)
	List(filter Filter) ([]models.Request, error)
	UpdateStatus(id string, status models.Status) error
	// Delete permanently removes the request document (hard delete).
	Delete(id string) error

	// ListWindowsForDate returns every reservation window dated date,
	// regardless of status, with Status and RequestID denormalized from the
	// owning request.
	ListWindowsForDate(date string) ([]models.ReservationWindow, error)

	// ResourceLabels resolves resource ids to catalog labels. Unknown ids
	// fall back to the id itself.
	ResourceLabels(ids []string) (map[string]string, error)
}

// LockManager serializes concurrent reservation submissions for the same
// (date, resource) pair via short-lived advisory lock documents.
type LockManager interface {
	// Acquire returns a release func, or ErrLockHeld when another
	// submission holds any of the requested pairs.
	Acquire(date string, resourceIDs []string) (func(), error)
}
