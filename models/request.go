package models

import "time"

// RequestType discriminates the three portal request kinds stored in the
// shared "requests" collection.
type RequestType string

const (
	RequestTypePurchase    RequestType = "purchase"
	RequestTypeReservation RequestType = "reservation"
	RequestTypeSupport     RequestType = "support"
)

// Status is the workflow state of a persisted request.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
)

// Request is one staff submission (purchase, reservation, or support).
// Exactly one of the type-specific payload pointers is non-nil, matching Type.
type Request struct {
	ID             string             `bson:"id" json:"id"`
	Type           RequestType        `bson:"type" json:"type"`
	RequesterID    string             `bson:"requester_id" json:"requesterId"`
	RequesterName  string             `bson:"requester_name" json:"requesterName"`
	RequesterEmail string             `bson:"requester_email" json:"requesterEmail"`
	Status         Status             `bson:"status" json:"status"`
	Purchase       *PurchaseDetails   `bson:"purchase,omitempty" json:"purchase,omitempty"`
	Reservation    *ReservationWindow `bson:"reservation,omitempty" json:"reservation,omitempty"`
	Support        *SupportDetails    `bson:"support,omitempty" json:"support,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`

	// UnreadMessages counts thread messages the caller has not read yet.
	// Filled on single-request reads, never persisted.
	UnreadMessages int64 `bson:"-" json:"unreadMessages"`
}

// Actor is the authenticated principal attached to each API call.
type Actor struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}
