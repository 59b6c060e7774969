package models

import "time"

// OpenDate marks a calendar date as pre-opened for self-service,
// instant-approval reservations. Dates not present require manual approval.
type OpenDate struct {
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	OpenedBy  string    `bson:"opened_by" json:"openedBy"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
