package models

// ReservationWindow is one equipment/room booking for a single day.
type ReservationWindow struct {
	Date        string   `bson:"date" json:"date"`               // "YYYY-MM-DD", no time-of-day component
	Start       int      `bson:"start" json:"start"`             // minutes from midnight, [0, 1440)
	End         int      `bson:"end" json:"end"`                 // minutes from midnight, Start < End
	ResourceIDs []string `bson:"resource_ids" json:"resourceIds"`
	Purpose     string   `bson:"purpose,omitempty" json:"purpose,omitempty"`
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`

	// Status mirrors the owning request's status; populated on windows
	// returned by ListWindowsForDate so the availability engine can tell
	// blocking windows apart. Never persisted on the embedded document.
	Status Status `bson:"-" json:"status,omitempty"`

	// RequestID identifies the owning request on windows returned by
	// ListWindowsForDate.
	RequestID string `bson:"-" json:"requestId,omitempty"`
}

// Conflict reports one overlap between a candidate window and an existing
// blocking window, per shared resource.
type Conflict struct {
	ResourceID    string `json:"resourceId"`
	ResourceLabel string `json:"resourceLabel"`
	RequestID     string `json:"requestId,omitempty"`
	Date          string `json:"date"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
}

// Resource is a bookable equipment/room entry from the resources catalog.
type Resource struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
}
