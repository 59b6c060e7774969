package models

// SupportDetails is the payload of a support ticket.
type SupportDetails struct {
	Category       string   `bson:"category" json:"category"` // e.g. "hardware", "network", "software"
	Location       string   `bson:"location,omitempty" json:"location,omitempty"`
	DeviceID       string   `bson:"device_id,omitempty" json:"deviceId,omitempty"`
	Description    string   `bson:"description" json:"description"`
	Priority       string   `bson:"priority,omitempty" json:"priority,omitempty"`
	AttachmentURLs []string `bson:"attachment_urls,omitempty" json:"attachmentUrls,omitempty"`
}
