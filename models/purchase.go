package models

// PurchaseDetails is the payload of a purchase request.
type PurchaseDetails struct {
	ItemName       string   `bson:"item_name" json:"itemName"`
	Quantity       int      `bson:"quantity" json:"quantity"`
	EstimatedValue float64  `bson:"estimated_value,omitempty" json:"estimatedValue,omitempty"`
	Justification  string   `bson:"justification" json:"justification"`
	Urgency        string   `bson:"urgency,omitempty" json:"urgency,omitempty"` // e.g. "low", "normal", "high"
	AttachmentURLs []string `bson:"attachment_urls,omitempty" json:"attachmentUrls,omitempty"`
}
