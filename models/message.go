package models

import "time"

// Message is one entry in a request's embedded discussion thread.
type Message struct {
	ID         string    `bson:"id" json:"id"`
	RequestID  string    `bson:"request_id" json:"requestId"`
	SenderID   string    `bson:"sender_id" json:"senderId"`
	SenderName string    `bson:"sender_name" json:"senderName"`
	FromAdmin  bool      `bson:"from_admin" json:"fromAdmin"`
	Body       string    `bson:"body" json:"body"`
	Read       bool      `bson:"read" json:"read"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
