package models

// ReminderPayload is the asynq task payload for a scheduled reservation
// reminder push.
type ReminderPayload struct {
	RequestID string `json:"requestId"`
	TargetUID string `json:"targetUid"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}

// StaffProfile holds the per-user push target and role flag, keyed by the
// identity provider UID.
type StaffProfile struct {
	UID      string `bson:"uid" json:"uid"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Admin    bool   `bson:"admin" json:"admin"`
	FCMToken string `bson:"fcm_token,omitempty" json:"fcmToken,omitempty"`
}
