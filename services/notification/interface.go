// Package notification is the portal's seam to the push-delivery
// collaborator. Services talk to the Notifier interface only; the FCM
// implementation lives behind it.
package notification

import (
	"context"
	"fmt"

	staffRepo "eccos/database/repository/staff"
	"eccos/models"
	"eccos/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Notifier defines the portal's notification events.
type Notifier interface {
	// RequestSubmitted alerts administrators about a new submission.
	RequestSubmitted(ctx context.Context, req *models.Request) error
	// StatusChanged alerts the requester that an admin moved their request.
	StatusChanged(ctx context.Context, req *models.Request, from, to models.Status) error
	// MessagePosted alerts the other side of a thread about a new message.
	MessagePosted(ctx context.Context, req *models.Request, msg *models.Message) error
	// Push sends a direct notification to one staff member (reminders).
	Push(ctx context.Context, uid, title, body string, data map[string]string) error
}

// FCMNotifier is the production implementation on Firebase Cloud Messaging.
type FCMNotifier struct {
	Staff staffRepo.StaffRepository
}

func (n *FCMNotifier) RequestSubmitted(ctx context.Context, req *models.Request) error {
	admins, err := n.Staff.ListAdmins()
	if err != nil {
		return fmt.Errorf("RequestSubmitted: could not list admins: %w", err)
	}

	title := "New " + string(req.Type) + " request"
	body := fmt.Sprintf("%s submitted a %s request", req.RequesterName, req.Type)
	data := map[string]string{"type": "request_submitted", "requestId": req.ID}

	for _, admin := range admins {
		if admin.FCMToken == "" {
			continue
		}
		if err := n.send(ctx, admin.FCMToken, title, body, data); err != nil {
			utils.GetLogger().Warn("RequestSubmitted: push failed",
				zap.String("adminUID", admin.UID), zap.Error(err))
		}
	}
	return nil
}

func (n *FCMNotifier) StatusChanged(ctx context.Context, req *models.Request, from, to models.Status) error {
	title := "Request " + string(to)
	body := fmt.Sprintf("Your %s request moved from %s to %s", req.Type, from, to)
	return n.Push(ctx, req.RequesterID, title, body, map[string]string{
		"type":      "status_changed",
		"requestId": req.ID,
		"status":    string(to),
	})
}

func (n *FCMNotifier) MessagePosted(ctx context.Context, req *models.Request, msg *models.Message) error {
	data := map[string]string{"type": "message_posted", "requestId": req.ID}
	body := msg.SenderName + ": " + msg.Body

	if msg.FromAdmin {
		return n.Push(ctx, req.RequesterID, "New reply on your request", body, data)
	}

	admins, err := n.Staff.ListAdmins()
	if err != nil {
		return fmt.Errorf("MessagePosted: could not list admins: %w", err)
	}
	for _, admin := range admins {
		if admin.FCMToken == "" {
			continue
		}
		if err := n.send(ctx, admin.FCMToken, "New request message", body, data); err != nil {
			utils.GetLogger().Warn("MessagePosted: push failed",
				zap.String("adminUID", admin.UID), zap.Error(err))
		}
	}
	return nil
}

// Push looks up the staff member's FCM token and sends a push.
func (n *FCMNotifier) Push(ctx context.Context, uid, title, body string, data map[string]string) error {
	profile, err := n.Staff.GetByUID(uid)
	if err != nil {
		return fmt.Errorf("Push: could not find staff profile %s: %w", uid, err)
	}
	if profile.FCMToken == "" {
		// No registered device; not an error worth surfacing.
		return nil
	}
	return n.send(ctx, profile.FCMToken, title, body, data)
}

func (n *FCMNotifier) send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
