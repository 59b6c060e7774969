package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eccos/models"
	"eccos/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostMessage appends a message to a request's thread. Only the requester
// and administrators may write.
func (s *DefaultRequestService) PostMessage(actor models.Actor, requestID, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrInvalidInput)
	}

	req, err := s.getAuthorized(actor, requestID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		RequestID:  req.ID,
		SenderID:   actor.UID,
		SenderName: actor.Name,
		FromAdmin:  actor.Admin,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	if err := s.Messages.Append(msg); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.MessagePosted(context.Background(), req, msg); err != nil {
			utils.GetLogger().Warn("failed to notify about new message",
				zap.String("requestID", req.ID), zap.Error(err))
		}
	}
	return msg, nil
}

// ListMessages returns the thread and marks the other side's messages as
// read for this reader.
func (s *DefaultRequestService) ListMessages(actor models.Actor, requestID string) ([]models.Message, error) {
	req, err := s.getAuthorized(actor, requestID)
	if err != nil {
		return nil, err
	}

	messages, err := s.Messages.ListByRequest(req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.Messages.MarkRead(req.ID, actor.Admin); err != nil {
		utils.GetLogger().Warn("failed to mark thread read",
			zap.String("requestID", req.ID), zap.Error(err))
	}
	return messages, nil
}
