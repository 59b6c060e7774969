package request

import (
	"context"
	"fmt"

	"eccos/models"
	"eccos/services/workflow"
	"eccos/utils"

	"go.uber.org/zap"
)

// Transition moves a request to a new status if the workflow guard permits
// the actor's move. Approving a reservation schedules its reminder.
func (s *DefaultRequestService) Transition(actor models.Actor, id string, to models.Status) (*models.Request, error) {
	req, err := s.getAuthorized(actor, id)
	if err != nil {
		return nil, err
	}

	if !workflow.Valid(to) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if !workflow.CanTransition(actor, req.RequesterID, req.Status, to) {
		return nil, ErrForbidden
	}

	from := req.Status
	if err := s.Repo.UpdateStatus(id, to); err != nil {
		return nil, err
	}
	req.Status = to

	if s.Notifier != nil && actor.UID != req.RequesterID {
		if err := s.Notifier.StatusChanged(context.Background(), req, from, to); err != nil {
			utils.GetLogger().Warn("failed to notify requester of status change",
				zap.String("requestID", req.ID), zap.Error(err))
		}
	}
	if to == models.StatusApproved && req.Type == models.RequestTypeReservation {
		s.scheduleReminder(req)
	}
	return req, nil
}

// Delete permanently removes a request and its message thread. Admin only;
// there is no soft delete.
func (s *DefaultRequestService) Delete(actor models.Actor, id string) error {
	if !actor.Admin {
		return ErrForbidden
	}
	if _, err := s.getAuthorized(actor, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if err := s.Messages.DeleteThread(id); err != nil {
		// The request itself is gone; orphaned messages are only noise.
		utils.GetLogger().Warn("failed to delete message thread",
			zap.String("requestID", id), zap.Error(err))
	}
	return nil
}
