package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"eccos/config"
	"eccos/models"

	"github.com/hibiken/asynq"
)

const TypeReservationReminder = "reminder:reservation"

// reminderLead is how long before the window start the reminder fires.
const reminderLead = 30 * time.Minute

// NewReservationReminderTask builds the asynq task for a reservation
// reminder, scheduled at fireAt.
func NewReservationReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues reservation reminders.
type ReminderScheduler interface {
	ScheduleReservationReminder(req *models.Request) error
}

// AsynqReminderScheduler is the production implementation over an asynq
// client backed by the reminder-queue Redis DB.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler from the app config.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReservationReminder enqueues a reminder 30 minutes before the
// reservation window starts. Windows already in the past are skipped.
func (s *AsynqReminderScheduler) ScheduleReservationReminder(req *models.Request) error {
	if req.Reservation == nil {
		return fmt.Errorf("request %s has no reservation window", req.ID)
	}

	day, err := time.ParseInLocation("2006-01-02", req.Reservation.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid reservation date %q: %w", req.Reservation.Date, err)
	}
	startAt := day.Add(time.Duration(req.Reservation.Start) * time.Minute)
	fireAt := startAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		RequestID: req.ID,
		TargetUID: req.RequesterID,
		Title:     "Upcoming reservation",
		Body:      fmt.Sprintf("Your reservation starts at %02d:%02d", req.Reservation.Start/60, req.Reservation.Start%60),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReservationReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for request %s: %w", req.ID, err)
	}
	return nil
}
