package request

import (
	"errors"
	"testing"

	requestRepo "eccos/database/repository/request"
	"eccos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	requests map[string]*models.Request
	listErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[string]*models.Request)}
}

func (f *fakeRepo) Insert(req *models.Request) error {
	cp := *req
	f.requests[req.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(id string) (*models.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (f *fakeRepo) List(filter requestRepo.Filter) ([]models.Request, error) {
	var out []models.Request
	for _, req := range f.requests {
		if filter.RequesterID != "" && req.RequesterID != filter.RequesterID {
			continue
		}
		if filter.Type != "" && req.Type != filter.Type {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(id string, status models.Status) error {
	req, ok := f.requests[id]
	if !ok {
		return requestRepo.ErrRequestNotFound
	}
	req.Status = status
	return nil
}

func (f *fakeRepo) Delete(id string) error {
	if _, ok := f.requests[id]; !ok {
		return requestRepo.ErrRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeRepo) ListWindowsForDate(date string) ([]models.ReservationWindow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.ReservationWindow
	for _, req := range f.requests {
		if req.Reservation == nil || req.Reservation.Date != date {
			continue
		}
		w := *req.Reservation
		w.Status = req.Status
		w.RequestID = req.ID
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeRepo) ResourceLabels(ids []string) (map[string]string, error) {
	labels := make(map[string]string, len(ids))
	for _, id := range ids {
		labels[id] = "Label of " + id
	}
	return labels, nil
}

type fakeLocks struct {
	held     bool
	acquired int
	released int
}

func (f *fakeLocks) Acquire(date string, resourceIDs []string) (func(), error) {
	if f.held {
		return nil, requestRepo.ErrLockHeld
	}
	f.acquired++
	return func() { f.released++ }, nil
}

type fakeMessages struct {
	messages []models.Message
	marked   []bool
}

func (f *fakeMessages) Append(msg *models.Message) error {
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessages) ListByRequest(requestID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.messages {
		if m.RequestID == requestID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessages) MarkRead(requestID string, readerIsAdmin bool) error {
	f.marked = append(f.marked, readerIsAdmin)
	return nil
}

func (f *fakeMessages) UnreadCount(requestID string, readerIsAdmin bool) (int64, error) {
	var n int64
	for _, m := range f.messages {
		if m.RequestID == requestID && m.FromAdmin != readerIsAdmin && !m.Read {
			n++
		}
	}
	return n, nil
}

func (f *fakeMessages) DeleteThread(requestID string) error {
	var kept []models.Message
	for _, m := range f.messages {
		if m.RequestID != requestID {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

type fakeCalendar struct {
	open map[string]bool
}

func (f *fakeCalendar) IsDateOpen(date string) (bool, error)                { return f.open[date], nil }
func (f *fakeCalendar) ListRange(from, to string) ([]models.OpenDate, error) { return nil, nil }
func (f *fakeCalendar) OpenDate(date, adminUID string) error                { f.open[date] = true; return nil }
func (f *fakeCalendar) CloseDate(date string) error                         { delete(f.open, date); return nil }

type fakeReminders struct {
	scheduled []string
}

func (f *fakeReminders) ScheduleReservationReminder(req *models.Request) error {
	f.scheduled = append(f.scheduled, req.ID)
	return nil
}

var (
	admin = models.Actor{UID: "admin-1", Name: "Admin", Email: "admin@school.edu", Admin: true}
	staff = models.Actor{UID: "staff-1", Name: "Staff", Email: "staff@school.edu"}
)

func newService() (*DefaultRequestService, *fakeRepo, *fakeLocks, *fakeMessages, *fakeCalendar, *fakeReminders) {
	repo := newFakeRepo()
	locks := &fakeLocks{}
	msgs := &fakeMessages{}
	cal := &fakeCalendar{open: map[string]bool{}}
	rem := &fakeReminders{}
	svc := &DefaultRequestService{
		Repo:      repo,
		Locks:     locks,
		Messages:  msgs,
		Calendar:  cal,
		Reminders: rem,
	}
	return svc, repo, locks, msgs, cal, rem
}

func clearWindow() models.ReservationWindow {
	return models.ReservationWindow{
		Date:        "2025-03-10",
		Start:       540,
		End:         600,
		ResourceIDs: []string{"projector1"},
	}
}

func TestCreateReservationAutoApproved(t *testing.T) {
	svc, _, locks, _, cal, rem := newService()
	cal.open["2025-03-10"] = true

	req, conflicts, err := svc.CreateReservation(staff, clearWindow())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, models.StatusApproved, req.Status)
	assert.Equal(t, models.RequestTypeReservation, req.Type)
	assert.Equal(t, staff.UID, req.RequesterID)

	assert.Equal(t, 1, locks.acquired)
	assert.Equal(t, 1, locks.released)
	assert.Equal(t, []string{req.ID}, rem.scheduled)
}

func TestCreateReservationClosedDateGoesPending(t *testing.T) {
	svc, _, _, _, _, rem := newService()

	req, conflicts, err := svc.CreateReservation(staff, clearWindow())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, models.StatusPending, req.Status)
	assert.Empty(t, rem.scheduled)
}

func TestCreateReservationOutsideBusinessHoursGoesPending(t *testing.T) {
	svc, _, _, _, cal, _ := newService()
	cal.open["2025-03-10"] = true

	w := clearWindow()
	w.Start = 360 // 06:00, before business open
	w.End = 480

	req, _, err := svc.CreateReservation(staff, w)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, req.Status)
}

func TestCreateReservationWithConflictGoesPending(t *testing.T) {
	svc, _, _, _, cal, rem := newService()
	cal.open["2025-03-10"] = true

	first, _, err := svc.CreateReservation(staff, clearWindow())
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, first.Status)

	overlapping := clearWindow()
	overlapping.Start = 570
	overlapping.End = 630

	second, conflicts, err := svc.CreateReservation(staff, overlapping)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "projector1", conflicts[0].ResourceID)
	assert.Equal(t, "Label of projector1", conflicts[0].ResourceLabel)
	assert.Equal(t, first.ID, conflicts[0].RequestID)
	assert.Equal(t, models.StatusPending, second.Status)

	// Only the auto-approved request got a reminder.
	assert.Equal(t, []string{first.ID}, rem.scheduled)
}

func TestCreateReservationTouchingBoundaryStillApproved(t *testing.T) {
	svc, _, _, _, cal, _ := newService()
	cal.open["2025-03-10"] = true

	_, _, err := svc.CreateReservation(staff, clearWindow())
	require.NoError(t, err)

	adjacent := clearWindow()
	adjacent.Start = 600
	adjacent.End = 660

	req, conflicts, err := svc.CreateReservation(staff, adjacent)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, models.StatusApproved, req.Status)
}

func TestCreateReservationLockHeld(t *testing.T) {
	svc, _, locks, _, _, _ := newService()
	locks.held = true

	_, _, err := svc.CreateReservation(staff, clearWindow())
	assert.ErrorIs(t, err, requestRepo.ErrLockHeld)
}

func TestCreateReservationFailsOnPartialSnapshot(t *testing.T) {
	svc, repo, _, _, cal, _ := newService()
	cal.open["2025-03-10"] = true
	repo.listErr = errors.New("store unavailable")

	_, _, err := svc.CreateReservation(staff, clearWindow())
	require.Error(t, err)
	// Must never approve on incomplete information.
	assert.Empty(t, repo.requests)
}

func TestCreateReservationInvalidInput(t *testing.T) {
	svc, _, _, _, _, _ := newService()

	w := clearWindow()
	w.End = w.Start
	_, _, err := svc.CreateReservation(staff, w)
	assert.ErrorIs(t, err, ErrInvalidInput)

	w = clearWindow()
	w.ResourceIDs = nil
	_, _, err = svc.CreateReservation(staff, w)
	assert.ErrorIs(t, err, ErrInvalidInput)

	w = clearWindow()
	w.Date = "10/03/2025"
	_, _, err = svc.CreateReservation(staff, w)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPreviewConflictsDoesNotPersist(t *testing.T) {
	svc, repo, _, _, cal, _ := newService()
	cal.open["2025-03-10"] = true

	conflicts, err := svc.PreviewConflicts(clearWindow())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Empty(t, repo.requests)
}

func TestCreatePurchaseValidation(t *testing.T) {
	svc, _, _, _, _, _ := newService()

	_, err := svc.CreatePurchase(staff, models.PurchaseDetails{Quantity: 1, Justification: "j"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreatePurchase(staff, models.PurchaseDetails{ItemName: "HDMI cable", Justification: "j"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	req, err := svc.CreatePurchase(staff, models.PurchaseDetails{
		ItemName:      "HDMI cable",
		Quantity:      3,
		Justification: "replacements for lab 2",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, req.Status)
	assert.Equal(t, models.RequestTypePurchase, req.Type)
}

func TestTransitionRules(t *testing.T) {
	svc, _, _, _, _, rem := newService()

	req, err := svc.CreateSupport(staff, models.SupportDetails{Category: "hardware", Description: "screen flickers"})
	require.NoError(t, err)

	// Requester cannot approve their own request.
	_, err = svc.Transition(staff, req.ID, models.StatusApproved)
	assert.ErrorIs(t, err, ErrForbidden)

	// Admin can.
	updated, err := svc.Transition(admin, req.ID, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)

	// Requester can cancel their own active request.
	updated, err = svc.Transition(staff, req.ID, models.StatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCanceled, updated.Status)

	// Unknown status is rejected outright.
	_, err = svc.Transition(admin, req.ID, models.Status("archived"))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Support tickets never get reservation reminders.
	assert.Empty(t, rem.scheduled)
}

func TestApprovingReservationSchedulesReminder(t *testing.T) {
	svc, _, _, _, _, rem := newService()

	req, _, err := svc.CreateReservation(staff, clearWindow()) // closed date -> pending
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, req.Status)
	require.Empty(t, rem.scheduled)

	_, err = svc.Transition(admin, req.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, []string{req.ID}, rem.scheduled)
}

func TestDeleteIsAdminOnlyAndHard(t *testing.T) {
	svc, repo, _, msgs, _, _ := newService()

	req, err := svc.CreateSupport(staff, models.SupportDetails{Category: "network", Description: "no wifi"})
	require.NoError(t, err)
	_, err = svc.PostMessage(staff, req.ID, "any update?")
	require.NoError(t, err)

	err = svc.Delete(staff, req.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(admin, req.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.requests)
	assert.Empty(t, msgs.messages)

	err = svc.Delete(admin, req.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageThreadAccessAndRead(t *testing.T) {
	svc, _, _, msgs, _, _ := newService()
	req, err := svc.CreateSupport(staff, models.SupportDetails{Category: "software", Description: "license expired"})
	require.NoError(t, err)

	// A different non-admin user cannot touch the thread.
	stranger := models.Actor{UID: "staff-2", Name: "Other"}
	_, err = svc.PostMessage(stranger, req.ID, "hi")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.ListMessages(stranger, req.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	msg, err := svc.PostMessage(admin, req.ID, "we ordered a new license")
	require.NoError(t, err)
	assert.True(t, msg.FromAdmin)

	thread, err := svc.ListMessages(staff, req.ID)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, "we ordered a new license", thread[0].Body)
	// Reading as the requester marks the admin's messages read.
	assert.Equal(t, []bool{false}, msgs.marked)
}

func TestGetByIDAttachesUnreadCount(t *testing.T) {
	svc, _, _, _, _, _ := newService()
	req, err := svc.CreateSupport(staff, models.SupportDetails{Category: "hardware", Description: "projector flickers"})
	require.NoError(t, err)

	_, err = svc.PostMessage(admin, req.ID, "swapping the bulb today")
	require.NoError(t, err)

	got, err := svc.GetByID(staff, req.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UnreadMessages)

	// The admin already wrote the message, nothing unread on their side.
	gotAdmin, err := svc.GetByID(admin, req.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gotAdmin.UnreadMessages)
}
