package availability

import (
	"testing"

	"eccos/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(date string, start, end int, status models.Status, resources ...string) models.ReservationWindow {
	return models.ReservationWindow{
		Date:        date,
		Start:       start,
		End:         end,
		ResourceIDs: resources,
		Status:      status,
	}
}

func TestFindConflictsDetectsOverlapOnSharedResource(t *testing.T) {
	existing := []models.ReservationWindow{
		window("2025-03-10", 540, 600, models.StatusApproved, "projector1"),
	}
	candidate := window("2025-03-10", 570, 630, models.StatusPending, "projector1")

	conflicts, err := FindConflicts(candidate, existing, nil)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "projector1", conflicts[0].ResourceID)
	assert.Equal(t, 540, conflicts[0].Start)
	assert.Equal(t, 600, conflicts[0].End)
}

func TestFindConflictsTouchingBoundaryDoesNotConflict(t *testing.T) {
	existing := []models.ReservationWindow{
		window("2025-03-10", 540, 600, models.StatusApproved, "projector1"),
	}
	candidate := window("2025-03-10", 600, 660, models.StatusPending, "projector1")

	conflicts, err := FindConflicts(candidate, existing, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsIgnoresOtherDatesResourcesAndNonBlockingStatuses(t *testing.T) {
	candidate := window("2025-03-10", 540, 600, models.StatusPending, "projector1")
	existing := []models.ReservationWindow{
		window("2025-03-11", 540, 600, models.StatusApproved, "projector1"), // other date
		window("2025-03-10", 540, 600, models.StatusApproved, "camera2"),    // other resource
		window("2025-03-10", 540, 600, models.StatusRejected, "projector1"), // non-blocking
		window("2025-03-10", 540, 600, models.StatusCanceled, "projector1"), // non-blocking
		window("2025-03-10", 540, 600, models.StatusCompleted, "projector1"),
	}

	conflicts, err := FindConflicts(candidate, existing, nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflictsPendingWindowsBlock(t *testing.T) {
	candidate := window("2025-03-10", 540, 600, models.StatusPending, "projector1")
	existing := []models.ReservationWindow{
		window("2025-03-10", 530, 550, models.StatusPending, "projector1"),
	}

	conflicts, err := FindConflicts(candidate, existing, nil)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflictsOneConflictPerSharedResource(t *testing.T) {
	candidate := window("2025-03-10", 540, 600, models.StatusPending, "projector1", "room-a")
	existing := []models.ReservationWindow{
		window("2025-03-10", 550, 620, models.StatusApproved, "projector1", "room-a", "camera2"),
	}

	conflicts, err := FindConflicts(candidate, existing, nil)
	require.NoError(t, err)
	require.Len(t, conflicts, 2)

	ids := []string{conflicts[0].ResourceID, conflicts[1].ResourceID}
	assert.ElementsMatch(t, []string{"projector1", "room-a"}, ids)
}

func TestFindConflictsUsesCallerSuppliedLabels(t *testing.T) {
	labels := map[string]string{"projector1": "Projector (room 12)"}
	candidate := window("2025-03-10", 540, 600, models.StatusPending, "projector1")
	existing := []models.ReservationWindow{
		window("2025-03-10", 550, 620, models.StatusApproved, "projector1"),
	}

	conflicts, err := FindConflicts(candidate, existing, func(id string) string { return labels[id] })
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "Projector (room 12)", conflicts[0].ResourceLabel)
}

func TestFindConflictsOverlapIsSymmetric(t *testing.T) {
	a := window("2025-03-10", 540, 600, models.StatusApproved, "projector1")
	b := window("2025-03-10", 570, 630, models.StatusApproved, "projector1")

	ab, err := FindConflicts(a, []models.ReservationWindow{b}, nil)
	require.NoError(t, err)
	ba, err := FindConflicts(b, []models.ReservationWindow{a}, nil)
	require.NoError(t, err)

	assert.Equal(t, len(ab) > 0, len(ba) > 0)
}

func TestFindConflictsInvalidWindow(t *testing.T) {
	existing := []models.ReservationWindow{}

	_, err := FindConflicts(window("2025-03-10", 600, 600, models.StatusPending, "r1"), existing, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = FindConflicts(window("2025-03-10", 660, 600, models.StatusPending, "r1"), existing, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = FindConflicts(window("2025-03-10", 540, 600, models.StatusPending), existing, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestDecideAutoApproval(t *testing.T) {
	calendar := NewDateSet("2025-03-10")
	candidate := window("2025-03-10", 540, 600, models.StatusPending, "projector1")
	conflict := []models.Conflict{{ResourceID: "projector1", Date: "2025-03-10", Start: 540, End: 600}}

	tests := []struct {
		name      string
		candidate models.ReservationWindow
		calendar  DateSet
		conflicts []models.Conflict
		want      Decision
	}{
		{"all conditions met", candidate, calendar, nil, DecisionApproved},
		{"conflicts force review", candidate, calendar, conflict, DecisionPendingReview},
		{"date not open", window("2025-03-11", 540, 600, models.StatusPending, "projector1"), calendar, nil, DecisionPendingReview},
		{"starts before business open", window("2025-03-10", 400, 600, models.StatusPending, "projector1"), calendar, nil, DecisionPendingReview},
		{"ends after business close", window("2025-03-10", 540, 1200, models.StatusPending, "projector1"), calendar, nil, DecisionPendingReview},
		{"exactly business hours", window("2025-03-10", 420, 1140, models.StatusPending, "projector1"), calendar, nil, DecisionApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideAutoApproval(tt.candidate, tt.calendar, tt.conflicts))
		})
	}
}
