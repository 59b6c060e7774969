package workflow

import (
	"testing"

	"eccos/models"
	"eccos/services/availability"

	"github.com/stretchr/testify/assert"
)

var (
	admin = models.Actor{UID: "admin-1", Admin: true}
	staff = models.Actor{UID: "staff-1"}
)

func TestInitialStatusFollowsDecision(t *testing.T) {
	assert.Equal(t, models.StatusApproved, Initial(availability.DecisionApproved))
	assert.Equal(t, models.StatusPending, Initial(availability.DecisionPendingReview))
}

func TestAdminMayPerformAnyTransition(t *testing.T) {
	// Including the deliberately permissive completed -> pending move.
	assert.True(t, CanTransition(admin, "staff-1", models.StatusCompleted, models.StatusPending))
	assert.True(t, CanTransition(admin, "staff-1", models.StatusPending, models.StatusApproved))
	assert.True(t, CanTransition(admin, "staff-1", models.StatusApproved, models.StatusInProgress))
	assert.True(t, CanTransition(admin, "staff-1", models.StatusCanceled, models.StatusApproved))
}

func TestSelfTransitionRejected(t *testing.T) {
	assert.False(t, CanTransition(admin, "staff-1", models.StatusPending, models.StatusPending))
}

func TestUnknownStatusRejected(t *testing.T) {
	assert.False(t, CanTransition(admin, "staff-1", models.Status("archived"), models.StatusPending))
	assert.False(t, CanTransition(admin, "staff-1", models.StatusPending, models.Status("archived")))
}

func TestRequesterMayOnlyCancelOwnActiveRequest(t *testing.T) {
	assert.True(t, CanTransition(staff, "staff-1", models.StatusPending, models.StatusCanceled))
	assert.True(t, CanTransition(staff, "staff-1", models.StatusApproved, models.StatusCanceled))

	// Not theirs.
	assert.False(t, CanTransition(staff, "staff-2", models.StatusPending, models.StatusCanceled))
	// Not a cancel.
	assert.False(t, CanTransition(staff, "staff-1", models.StatusPending, models.StatusApproved))
	// Already terminal.
	assert.False(t, CanTransition(staff, "staff-1", models.StatusCompleted, models.StatusCanceled))
	assert.False(t, CanTransition(staff, "staff-1", models.StatusRejected, models.StatusCanceled))
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(models.StatusCompleted))
	assert.True(t, Terminal(models.StatusRejected))
	assert.True(t, Terminal(models.StatusCanceled))
	assert.False(t, Terminal(models.StatusPending))
	assert.False(t, Terminal(models.StatusApproved))
	assert.False(t, Terminal(models.StatusInProgress))
}
