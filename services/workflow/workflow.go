// Package workflow models the request status state machine and the
// authorization guard for transitions. Guards are pure functions so that
// tightening the rules later is a local change, not a rewrite.
package workflow

import (
	"eccos/models"
	"eccos/services/availability"
)

var validStatuses = map[models.Status]struct{}{
	models.StatusPending:    {},
	models.StatusApproved:   {},
	models.StatusRejected:   {},
	models.StatusInProgress: {},
	models.StatusCompleted:  {},
	models.StatusCanceled:   {},
}

// Valid reports whether s is a known request status.
func Valid(s models.Status) bool {
	_, ok := validStatuses[s]
	return ok
}

// Terminal reports whether a request in s has left the active workflow.
func Terminal(s models.Status) bool {
	switch s {
	case models.StatusRejected, models.StatusCompleted, models.StatusCanceled:
		return true
	}
	return false
}

// Initial maps the engine's auto-approval decision to the status a freshly
// created reservation request is persisted with.
func Initial(d availability.Decision) models.Status {
	if d == availability.DecisionApproved {
		return models.StatusApproved
	}
	return models.StatusPending
}

// CanTransition decides whether actor may move a request owned by ownerID
// from one status to another. Current rules match the observed admin
// behavior: admins may perform any transition between valid states, while
// requesters may only cancel their own still-active requests.
func CanTransition(actor models.Actor, ownerID string, from, to models.Status) bool {
	if !Valid(from) || !Valid(to) || from == to {
		return false
	}
	if actor.Admin {
		return true
	}
	return actor.UID == ownerID && to == models.StatusCanceled && !Terminal(from)
}
