// Package availability implements the reservation conflict-detection and
// auto-approval decision procedure. Both operations are pure functions over
// their inputs: the caller fetches existing windows and the open-date
// calendar, the engine only decides.
package availability

import "eccos/models"

// Business hours gating instant approval, in minutes from midnight.
const (
	BusinessOpenMinute  = 420  // 07:00
	BusinessCloseMinute = 1140 // 19:00
)

// Decision is the outcome of the auto-approval table.
type Decision string

const (
	DecisionApproved      Decision = "approved"
	DecisionPendingReview Decision = "pending-review"
)

// DateSet is the availability calendar as seen by the engine: the set of
// dates pre-opened for instant self-service approval.
type DateSet map[string]struct{}

// NewDateSet builds a DateSet from "YYYY-MM-DD" strings.
func NewDateSet(dates ...string) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Contains reports whether date is open for self-service booking.
func (s DateSet) Contains(date string) bool {
	_, ok := s[date]
	return ok
}

// ResourceLabeler resolves a resource id to its human-readable label for
// conflict reporting. The engine never looks labels up itself.
type ResourceLabeler func(resourceID string) string

// FindConflicts checks a candidate window against the existing windows for
// its resource pool and returns one Conflict per (overlapping window, shared
// resource). An empty result means the candidate is clear.
//
// Only windows on the same date with a blocking status (pending or approved)
// are considered. Overlap uses half-open interval semantics: a window ending
// exactly where another starts does not conflict.
func FindConflicts(candidate models.ReservationWindow, existing []models.ReservationWindow, label ResourceLabeler) ([]models.Conflict, error) {
	if err := validateWindow(candidate); err != nil {
		return nil, err
	}
	if label == nil {
		label = func(id string) string { return id }
	}

	wanted := make(map[string]struct{}, len(candidate.ResourceIDs))
	for _, id := range candidate.ResourceIDs {
		wanted[id] = struct{}{}
	}

	var conflicts []models.Conflict
	for _, other := range existing {
		if other.Date != candidate.Date {
			continue
		}
		if !blocking(other.Status) {
			continue
		}
		if !overlaps(candidate, other) {
			continue
		}
		for _, id := range other.ResourceIDs {
			if _, ok := wanted[id]; !ok {
				continue
			}
			conflicts = append(conflicts, models.Conflict{
				ResourceID:    id,
				ResourceLabel: label(id),
				RequestID:     other.RequestID,
				Date:          other.Date,
				Start:         other.Start,
				End:           other.End,
			})
		}
	}
	return conflicts, nil
}

// DecideAutoApproval applies the instant-approval decision table: approved
// only when there are no conflicts, the date is pre-opened, and the window
// lies fully within business hours. Anything else awaits manual review.
func DecideAutoApproval(candidate models.ReservationWindow, calendar DateSet, conflicts []models.Conflict) Decision {
	if len(conflicts) > 0 {
		return DecisionPendingReview
	}
	if !calendar.Contains(candidate.Date) {
		return DecisionPendingReview
	}
	if candidate.Start < BusinessOpenMinute || candidate.End > BusinessCloseMinute {
		return DecisionPendingReview
	}
	return DecisionApproved
}

func validateWindow(w models.ReservationWindow) error {
	if w.Start >= w.End {
		return ErrInvalidWindow
	}
	if len(w.ResourceIDs) == 0 {
		return ErrInvalidWindow
	}
	return nil
}

func blocking(s models.Status) bool {
	return s == models.StatusPending || s == models.StatusApproved
}

// overlaps tests half-open minute ranges: touching boundaries do not overlap.
func overlaps(a, b models.ReservationWindow) bool {
	return a.Start < b.End && b.Start < a.End
}
