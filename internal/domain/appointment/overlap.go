package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses the half-open predicate: [a,b) and [c,d) intersect iff
// a < d && c < b. Back-to-back windows, where one ends exactly when the other
// starts, do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

func (w Window) String() string {
	return w.Start.Format("15:04") + "-" + w.End.Format("15:04")
}

// Booked is a same-day occupied slot as seen by the conflict scan: an existing
// non-cancelled appointment with its derived end time.
type Booked struct {
	ID     uuid.UUID
	Window Window
}

// FindConflict returns the first booked slot whose window intersects the
// candidate, or nil. The caller supplies only non-cancelled same-day
// appointments; which conflict wins when several exist is not guaranteed.
func FindConflict(candidate Window, existing []Booked) *Booked {
	for i := range existing {
		if candidate.Overlaps(existing[i].Window) {
			return &existing[i]
		}
	}
	return nil
}
