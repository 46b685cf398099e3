// Package analytics turns a snapshot of job application records into
// time-bucketed series, whole-history summaries, cohort aggregates, and
// missing-data classifications. Every function is a pure computation over
// the input slice: no clock access, no I/O, no mutation of records. The
// reference day is always passed in explicitly so results are reproducible.
package analytics

import (
	"errors"

	"github.com/janmeier/trackjob/internal/domain"
)

// ErrNoApplications is returned when a date range is requested for an
// empty record set. Callers should treat it as "nothing to display", not
// as a failure.
var ErrNoApplications = errors.New("no applications to analyze")

// DateRange is an inclusive calendar-day window.
type DateRange struct {
	Start domain.Date `json:"start"`
	End   domain.Date `json:"end"`
}

// ResolveDateRange derives the analysis window from a record set: Start is
// the earliest application date, End the later of the reference day and
// the latest application date. The window always reaches the reference day
// so in-progress applications show up as trailing zero-filled days.
// Parameters:
//   - records: full application snapshot; must be non-empty.
//   - reference: the "today" the caller wants the window to extend to.
// Returns:
//   - DateRange: derived inclusive window.
//   - error: ErrNoApplications when records is empty.
func ResolveDateRange(records []domain.JobApplication, reference domain.Date) (DateRange, error) {
	if len(records) == 0 {
		return DateRange{}, ErrNoApplications
	}

	start := records[0].ApplicationDate
	end := records[0].ApplicationDate
	for _, rec := range records[1:] {
		if rec.ApplicationDate.Before(start.Time) {
			start = rec.ApplicationDate
		}
		if rec.ApplicationDate.After(end.Time) {
			end = rec.ApplicationDate
		}
	}
	if reference.After(end.Time) {
		end = reference
	}
	return DateRange{Start: start, End: end}, nil
}

// Days expands the range into the ordered sequence of every calendar day
// from Start to End inclusive. Calendar arithmetic only, so year
// boundaries and leap days are handled; a Start == End range yields a
// single day.
func (r DateRange) Days() []domain.Date {
	if r.Start.IsZero() || r.End.Before(r.Start.Time) {
		return nil
	}
	days := make([]domain.Date, 0, r.Start.DaysUntil(r.End)+1)
	for d := r.Start; !d.After(r.End.Time); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
