package analytics

import (
	"testing"

	"github.com/janmeier/trackjob/internal/domain"
)

// date parses a YYYY-MM-DD fixture string, failing the test on typos.
func date(t *testing.T, value string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(value)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", value, err)
	}
	return d
}

// app builds a fixture record applied on the given day.
func app(t *testing.T, id, applied string, status domain.ApplicationStatus, mods ...func(*domain.JobApplication)) domain.JobApplication {
	t.Helper()
	rec := domain.JobApplication{
		ID:              id,
		UserID:          "user-1",
		CompanyName:     "Acme",
		PositionTitle:   "Engineer",
		Status:          status,
		ApplicationDate: date(t, applied),
	}
	for _, mod := range mods {
		mod(&rec)
	}
	return rec
}

func withCompany(name string) func(*domain.JobApplication) {
	return func(a *domain.JobApplication) { a.CompanyName = name }
}

func withArea(area string) func(*domain.JobApplication) {
	return func(a *domain.JobApplication) { a.AreaOfWork = area }
}

func withSent(t *testing.T, value string) func(*domain.JobApplication) {
	return func(a *domain.JobApplication) { a.ApplicationSentDate = date(t, value) }
}

func withResponse(t *testing.T, value string) func(*domain.JobApplication) {
	return func(a *domain.JobApplication) { a.FirstResponseDate = date(t, value) }
}

func withInterviewScheduled(t *testing.T, value string) func(*domain.JobApplication) {
	return func(a *domain.JobApplication) { a.InterviewScheduledDate = date(t, value) }
}

func withInterviewCompleted(t *testing.T, value string) func(*domain.JobApplication) {
	return func(a *domain.JobApplication) { a.InterviewCompletedDate = date(t, value) }
}

func withOffer(t *testing.T, value string) func(*domain.JobApplication) {
	return func(a *domain.JobApplication) { a.OfferReceivedDate = date(t, value) }
}

func withRejection(t *testing.T, value string) func(*domain.JobApplication) {
	return func(a *domain.JobApplication) { a.RejectionDate = date(t, value) }
}
