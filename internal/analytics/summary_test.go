package analytics

import (
	"math"
	"testing"

	"github.com/janmeier/trackjob/internal/domain"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, date(t, "2024-06-01"))
	if s.ResponseRate != 0 || s.ApplicationsPerWeek != 0 {
		t.Errorf("guards failed on empty set: %+v", s)
	}
	if math.IsNaN(s.ResponseRate) || math.IsInf(s.ApplicationsPerWeek, 0) {
		t.Errorf("summary produced NaN/Inf: %+v", s)
	}
}

func TestSummarizeSameDayGuard(t *testing.T) {
	// First application on the reference day: zero elapsed days must not
	// divide.
	records := []domain.JobApplication{app(t, "a", "2024-06-01", domain.StatusApplied)}
	s := Summarize(records, date(t, "2024-06-01"))
	if s.ApplicationsPerWeek != 0 {
		t.Errorf("ApplicationsPerWeek = %v, want 0 for same-day history", s.ApplicationsPerWeek)
	}
}

func TestSummarizeRates(t *testing.T) {
	records := []domain.JobApplication{
		app(t, "a", "2024-01-01", domain.StatusInterview,
			withSent(t, "2024-01-01"), withResponse(t, "2024-01-04")),
		app(t, "b", "2024-01-03", domain.StatusApplied),
		app(t, "c", "2024-01-08", domain.StatusRejected,
			withSent(t, "2024-01-08"), withResponse(t, "2024-01-17"),
			withRejection(t, "2024-01-20")),
		app(t, "d", "2024-01-10", domain.StatusApplied),
	}
	s := Summarize(records, date(t, "2024-01-15"))

	if s.TotalApplications != 4 || s.TotalResponses != 2 {
		t.Fatalf("totals = %+v", s)
	}
	if s.ResponseRate != 50 {
		t.Errorf("ResponseRate = %v, want 50", s.ResponseRate)
	}
	// 4 applications over 14 days = 2 per week.
	if s.ApplicationsPerWeek != 2 {
		t.Errorf("ApplicationsPerWeek = %v, want 2", s.ApplicationsPerWeek)
	}
	if s.FastestResponse != 3 || s.SlowestResponse != 9 {
		t.Errorf("response bounds = [%d, %d], want [3, 9]", s.FastestResponse, s.SlowestResponse)
	}
	if s.AvgResponseTime != 6 {
		t.Errorf("AvgResponseTime = %d, want 6", s.AvgResponseTime)
	}
	if s.CurrentPending != 2 {
		t.Errorf("CurrentPending = %d, want 2", s.CurrentPending)
	}
}

// Negative deltas are discarded from the sample set, not clamped to zero.
func TestSummarizeDiscardsNegativeLatency(t *testing.T) {
	records := []domain.JobApplication{
		app(t, "a", "2024-01-01", domain.StatusInterview,
			withSent(t, "2024-01-10"), withResponse(t, "2024-01-04")),
		app(t, "b", "2024-01-01", domain.StatusInterview,
			withSent(t, "2024-01-01"), withResponse(t, "2024-01-08")),
	}
	s := Summarize(records, date(t, "2024-02-01"))
	if s.AvgResponseTime != 7 {
		t.Errorf("AvgResponseTime = %d, want 7 (negative sample discarded)", s.AvgResponseTime)
	}
	if s.FastestResponse != 7 {
		t.Errorf("FastestResponse = %d, want 7", s.FastestResponse)
	}
}

func TestSummarizeDecisionPrefersOffer(t *testing.T) {
	rec := app(t, "a", "2024-01-01", domain.StatusOffer,
		withInterviewCompleted(t, "2024-01-10"),
		withOffer(t, "2024-01-14"),
		withRejection(t, "2024-01-30"))
	s := Summarize([]domain.JobApplication{rec}, date(t, "2024-02-01"))
	if s.AvgDecisionTime != 4 {
		t.Errorf("AvgDecisionTime = %d, want 4 (offer date preferred)", s.AvgDecisionTime)
	}
}

func TestRoundedMean(t *testing.T) {
	tests := []struct {
		name    string
		samples []int
		want    int
	}{
		{"empty", nil, 0},
		{"single", []int{5}, 5},
		{"rounds up", []int{1, 2}, 2},
		{"rounds down", []int{1, 1, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundedMean(tt.samples); got != tt.want {
				t.Errorf("roundedMean(%v) = %d, want %d", tt.samples, got, tt.want)
			}
		})
	}
}
