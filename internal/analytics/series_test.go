package analytics

import (
	"testing"

	"github.com/janmeier/trackjob/internal/domain"
)

func TestDailySeriesConservation(t *testing.T) {
	records := []domain.JobApplication{
		app(t, "a", "2024-01-01", domain.StatusApplied),
		app(t, "b", "2024-01-01", domain.StatusRejected, withRejection(t, "2024-01-10")),
		app(t, "c", "2024-01-04", domain.StatusInterview),
		app(t, "d", "2024-01-08", domain.StatusOffer),
	}
	rng, err := ResolveDateRange(records, date(t, "2024-01-15"))
	if err != nil {
		t.Fatalf("ResolveDateRange: %v", err)
	}
	series := DailySeries(records, rng.Days())

	total := 0
	for _, day := range series {
		total += day.Applications
	}
	if total != len(records) {
		t.Errorf("sum of daily applications = %d, want %d", total, len(records))
	}
}

func TestDailySeriesStatusCounts(t *testing.T) {
	records := []domain.JobApplication{
		app(t, "a", "2024-01-02", domain.StatusApplied),
		app(t, "b", "2024-01-02", domain.StatusRejected, withRejection(t, "2024-01-09")),
		app(t, "c", "2024-01-02", domain.StatusInterview),
		app(t, "d", "2024-01-03", domain.StatusOffer, withOffer(t, "2024-01-20")),
	}
	series := DailySeries(records, DateRange{Start: date(t, "2024-01-02"), End: date(t, "2024-01-03")}.Days())

	day1 := series[0]
	if day1.Applications != 3 || day1.Rejections != 1 || day1.Interviews != 1 || day1.Offers != 0 {
		t.Errorf("2024-01-02 counts = %+v", day1)
	}
	day2 := series[1]
	if day2.Applications != 1 || day2.Offers != 1 {
		t.Errorf("2024-01-03 counts = %+v", day2)
	}
}

// Responses scan the whole set for the first-response day, independent of
// when those applications were sent.
func TestDailySeriesResponsesAsymmetry(t *testing.T) {
	records := []domain.JobApplication{
		app(t, "a", "2024-01-01", domain.StatusInterview,
			withSent(t, "2024-01-01"), withResponse(t, "2024-01-05")),
		app(t, "b", "2024-01-02", domain.StatusInterview,
			withSent(t, "2024-01-02"), withResponse(t, "2024-01-05")),
	}
	series := DailySeries(records, DateRange{Start: date(t, "2024-01-01"), End: date(t, "2024-01-06")}.Days())

	for _, day := range series {
		want := 0
		if day.Date.String() == "2024-01-05" {
			want = 2
		}
		if day.Responses != want {
			t.Errorf("%s responses = %d, want %d", day.Date, day.Responses, want)
		}
	}
}

func TestDailySeriesPendingCumulative(t *testing.T) {
	pendingRec := app(t, "a", "2024-01-03", domain.StatusApplied)
	series := DailySeries(
		[]domain.JobApplication{pendingRec},
		DateRange{Start: date(t, "2024-01-01"), End: date(t, "2024-01-08")}.Days(),
	)
	for _, day := range series {
		want := 0
		if !day.Date.Before(date(t, "2024-01-03").Time) {
			want = 1
		}
		if day.Pending != want {
			t.Errorf("%s pending = %d, want %d", day.Date, day.Pending, want)
		}
	}

	// Once a rejection is recorded the record leaves the pending series
	// entirely.
	rejected := pendingRec
	rejected.Status = domain.StatusRejected
	rejected.RejectionDate = date(t, "2024-01-06")
	series = DailySeries(
		[]domain.JobApplication{rejected},
		DateRange{Start: date(t, "2024-01-06"), End: date(t, "2024-01-08")}.Days(),
	)
	for _, day := range series {
		if day.Pending != 0 {
			t.Errorf("%s pending = %d after rejection, want 0", day.Date, day.Pending)
		}
	}
}

func TestDailySeriesLatencyOverDaySubset(t *testing.T) {
	records := []domain.JobApplication{
		// 4-day response latency, applied Jan 2.
		app(t, "a", "2024-01-02", domain.StatusInterview,
			withSent(t, "2024-01-02"), withResponse(t, "2024-01-06"),
			withInterviewScheduled(t, "2024-01-09")),
		// 2-day response latency, same day.
		app(t, "b", "2024-01-02", domain.StatusInterview,
			withSent(t, "2024-01-02"), withResponse(t, "2024-01-04")),
		// Applied a different day; must not leak into Jan 2's average.
		app(t, "c", "2024-01-05", domain.StatusInterview,
			withSent(t, "2024-01-05"), withResponse(t, "2024-01-25")),
	}
	series := DailySeries(records, DateRange{Start: date(t, "2024-01-02"), End: date(t, "2024-01-05")}.Days())

	if got := series[0].AvgResponseTime; got != 3 {
		t.Errorf("Jan 2 avg response = %d, want 3", got)
	}
	// record a: response Jan 6 -> interview Jan 9 = 3 days; record b has
	// no interview date and contributes no sample.
	if got := series[0].AvgInterviewTime; got != 3 {
		t.Errorf("Jan 2 avg interview = %d, want 3", got)
	}
	if got := series[3].AvgResponseTime; got != 20 {
		t.Errorf("Jan 5 avg response = %d, want 20", got)
	}
}

// End-to-end scenario over three records spanning three days.
func TestDailySeriesScenario(t *testing.T) {
	records := []domain.JobApplication{
		app(t, "a", "2024-01-01", domain.StatusApplied),
		app(t, "b", "2024-01-01", domain.StatusRejected, withRejection(t, "2024-01-05")),
		app(t, "c", "2024-01-03", domain.StatusInterview),
	}
	reference := date(t, "2024-01-10")

	rng, err := ResolveDateRange(records, reference)
	if err != nil {
		t.Fatalf("ResolveDateRange: %v", err)
	}
	if rng.Start.String() != "2024-01-01" || rng.End.String() != "2024-01-10" {
		t.Fatalf("range = [%s, %s]", rng.Start, rng.End)
	}

	days := rng.Days()
	if len(days) != 10 {
		t.Fatalf("len(days) = %d, want 10", len(days))
	}

	series := DailySeries(records, days)
	if series[0].Applications != 2 {
		t.Errorf("day 1 applications = %d, want 2", series[0].Applications)
	}
	if series[2].Applications != 1 || series[2].Interviews != 1 {
		t.Errorf("day 3 = %+v", series[2])
	}

	summary := Summarize(records, reference)
	if summary.TotalRejections != 1 {
		t.Errorf("total rejections = %d, want 1", summary.TotalRejections)
	}
	// The rejected record never counts as pending: it carries a terminal
	// marker and a non-applied status. The interview record has a
	// non-applied status too, so only "a" remains.
	if summary.CurrentPending != 1 {
		t.Errorf("current pending = %d, want 1", summary.CurrentPending)
	}
}
