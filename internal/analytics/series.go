package analytics

import "github.com/janmeier/trackjob/internal/domain"

// DailyMetrics is one day's bucket of the application timeline.
//
// Applications, Rejections, Interviews, Offers, and the latency averages
// are computed over the records applied on that day. Responses counts
// first responses received on that day across the whole set, which is a
// different population on purpose. Pending is cumulative as of the day,
// not a per-day count, so it plots as a step series.
type DailyMetrics struct {
	Date             domain.Date `json:"date"`
	Applications     int         `json:"applications"`
	Rejections       int         `json:"rejections"`
	Interviews       int         `json:"interviews"`
	Offers           int         `json:"offers"`
	Responses        int         `json:"responses"`
	Pending          int         `json:"pending"`
	AvgResponseTime  int         `json:"avg_response_time"`
	AvgInterviewTime int         `json:"avg_interview_time"`
	AvgDecisionTime  int         `json:"avg_decision_time"`
}

// DailySeries computes the per-day metrics for each bucketed day.
// Parameters:
//   - records: full application snapshot.
//   - days: ordered day sequence, normally DateRange.Days().
// Returns:
//   - []DailyMetrics: one entry per day, in day order.
func DailySeries(records []domain.JobApplication, days []domain.Date) []DailyMetrics {
	series := make([]DailyMetrics, 0, len(days))
	for _, day := range days {
		subset := AppliedOn(records, day)

		m := DailyMetrics{
			Date:         day,
			Applications: len(subset),
			Responses:    responsesOn(records, day),
			Pending:      pendingAsOf(records, day),
		}
		for _, rec := range subset {
			switch rec.Status {
			case domain.StatusRejected:
				m.Rejections++
			case domain.StatusInterview:
				m.Interviews++
			case domain.StatusOffer:
				m.Offers++
			}
		}
		m.AvgResponseTime = roundedMean(latencySamples(subset, responsePair))
		m.AvgInterviewTime = roundedMean(latencySamples(subset, interviewPair))
		m.AvgDecisionTime = roundedMean(latencySamples(subset, decisionPair))

		series = append(series, m)
	}
	return series
}

// AppliedOn returns the records whose application date is exactly day.
// Equality is calendar-day equality, not range containment.
func AppliedOn(records []domain.JobApplication, day domain.Date) []domain.JobApplication {
	var subset []domain.JobApplication
	for _, rec := range records {
		if rec.ApplicationDate.Equal(day.Time) {
			subset = append(subset, rec)
		}
	}
	return subset
}

// responsesOn counts first responses received on day over the whole set.
func responsesOn(records []domain.JobApplication, day domain.Date) int {
	count := 0
	for _, rec := range records {
		if !rec.FirstResponseDate.IsZero() && rec.FirstResponseDate.Equal(day.Time) {
			count++
		}
	}
	return count
}

// pendingAsOf counts records applied on or before day that are still
// awaiting any response: status applied with no first response and no
// terminal marker recorded.
func pendingAsOf(records []domain.JobApplication, day domain.Date) int {
	count := 0
	for _, rec := range records {
		if rec.ApplicationDate.After(day.Time) {
			continue
		}
		if rec.Status != domain.StatusApplied {
			continue
		}
		if !rec.FirstResponseDate.IsZero() || rec.HasTerminalMarker() {
			continue
		}
		count++
	}
	return count
}
