package analytics

import (
	"math"

	"github.com/janmeier/trackjob/internal/domain"
)

// Summary holds whole-history statistics over a record set. The latency
// averages here are global computations over every record with both
// endpoints; they are intentionally distinct from the per-day averages in
// DailyMetrics and need not agree with them.
type Summary struct {
	TotalApplications int `json:"total_applications"`
	TotalRejections   int `json:"total_rejections"`
	TotalInterviews   int `json:"total_interviews"`
	TotalOffers       int `json:"total_offers"`
	TotalResponses    int `json:"total_responses"`
	CurrentPending    int `json:"current_pending"`

	// ApplicationsPerWeek and ResponseRate are guarded to 0 when their
	// denominators are zero, never NaN or Inf.
	ApplicationsPerWeek float64 `json:"applications_per_week"`
	ResponseRate        float64 `json:"response_rate"`

	AvgResponseTime  int `json:"avg_response_time"`
	AvgInterviewTime int `json:"avg_interview_time"`
	AvgDecisionTime  int `json:"avg_decision_time"`
	FastestResponse  int `json:"fastest_response"`
	SlowestResponse  int `json:"slowest_response"`
}

// Summarize computes whole-history statistics as of the reference day.
// An empty record set yields the zero Summary.
func Summarize(records []domain.JobApplication, reference domain.Date) Summary {
	s := Summary{TotalApplications: len(records)}
	if len(records) == 0 {
		return s
	}

	first := records[0].ApplicationDate
	for _, rec := range records {
		if rec.ApplicationDate.Before(first.Time) {
			first = rec.ApplicationDate
		}
		switch rec.Status {
		case domain.StatusRejected:
			s.TotalRejections++
		case domain.StatusInterview:
			s.TotalInterviews++
		case domain.StatusOffer:
			s.TotalOffers++
		}
		if !rec.FirstResponseDate.IsZero() {
			s.TotalResponses++
		}
	}

	asOf := reference
	if rng, err := ResolveDateRange(records, reference); err == nil {
		asOf = rng.End
	}
	s.CurrentPending = pendingAsOf(records, asOf)

	daysSinceFirst := first.DaysUntil(reference)
	if daysSinceFirst > 0 {
		s.ApplicationsPerWeek = round1(float64(s.TotalApplications) / (float64(daysSinceFirst) / 7))
	}
	if s.TotalApplications > 0 {
		s.ResponseRate = round1(float64(s.TotalResponses) / float64(s.TotalApplications) * 100)
	}

	responseTimes := latencySamples(records, responsePair)
	s.AvgResponseTime = roundedMean(responseTimes)
	s.AvgInterviewTime = roundedMean(latencySamples(records, interviewPair))
	s.AvgDecisionTime = roundedMean(latencySamples(records, decisionPair))
	s.FastestResponse, s.SlowestResponse = sampleBounds(responseTimes)

	return s
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
