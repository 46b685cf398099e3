package analytics

import (
	"math"

	"github.com/janmeier/trackjob/internal/domain"
)

// A latencyPair selects the two endpoint dates of a funnel transition.
// Records missing either endpoint do not contribute a sample, and negative
// deltas (data entry errors) are discarded rather than clamped.
type latencyPair func(domain.JobApplication) (from, to domain.Date)

func responsePair(a domain.JobApplication) (domain.Date, domain.Date) {
	return a.ApplicationSentDate, a.FirstResponseDate
}

func interviewPair(a domain.JobApplication) (domain.Date, domain.Date) {
	return a.FirstResponseDate, a.InterviewScheduledDate
}

// decisionPair measures interview completion to decision, preferring the
// offer date when both an offer and a rejection are recorded.
func decisionPair(a domain.JobApplication) (domain.Date, domain.Date) {
	decision := a.OfferReceivedDate
	if decision.IsZero() {
		decision = a.RejectionDate
	}
	return a.InterviewCompletedDate, decision
}

// latencySamples collects the non-negative day differences for the given
// transition over the records supplied.
func latencySamples(records []domain.JobApplication, pair latencyPair) []int {
	var samples []int
	for _, rec := range records {
		from, to := pair(rec)
		if from.IsZero() || to.IsZero() {
			continue
		}
		days := from.DaysUntil(to)
		if days < 0 {
			continue
		}
		samples = append(samples, days)
	}
	return samples
}

// roundedMean returns the mean of samples rounded to the nearest whole
// day, or 0 for an empty sample set. Never NaN.
func roundedMean(samples []int) int {
	if len(samples) == 0 {
		return 0
	}
	sum := 0
	for _, s := range samples {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(samples))))
}

// sampleBounds returns the min and max of samples, or (0, 0) when empty.
func sampleBounds(samples []int) (int, int) {
	if len(samples) == 0 {
		return 0, 0
	}
	lo, hi := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}
