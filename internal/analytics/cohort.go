package analytics

import (
	"math"
	"sort"

	"github.com/janmeier/trackjob/internal/domain"
)

// CohortRow is the aggregate for one group of records sharing a
// categorical value (company name, area of work).
type CohortRow struct {
	Key              string      `json:"key"`
	Applications     int         `json:"applications"`
	Interviews       int         `json:"interviews"`
	Offers           int         `json:"offers"`
	Statuses         []string    `json:"statuses"`
	Areas            []string    `json:"areas"`
	Latest           domain.Date `json:"latest_application"`
	AvgResponseTime  int         `json:"avg_response_time"`
	AvgInterviewTime int         `json:"avg_interview_time"`
	// SuccessRate is round((interviews+offers)/applications*100) for
	// display; ranking uses the unrounded ratio.
	SuccessRate int `json:"success_rate"`
}

// KeyFunc extracts the grouping value from a record.
type KeyFunc func(domain.JobApplication) string

// CompanyKey groups by company name.
func CompanyKey(a domain.JobApplication) string { return a.CompanyName }

// AreaKey groups by area of work; records with none land in the fallback.
func AreaKey(a domain.JobApplication) string { return a.AreaOfWork }

// GroupBy folds the record set into one CohortRow per distinct key value,
// in first-seen order. Records whose key is empty are assigned the
// fallback group instead of being dropped.
// Parameters:
//   - records: full application snapshot.
//   - key: grouping value extractor.
//   - fallback: group for records with an empty key; ignored if itself empty.
// Returns:
//   - []CohortRow: one row per distinct key, first-seen order.
func GroupBy(records []domain.JobApplication, key KeyFunc, fallback string) []CohortRow {
	type bucket struct {
		row        *CohortRow
		members    []domain.JobApplication
		seenStatus map[string]bool
		seenArea   map[string]bool
	}

	buckets := map[string]*bucket{}
	var order []string

	for _, rec := range records {
		k := key(rec)
		if k == "" {
			if fallback == "" {
				continue
			}
			k = fallback
		}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{
				row:        &CohortRow{Key: k, Latest: rec.ApplicationDate},
				seenStatus: map[string]bool{},
				seenArea:   map[string]bool{},
			}
			buckets[k] = b
			order = append(order, k)
		}

		b.row.Applications++
		b.members = append(b.members, rec)

		switch rec.Status {
		case domain.StatusInterview:
			b.row.Interviews++
		case domain.StatusOffer:
			b.row.Offers++
		}
		if status := string(rec.Status); !b.seenStatus[status] {
			b.seenStatus[status] = true
			b.row.Statuses = append(b.row.Statuses, status)
		}
		if rec.AreaOfWork != "" && !b.seenArea[rec.AreaOfWork] {
			b.seenArea[rec.AreaOfWork] = true
			b.row.Areas = append(b.row.Areas, rec.AreaOfWork)
		}
		if rec.ApplicationDate.After(b.row.Latest.Time) {
			b.row.Latest = rec.ApplicationDate
		}
	}

	rows := make([]CohortRow, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		b.row.AvgResponseTime = roundedMean(latencySamples(b.members, responsePair))
		b.row.AvgInterviewTime = roundedMean(latencySamples(b.members, interviewPair))
		b.row.SuccessRate = int(math.Round(successRatio(*b.row) * 100))
		rows = append(rows, *b.row)
	}
	return rows
}

// successRatio is the unrounded success fraction used for ranking.
func successRatio(row CohortRow) float64 {
	if row.Applications == 0 {
		return 0
	}
	return float64(row.Interviews+row.Offers) / float64(row.Applications)
}

// ByCount sorts rows descending by application count. Stable, so equal
// counts keep first-seen order.
func ByCount(rows []CohortRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Applications > rows[j].Applications
	})
}

// BySuccessRate sorts rows descending by the unrounded success ratio.
// Stable, so ties keep first-seen order.
func BySuccessRate(rows []CohortRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return successRatio(rows[i]) > successRatio(rows[j])
	})
}

// TopN truncates rows to at most n entries; the remainder is discarded,
// not folded into an extra bucket.
func TopN(rows []CohortRow, n int) []CohortRow {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
