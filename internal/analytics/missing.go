package analytics

import "github.com/janmeier/trackjob/internal/domain"

// IsIncomplete classifies a record against the status-dependent
// missing-data rules. A record is incomplete when any rule matches:
// no area of work, no sent date, a status whose matching lifecycle date
// is missing, or a non-applied status with no first response recorded.
func IsIncomplete(a domain.JobApplication) bool {
	if a.AreaOfWork == "" {
		return true
	}
	if a.ApplicationSentDate.IsZero() {
		return true
	}
	switch a.Status {
	case domain.StatusInterview:
		if a.InterviewScheduledDate.IsZero() {
			return true
		}
	case domain.StatusOffer:
		if a.OfferReceivedDate.IsZero() {
			return true
		}
	case domain.StatusRejected:
		if a.RejectionDate.IsZero() {
			return true
		}
	}
	if a.Status != domain.StatusApplied && a.FirstResponseDate.IsZero() {
		return true
	}
	return false
}

// FindIncomplete returns the incomplete records in input order, skipping
// the record with excludeID (typically the one currently being edited).
// Callers drive the backfill workflow off the first element and the count.
func FindIncomplete(records []domain.JobApplication, excludeID string) []domain.JobApplication {
	var incomplete []domain.JobApplication
	for _, rec := range records {
		if excludeID != "" && rec.ID == excludeID {
			continue
		}
		if IsIncomplete(rec) {
			incomplete = append(incomplete, rec)
		}
	}
	return incomplete
}
