package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/janmeier/trackjob/internal/analytics"
	"github.com/janmeier/trackjob/internal/domain"
	"github.com/janmeier/trackjob/internal/logger"
)

// topAreaCount caps the area-of-work cohort rows to keep the radar view
// readable.
const topAreaCount = 8

// monthLayout is the YYYY-MM format accepted by Calendar.
const monthLayout = "2006-01"

// ErrInvalidMonth is returned when a calendar month parameter is not in
// YYYY-MM form.
var ErrInvalidMonth = errors.New("invalid month")

// CalendarDay is one day of the monthly calendar view with the
// applications submitted on it.
type CalendarDay struct {
	Date         domain.Date             `json:"date"`
	Applications []domain.JobApplication `json:"applications"`
}

// AnalyticsService computes timeline and cohort statistics over a user's
// applications. Every method fetches one snapshot of the record set and
// derives everything from it, so a single request sees a consistent view.
type AnalyticsService struct {
	store ApplicationStore
	log   *logger.Logger
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store ApplicationStore, log *logger.Logger) *AnalyticsService {
	return &AnalyticsService{
		store: store,
		log:   log.WithField(logger.FieldComponent, "analytics"),
	}
}

// Daily returns the per-day metric series spanning the user's history up
// to the reference day. A user with no applications gets an empty series.
func (s *AnalyticsService) Daily(ctx context.Context, userID string, reference domain.Date) ([]analytics.DailyMetrics, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	rng, err := analytics.ResolveDateRange(records, reference)
	if err != nil {
		if errors.Is(err, analytics.ErrNoApplications) {
			return []analytics.DailyMetrics{}, nil
		}
		return nil, err
	}
	series := analytics.DailySeries(records, rng.Days())
	logger.With(logger.Fields{
		logger.FieldUserID: userID,
		logger.FieldCount:  len(series),
	}).Debug(ctx, "Daily series computed")
	return series, nil
}

// Summary returns whole-history statistics as of the reference day.
func (s *AnalyticsService) Summary(ctx context.Context, userID string, reference domain.Date) (analytics.Summary, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(records, reference), nil
}

// Companies returns per-company cohort rows ordered by application count.
func (s *AnalyticsService) Companies(ctx context.Context, userID string) ([]analytics.CohortRow, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows := analytics.GroupBy(records, analytics.CompanyKey, "")
	analytics.ByCount(rows)
	return rows, nil
}

// Areas returns the top area-of-work cohort rows ordered by application
// count. Records without an area fall into the "Other" bucket.
func (s *AnalyticsService) Areas(ctx context.Context, userID string) ([]analytics.CohortRow, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows := analytics.GroupBy(records, analytics.AreaKey, "Other")
	analytics.ByCount(rows)
	return analytics.TopN(rows, topAreaCount), nil
}

// Incomplete returns the user's applications flagged as missing lifecycle
// data, preserving fetch order. excludeID skips the record being edited.
func (s *AnalyticsService) Incomplete(ctx context.Context, userID, excludeID string) ([]domain.JobApplication, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.FindIncomplete(records, excludeID), nil
}

// Calendar returns one entry per day of the given YYYY-MM month, each
// carrying the applications submitted that day.
func (s *AnalyticsService) Calendar(ctx context.Context, userID, month string) ([]CalendarDay, error) {
	start, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	first := domain.DateOf(start)
	last := domain.DateOf(start.AddDate(0, 1, -1))
	days := make([]CalendarDay, 0, first.DaysUntil(last)+1)
	for d := first; !d.After(last.Time); d = d.AddDays(1) {
		days = append(days, CalendarDay{
			Date:         d,
			Applications: analytics.AppliedOn(records, d),
		})
	}
	return days, nil
}
