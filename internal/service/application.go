package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/janmeier/trackjob/internal/analytics"
	"github.com/janmeier/trackjob/internal/domain"
	"github.com/janmeier/trackjob/internal/logger"
	"github.com/janmeier/trackjob/internal/repository"
)

// ErrInvalidApplication is returned when required fields are missing or
// the status value is unknown.
var ErrInvalidApplication = errors.New("invalid application")

// ApplicationService implements the write-side rules around job
// application records: required-field checks, terminal-date consistency,
// and the missing-data backfill workflow.
type ApplicationService struct {
	store ApplicationStore
	log   *logger.Logger
}

// NewApplicationService creates a new ApplicationService.
// Parameters:
//   - store: persistence collaborator.
//   - log: base logger.
// Returns:
//   - *ApplicationService: initialized service.
func NewApplicationService(store ApplicationStore, log *logger.Logger) *ApplicationService {
	return &ApplicationService{
		store: store,
		log:   log.WithField(logger.FieldComponent, "application"),
	}
}

// Create validates and persists a new application for the user.
func (s *ApplicationService) Create(ctx context.Context, userID string, app *domain.JobApplication) error {
	if err := validate(app); err != nil {
		return err
	}
	app.ID = uuid.New().String()
	app.UserID = userID
	if app.Status == "" {
		app.Status = domain.StatusApplied
	}
	reconcileTerminalDates(app)

	if err := s.store.Create(ctx, app); err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	logger.CtxInfo(ctx, "Application created: id=%s, company=%s", app.ID, app.CompanyName)
	return nil
}

// Update applies changes to an existing application. The stored record's
// identity fields win over whatever the caller sent.
func (s *ApplicationService) Update(ctx context.Context, userID string, app *domain.JobApplication) error {
	if err := validate(app); err != nil {
		return err
	}
	existing, err := s.store.GetByID(ctx, userID, app.ID)
	if err != nil {
		return err
	}
	app.UserID = existing.UserID
	app.CreatedAt = existing.CreatedAt
	reconcileTerminalDates(app)

	if err := s.store.Update(ctx, app); err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	logger.CtxInfo(ctx, "Application updated: id=%s", app.ID)
	return nil
}

// Get retrieves one application owned by the user.
func (s *ApplicationService) Get(ctx context.Context, userID, id string) (*domain.JobApplication, error) {
	return s.store.GetByID(ctx, userID, id)
}

// Delete removes an application owned by the user.
func (s *ApplicationService) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return err
	}
	logger.CtxInfo(ctx, "Application deleted: id=%s", id)
	return nil
}

// List returns the user's applications, newest first.
func (s *ApplicationService) List(ctx context.Context, userID string) ([]domain.JobApplication, error) {
	return s.store.ListByUser(ctx, userID)
}

// Autocomplete returns the distinct field values the user entered before.
func (s *ApplicationService) Autocomplete(ctx context.Context, userID string) (*repository.AutocompleteData, error) {
	return s.store.Autocomplete(ctx, userID)
}

// NextIncomplete returns the first incomplete application in fetch order
// plus the remaining count, driving the "load next incomplete" backfill
// workflow. excludeID skips the record currently being edited.
func (s *ApplicationService) NextIncomplete(ctx context.Context, userID, excludeID string) (*domain.JobApplication, int, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	incomplete := analytics.FindIncomplete(records, excludeID)
	if len(incomplete) == 0 {
		return nil, 0, nil
	}
	return &incomplete[0], len(incomplete), nil
}

// validate checks the required fields of a record.
func validate(app *domain.JobApplication) error {
	if app.CompanyName == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidApplication)
	}
	if app.PositionTitle == "" {
		return fmt.Errorf("%w: position title is required", ErrInvalidApplication)
	}
	if app.ApplicationDate.IsZero() {
		return fmt.Errorf("%w: application date is required", ErrInvalidApplication)
	}
	if app.Status != "" && !app.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidApplication, app.Status)
	}
	return nil
}

// reconcileTerminalDates enforces that at most one of the rejection and
// withdrawal dates is active and that the status matches it. Historical
// data may still violate this; the analytics engine tolerates that, but
// new writes don't get to.
func reconcileTerminalDates(app *domain.JobApplication) {
	switch {
	case !app.WithdrawalDate.IsZero() && app.Status == domain.StatusWithdrawn:
		app.RejectionDate = domain.Date{}
	case !app.RejectionDate.IsZero():
		app.WithdrawalDate = domain.Date{}
		app.Status = domain.StatusRejected
	case !app.WithdrawalDate.IsZero():
		app.Status = domain.StatusWithdrawn
	}
}
