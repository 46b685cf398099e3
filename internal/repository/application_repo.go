package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/janmeier/trackjob/internal/domain"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist for the user.
var ErrNotFound = errors.New("application not found")

// AutocompleteData holds the distinct field values previously entered by
// a user, used to pre-fill form suggestions.
type AutocompleteData struct {
	Companies          []string `json:"companies"`
	Positions          []string `json:"positions"`
	ApplicationMethods []string `json:"application_methods"`
}

// ApplicationRepository handles job application persistence. Every query
// filters by the owning user id.
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ApplicationRepository: repository instance bound to db.
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - app: application record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.JobApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// Update saves changes to an existing application record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - app: application record with updated fields.
// Returns:
//   - error: non-nil if the update fails.
func (r *ApplicationRepository) Update(ctx context.Context, app *domain.JobApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

// Delete removes an application owned by the user.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user id.
//   - id: application id to delete.
// Returns:
//   - error: ErrNotFound if no matching row was deleted.
func (r *ApplicationRepository) Delete(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&domain.JobApplication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves one application owned by the user.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user id.
//   - id: application id.
// Returns:
//   - *domain.JobApplication: record if found.
//   - error: ErrNotFound when absent, otherwise the query error.
func (r *ApplicationRepository) GetByID(ctx context.Context, userID, id string) (*domain.JobApplication, error) {
	var app domain.JobApplication
	err := r.db.WithContext(ctx).
		First(&app, "user_id = ? AND id = ?", userID, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// ListByUser retrieves every application for the user, newest first.
// This is the one-shot snapshot the analytics engine consumes.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user id.
// Returns:
//   - []domain.JobApplication: records ordered by created_at descending.
//   - error: non-nil if the query fails.
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]domain.JobApplication, error) {
	var apps []domain.JobApplication
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// Autocomplete retrieves the distinct companies, positions, and
// application methods the user has entered before.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user id.
// Returns:
//   - *AutocompleteData: distinct values per field.
//   - error: non-nil if any query fails.
func (r *ApplicationRepository) Autocomplete(ctx context.Context, userID string) (*AutocompleteData, error) {
	data := &AutocompleteData{}

	fields := []struct {
		column string
		target *[]string
	}{
		{"company_name", &data.Companies},
		{"position_title", &data.Positions},
		{"application_method", &data.ApplicationMethods},
	}
	for _, f := range fields {
		if err := r.db.WithContext(ctx).
			Model(&domain.JobApplication{}).
			Where("user_id = ? AND "+f.column+" <> ''", userID).
			Distinct(f.column).
			Order(f.column).
			Pluck(f.column, f.target).Error; err != nil {
			return nil, fmt.Errorf("failed to load autocomplete %s: %w", f.column, err)
		}
	}
	return data, nil
}

// CountByUser counts the user's applications.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user id.
// Returns:
//   - int64: number of records.
//   - error: non-nil if the query fails.
func (r *ApplicationRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.JobApplication{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
