package service

import (
	"context"

	"github.com/janmeier/trackjob/internal/domain"
	"github.com/janmeier/trackjob/internal/repository"
)

// ApplicationStore is the persistence collaborator consumed by the
// services. repository.ApplicationRepository implements it; tests use an
// in-memory fixture. Errors from the store propagate unchanged — the
// services never retry.
type ApplicationStore interface {
	Create(ctx context.Context, app *domain.JobApplication) error
	Update(ctx context.Context, app *domain.JobApplication) error
	Delete(ctx context.Context, userID, id string) error
	GetByID(ctx context.Context, userID, id string) (*domain.JobApplication, error)
	ListByUser(ctx context.Context, userID string) ([]domain.JobApplication, error)
	Autocomplete(ctx context.Context, userID string) (*repository.AutocompleteData, error)
}
