package service

import (
	"context"
	"sort"
	"testing"

	"github.com/janmeier/trackjob/internal/domain"
	"github.com/janmeier/trackjob/internal/logger"
	"github.com/janmeier/trackjob/internal/repository"
)

// memStore is an in-memory ApplicationStore for service tests.
type memStore struct {
	records map[string]*domain.JobApplication
	order   []string
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]*domain.JobApplication)}
}

func (m *memStore) Create(ctx context.Context, app *domain.JobApplication) error {
	clone := *app
	m.records[app.ID] = &clone
	m.order = append(m.order, app.ID)
	return nil
}

func (m *memStore) Update(ctx context.Context, app *domain.JobApplication) error {
	if _, ok := m.records[app.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *app
	m.records[app.ID] = &clone
	return nil
}

func (m *memStore) Delete(ctx context.Context, userID, id string) error {
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) GetByID(ctx context.Context, userID, id string) (*domain.JobApplication, error) {
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return nil, repository.ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

func (m *memStore) ListByUser(ctx context.Context, userID string) ([]domain.JobApplication, error) {
	var out []domain.JobApplication
	for _, id := range m.order {
		if m.records[id].UserID == userID {
			out = append(out, *m.records[id])
		}
	}
	return out, nil
}

func (m *memStore) Autocomplete(ctx context.Context, userID string) (*repository.AutocompleteData, error) {
	seen := map[string]bool{}
	data := &repository.AutocompleteData{}
	records, _ := m.ListByUser(ctx, userID)
	for _, rec := range records {
		if rec.CompanyName != "" && !seen["c:"+rec.CompanyName] {
			seen["c:"+rec.CompanyName] = true
			data.Companies = append(data.Companies, rec.CompanyName)
		}
		if rec.PositionTitle != "" && !seen["p:"+rec.PositionTitle] {
			seen["p:"+rec.PositionTitle] = true
			data.Positions = append(data.Positions, rec.PositionTitle)
		}
		if rec.ApplicationMethod != "" && !seen["m:"+rec.ApplicationMethod] {
			seen["m:"+rec.ApplicationMethod] = true
			data.ApplicationMethods = append(data.ApplicationMethods, rec.ApplicationMethod)
		}
	}
	sort.Strings(data.Companies)
	sort.Strings(data.Positions)
	sort.Strings(data.ApplicationMethods)
	return data, nil
}

func testLogger() *logger.Logger {
	return logger.NewDefault()
}

func date(t *testing.T, value string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}

// seed creates an application directly in the store, bypassing service
// validation, for tests that need specific stored states.
func seed(t *testing.T, store *memStore, id, userID, company, applied string, status domain.ApplicationStatus) *domain.JobApplication {
	t.Helper()
	app := &domain.JobApplication{
		ID:                  id,
		UserID:              userID,
		CompanyName:         company,
		PositionTitle:       "Engineer",
		Status:              status,
		ApplicationDate:     date(t, applied),
		AreaOfWork:          "Backend",
		ApplicationSentDate: date(t, applied),
	}
	if err := store.Create(context.Background(), app); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
	return app
}
