package analytics

import (
	"errors"
	"testing"

	"github.com/janmeier/trackjob/internal/domain"
)

func TestResolveDateRange(t *testing.T) {
	tests := []struct {
		name      string
		applied   []string
		reference string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "reference after latest application",
			applied:   []string{"2024-01-05", "2024-01-01", "2024-01-03"},
			reference: "2024-02-01",
			wantStart: "2024-01-01",
			wantEnd:   "2024-02-01",
		},
		{
			name:      "future-dated application extends past reference",
			applied:   []string{"2024-01-01", "2024-03-15"},
			reference: "2024-02-01",
			wantStart: "2024-01-01",
			wantEnd:   "2024-03-15",
		},
		{
			name:      "single record on the reference day",
			applied:   []string{"2024-02-01"},
			reference: "2024-02-01",
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]domain.JobApplication, 0, len(tt.applied))
			for i, day := range tt.applied {
				records = append(records, app(t, string(rune('a'+i)), day, domain.StatusApplied))
			}
			rng, err := ResolveDateRange(records, date(t, tt.reference))
			if err != nil {
				t.Fatalf("ResolveDateRange: %v", err)
			}
			if got := rng.Start.String(); got != tt.wantStart {
				t.Errorf("Start = %s, want %s", got, tt.wantStart)
			}
			if got := rng.End.String(); got != tt.wantEnd {
				t.Errorf("End = %s, want %s", got, tt.wantEnd)
			}
			// The window must contain every application date and the
			// reference day must not exceed the end.
			for _, rec := range records {
				if rec.ApplicationDate.Before(rng.Start.Time) || rec.ApplicationDate.After(rng.End.Time) {
					t.Errorf("application date %s outside [%s, %s]", rec.ApplicationDate, rng.Start, rng.End)
				}
			}
			if date(t, tt.reference).After(rng.End.Time) {
				t.Errorf("End %s is before reference %s", rng.End, tt.reference)
			}
		})
	}
}

func TestResolveDateRangeEmpty(t *testing.T) {
	_, err := ResolveDateRange(nil, date(t, "2024-01-01"))
	if !errors.Is(err, ErrNoApplications) {
		t.Fatalf("err = %v, want ErrNoApplications", err)
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		count int
	}{
		{"single day", "2024-03-10", "2024-03-10", 1},
		{"leap february", "2024-02-27", "2024-03-02", 5},
		{"non-leap february", "2023-02-27", "2023-03-02", 4},
		{"year boundary", "2023-12-30", "2024-01-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := DateRange{Start: date(t, tt.start), End: date(t, tt.end)}
			days := rng.Days()
			if len(days) != tt.count {
				t.Fatalf("len(days) = %d, want %d", len(days), tt.count)
			}
			if days[0].String() != tt.start {
				t.Errorf("first day = %s, want %s", days[0], tt.start)
			}
			if days[len(days)-1].String() != tt.end {
				t.Errorf("last day = %s, want %s", days[len(days)-1], tt.end)
			}
			for i := 1; i < len(days); i++ {
				if days[i-1].DaysUntil(days[i]) != 1 {
					t.Errorf("days %s -> %s not consecutive", days[i-1], days[i])
				}
			}
		})
	}
}

func TestDaysInvertedRange(t *testing.T) {
	rng := DateRange{Start: date(t, "2024-05-02"), End: date(t, "2024-05-01")}
	if days := rng.Days(); days != nil {
		t.Fatalf("inverted range produced %d days, want none", len(days))
	}
}
