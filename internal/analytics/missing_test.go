package analytics

import (
	"testing"

	"github.com/janmeier/trackjob/internal/domain"
)

func TestIsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.JobApplication
		want bool
	}{
		{
			name: "complete applied record needs no first response",
			rec: app(t, "a", "2024-01-01", domain.StatusApplied,
				withArea("Backend"), withSent(t, "2024-01-01")),
			want: false,
		},
		{
			name: "missing area of work",
			rec:  app(t, "b", "2024-01-01", domain.StatusApplied, withSent(t, "2024-01-01")),
			want: true,
		},
		{
			name: "missing sent date",
			rec:  app(t, "c", "2024-01-01", domain.StatusApplied, withArea("Backend")),
			want: true,
		},
		{
			name: "offer without offer date",
			rec: app(t, "d", "2024-01-01", domain.StatusOffer,
				withArea("Backend"), withSent(t, "2024-01-01"), withResponse(t, "2024-01-05")),
			want: true,
		},
		{
			name: "interview without scheduled date",
			rec: app(t, "e", "2024-01-01", domain.StatusInterview,
				withArea("Backend"), withSent(t, "2024-01-01"), withResponse(t, "2024-01-05")),
			want: true,
		},
		{
			name: "rejected without rejection date",
			rec: app(t, "f", "2024-01-01", domain.StatusRejected,
				withArea("Backend"), withSent(t, "2024-01-01"), withResponse(t, "2024-01-05")),
			want: true,
		},
		{
			name: "non-applied status without first response",
			rec: app(t, "g", "2024-01-01", domain.StatusInterview,
				withArea("Backend"), withSent(t, "2024-01-01"),
				withInterviewScheduled(t, "2024-01-10")),
			want: true,
		},
		{
			name: "complete interview record",
			rec: app(t, "h", "2024-01-01", domain.StatusInterview,
				withArea("Backend"), withSent(t, "2024-01-01"),
				withResponse(t, "2024-01-05"), withInterviewScheduled(t, "2024-01-10")),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIncomplete(tt.rec); got != tt.want {
				t.Errorf("IsIncomplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindIncomplete(t *testing.T) {
	complete := app(t, "ok", "2024-01-01", domain.StatusApplied,
		withArea("Backend"), withSent(t, "2024-01-01"))
	records := []domain.JobApplication{
		app(t, "first", "2024-01-03", domain.StatusApplied),
		complete,
		app(t, "second", "2024-01-01", domain.StatusApplied),
	}

	got := FindIncomplete(records, "")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Input order preserved; the workflow always takes the first element.
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("order = [%s, %s]", got[0].ID, got[1].ID)
	}

	got = FindIncomplete(records, "first")
	if len(got) != 1 || got[0].ID != "second" {
		t.Errorf("exclusion failed: %+v", got)
	}
}
