package main

import (
	"strings"
	"testing"

	"github.com/janmeier/trackjob/internal/domain"
)

func TestLoadApplications(t *testing.T) {
	input := strings.Join([]string{
		"Company Name,Position Title,Application Date,Status,Area of Work,First Response Date",
		"Acme,Backend Engineer,2024-03-01,applied,Backend,",
		"Globex,Data Engineer,2024/03/02,interviewing,Data,2024-03-08",
		",Missing Company,2024-03-03,applied,,",
		"Initech,Platform Engineer,not-a-date,applied,,",
	}, "\n")

	apps, invalid, err := loadApplications(strings.NewReader(input), "user-1")
	if err != nil {
		t.Fatalf("loadApplications: %v", err)
	}
	if invalid != 2 {
		t.Errorf("invalid = %d, want 2", invalid)
	}
	if len(apps) != 2 {
		t.Fatalf("len(apps) = %d, want 2", len(apps))
	}

	first := apps[0]
	if first.UserID != "user-1" || first.CompanyName != "Acme" {
		t.Errorf("first = %s/%s, want user-1/Acme", first.UserID, first.CompanyName)
	}
	if first.ID == "" {
		t.Error("expected generated ID")
	}
	if first.ApplicationDate.String() != "2024-03-01" {
		t.Errorf("ApplicationDate = %s, want 2024-03-01", first.ApplicationDate)
	}

	second := apps[1]
	if second.Status != domain.StatusInterview {
		t.Errorf("Status = %q, want %q", second.Status, domain.StatusInterview)
	}
	if second.ApplicationDate.String() != "2024-03-02" {
		t.Errorf("slash date = %s, want 2024-03-02", second.ApplicationDate)
	}
	if second.FirstResponseDate.String() != "2024-03-08" {
		t.Errorf("FirstResponseDate = %s, want 2024-03-08", second.FirstResponseDate)
	}
}

func TestLoadApplicationsMissingColumn(t *testing.T) {
	input := "Company Name,Status\nAcme,applied\n"
	if _, _, err := loadApplications(strings.NewReader(input), "user-1"); err == nil {
		t.Fatal("expected error for missing position_title column")
	}
}

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2024-03-01", "2024-03-01", true},
		{"2024/03/05", "2024-03-05", true},
		{"03/15/2024", "2024-03-15", true},
		{"15.03.2024", "2024-03-15", true},
		{"2024-03-01 09:30:00", "2024-03-01", true},
		{"yesterday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := parseFlexibleDate(tt.input)
		if tt.ok != (err == nil) {
			t.Errorf("parseFlexibleDate(%q) err = %v, want ok=%v", tt.input, err, tt.ok)
			continue
		}
		if tt.ok && got.String() != tt.want {
			t.Errorf("parseFlexibleDate(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  domain.ApplicationStatus
	}{
		{"applied", domain.StatusApplied},
		{"Interviewing", domain.StatusInterview},
		{"OFFER", domain.StatusOffer},
		{"declined", domain.StatusRejected},
		{"withdrew", domain.StatusWithdrawn},
		{"", domain.StatusApplied},
		{"ghosted", domain.StatusApplied},
	}
	for _, tt := range tests {
		if got := parseStatus(tt.input); got != tt.want {
			t.Errorf("parseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
