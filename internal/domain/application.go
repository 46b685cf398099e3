package domain

import "time"

// ApplicationStatus represents the current stage of a job application.
// Values include StatusApplied, StatusInterview, StatusOffer,
// StatusRejected, and StatusWithdrawn.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// JobApplication is one tracked application. ApplicationDate is the only
// required date; the lifecycle dates describe the process funnel
// (sent -> first response -> interview scheduled -> interview completed ->
// offer or rejection) and may be absent or historically inconsistent.
// Analytics code must tolerate that, never reject it.
type JobApplication struct {
	ID     string `gorm:"type:text;primaryKey" json:"id"`
	UserID string `gorm:"type:text;not null;index:idx_job_applications_user" json:"user_id"`

	CompanyName    string            `gorm:"type:text;not null" json:"company_name"`
	PositionTitle  string            `gorm:"type:text;not null" json:"position_title"`
	JobDescription string            `gorm:"type:text" json:"job_description,omitempty"`
	Status         ApplicationStatus `gorm:"type:text;not null;default:applied;index:idx_job_applications_status" json:"application_status"`

	ApplicationDate Date `gorm:"type:date;not null;index:idx_job_applications_date" json:"application_date"`

	AreaOfWork        string `gorm:"type:text" json:"area_of_work,omitempty"`
	JobLocation       string `gorm:"type:text" json:"job_location,omitempty"`
	JobType           string `gorm:"type:text" json:"job_type,omitempty"`
	WorkArrangement   string `gorm:"type:text" json:"work_arrangement,omitempty"`
	SalaryRange       string `gorm:"type:text" json:"salary_range,omitempty"`
	ApplicationMethod string `gorm:"type:text" json:"application_method,omitempty"`
	ContactPerson     string `gorm:"type:text" json:"contact_person,omitempty"`
	ContactEmail      string `gorm:"type:text" json:"contact_email,omitempty"`
	Notes             string `gorm:"type:text" json:"notes,omitempty"`

	// Lifecycle dates. Ordered in the funnel but not strictly monotonic
	// in real data.
	ApplicationSentDate    Date `gorm:"type:date" json:"application_sent_date"`
	FirstResponseDate      Date `gorm:"type:date" json:"first_response_date"`
	InterviewScheduledDate Date `gorm:"type:date" json:"interview_scheduled_date"`
	InterviewCompletedDate Date `gorm:"type:date" json:"interview_completed_date"`
	OfferReceivedDate      Date `gorm:"type:date" json:"offer_received_date"`
	OfferDeadlineDate      Date `gorm:"type:date" json:"offer_deadline_date"`
	RejectionDate          Date `gorm:"type:date" json:"rejection_date"`
	WithdrawalDate         Date `gorm:"type:date" json:"withdrawal_date"`
	FollowUpDate           Date `gorm:"type:date" json:"follow_up_date"`

	CVFileURL       string `gorm:"type:text" json:"cv_file_url,omitempty"`
	CVFileName      string `gorm:"type:text" json:"cv_file_name,omitempty"`
	CoverLetterURL  string `gorm:"type:text" json:"cover_letter_url,omitempty"`
	CoverLetterName string `gorm:"type:text" json:"cover_letter_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for JobApplication.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (JobApplication) TableName() string {
	return "job_applications"
}

// HasTerminalMarker reports whether any terminal outcome date is set:
// offer received, rejection, or withdrawal. A record with none of these is
// still in the active funnel regardless of its status text.
func (a JobApplication) HasTerminalMarker() bool {
	return !a.OfferReceivedDate.IsZero() || !a.RejectionDate.IsZero() || !a.WithdrawalDate.IsZero()
}
