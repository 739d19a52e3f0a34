package api

import (
	"time"

	"github.com/prashikshan/prashikshan-cli/status"
)

// Profile is a student or faculty profile attached to a user.
type Profile struct {
	UserID       string          `json:"user_id"`
	College      *string         `json:"college,omitempty"`
	EnrollmentNo *string         `json:"enrollment_no,omitempty"`
	Course       *string         `json:"course,omitempty"`
	Year         *string         `json:"year,omitempty"`
	Designation  *string         `json:"designation,omitempty"`
	Department   *string         `json:"department,omitempty"`
	FacultyID    *string         `json:"faculty_id,omitempty"`
	Skills       *ProfileSkills  `json:"skills,omitempty"`
	ResumeURL    *string         `json:"resume_url,omitempty"`
	Verified     bool            `json:"verified"`
}

// ProfileSkills is the nested skills record on a profile.
type ProfileSkills struct {
	Skills []string `json:"skills,omitempty"`
}

// IndustryProfile is the company profile attached to an industry user.
type IndustryProfile struct {
	UserID            string  `json:"user_id"`
	CompanyName       string  `json:"company_name"`
	CompanyWebsite    *string `json:"company_website,omitempty"`
	ContactPersonName string  `json:"contact_person_name"`
	ContactNumber     string  `json:"contact_number"`
	Designation       *string `json:"designation,omitempty"`
	CompanyAddress    *string `json:"company_address,omitempty"`
	Verified          bool    `json:"verified"`
}

// User is a platform account.
type User struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Role            status.Role      `json:"role"`
	Phone           *string          `json:"phone,omitempty"`
	University      *string          `json:"university,omitempty"`
	CollegeID       *string          `json:"college_id"`
	EmailVerified   bool             `json:"email_verified"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	Profile         *Profile         `json:"profile,omitempty"`
	IndustryProfile *IndustryProfile `json:"industry_profile,omitempty"`
}

// UserUpdate is a partial update of the current user. Nil fields are omitted.
type UserUpdate struct {
	Name            *string                `json:"name,omitempty"`
	Phone           *string                `json:"phone,omitempty"`
	University      *string                `json:"university,omitempty"`
	CollegeID       *string                `json:"college_id,omitempty"`
	Profile         *ProfileUpdate         `json:"profile,omitempty"`
	IndustryProfile *IndustryProfileUpdate `json:"industry_profile,omitempty"`
}

// ProfileUpdate is a partial update of a student/faculty profile.
type ProfileUpdate struct {
	College      *string  `json:"college,omitempty"`
	EnrollmentNo *string  `json:"enrollment_no,omitempty"`
	Course       *string  `json:"course,omitempty"`
	Year         *string  `json:"year,omitempty"`
	Designation  *string  `json:"designation,omitempty"`
	Department   *string  `json:"department,omitempty"`
	FacultyID    *string  `json:"faculty_id,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	ResumeURL    *string  `json:"resume_url,omitempty"`
}

// IndustryProfileUpdate is a partial update of an industry profile.
type IndustryProfileUpdate struct {
	CompanyName       *string `json:"company_name,omitempty"`
	CompanyWebsite    *string `json:"company_website,omitempty"`
	ContactPersonName *string `json:"contact_person_name,omitempty"`
	ContactNumber     *string `json:"contact_number,omitempty"`
	Designation       *string `json:"designation,omitempty"`
	CompanyAddress    *string `json:"company_address,omitempty"`
}

// Internship is a posted internship opportunity.
type Internship struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Skills        []string   `json:"skills,omitempty"`
	Stipend       *float64   `json:"stipend,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Remote        bool       `json:"remote"`
	StartDate     *string    `json:"start_date,omitempty"`
	DurationWeeks *int       `json:"duration_weeks,omitempty"`
	Credits       *int       `json:"credits,omitempty"`
	Status        string     `json:"status"`
	PostedBy      string     `json:"posted_by"`
	CreatedAt     time.Time  `json:"created_at"`
}

// InternshipCreate is the payload for posting a new internship.
type InternshipCreate struct {
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Stipend       *float64 `json:"stipend,omitempty"`
	Location      *string  `json:"location,omitempty"`
	Remote        bool     `json:"remote"`
	StartDate     *string  `json:"start_date,omitempty"`
	DurationWeeks *int     `json:"duration_weeks,omitempty"`
	Credits       *int     `json:"credits,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// InternshipUpdate is a partial update of an internship.
type InternshipUpdate struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Stipend       *float64 `json:"stipend,omitempty"`
	Location      *string  `json:"location,omitempty"`
	Remote        *bool    `json:"remote,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	DurationWeeks *int     `json:"duration_weeks,omitempty"`
	Credits       *int     `json:"credits,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// ApplicationInternship is the internship summary nested on an application.
type ApplicationInternship struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	Location      *string  `json:"location,omitempty"`
	Remote        bool     `json:"remote"`
	Stipend       *float64 `json:"stipend,omitempty"`
	DurationWeeks *int     `json:"duration_weeks,omitempty"`
	Credits       *int     `json:"credits,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	Status        string   `json:"status,omitempty"`
}

// ApplicationStudent is the student summary nested on an application.
type ApplicationStudent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Application is a student's application to an internship. The two decision
// fields are independent; use status.Combined for the per-role display value.
type Application struct {
	ID                string                 `json:"id"`
	InternshipID      string                 `json:"internship_id"`
	StudentID         string                 `json:"student_id"`
	AppliedAt         time.Time              `json:"applied_at"`
	IndustryStatus    status.Decision        `json:"industry_status"`
	FacultyStatus     status.Decision        `json:"faculty_status"`
	ResumeSnapshotURL *string                `json:"resume_snapshot_url,omitempty"`
	Student           *ApplicationStudent    `json:"student,omitempty"`
	Internship        *ApplicationInternship `json:"internship,omitempty"`
}

// CombinedStatus derives the display status of the application for viewer.
func (a *Application) CombinedStatus(viewer status.Role) status.Status {
	return status.Combined(a.IndustryStatus, a.FacultyStatus, viewer)
}

// ApplicationCreate is the payload for applying to an internship.
type ApplicationCreate struct {
	InternshipID      string  `json:"internship_id"`
	ResumeSnapshotURL *string `json:"resume_snapshot_url,omitempty"`
}

// ApplicationUpdate is a partial review update. Only the reviewer's own
// decision field, or the resume snapshot, is ever sent.
type ApplicationUpdate struct {
	ResumeSnapshotURL *string          `json:"resume_snapshot_url,omitempty"`
	IndustryStatus    *status.Decision `json:"industry_status,omitempty"`
	FacultyStatus     *status.Decision `json:"faculty_status,omitempty"`
}

// LogbookAttachment is a named file reference on a logbook entry.
type LogbookAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LogbookEntry is a server-persisted logbook entry.
type LogbookEntry struct {
	ID              string              `json:"id"`
	ApplicationID   string              `json:"application_id"`
	StudentID       string              `json:"student_id"`
	EntryDate       string              `json:"entry_date"`
	Hours           float64             `json:"hours"`
	Description     string              `json:"description"`
	Attachments     []LogbookAttachment `json:"attachments,omitempty"`
	FacultyComments *string             `json:"faculty_comments,omitempty"`
	Approved        bool                `json:"approved"`
	CreatedAt       time.Time           `json:"created_at"`
}

// LogbookEntryCreate is the payload for recording a logbook entry.
type LogbookEntryCreate struct {
	ApplicationID string              `json:"application_id"`
	EntryDate     string              `json:"entry_date"`
	Hours         float64             `json:"hours"`
	Description   string              `json:"description"`
	Attachments   []LogbookAttachment `json:"attachments,omitempty"`
}

// LogbookEntryUpdate is a partial update of a logbook entry.
type LogbookEntryUpdate struct {
	Approved        *bool               `json:"approved,omitempty"`
	FacultyComments *string             `json:"faculty_comments,omitempty"`
	EntryDate       *string             `json:"entry_date,omitempty"`
	Hours           *float64            `json:"hours,omitempty"`
	Description     *string             `json:"description,omitempty"`
	Attachments     []LogbookAttachment `json:"attachments,omitempty"`
}

// Notification is a message delivered to a user.
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     string         `json:"title"`
	Body      *string        `json:"body,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}

// NotificationCreate is the payload for sending a single notification.
type NotificationCreate struct {
	UserID  string         `json:"user_id"`
	Title   string         `json:"title"`
	Body    string         `json:"body,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// NotificationBulkCreate targets a role or an explicit user list.
type NotificationBulkCreate struct {
	Title      string         `json:"title"`
	Body       string         `json:"body,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	TargetRole *status.Role   `json:"target_role,omitempty"`
	UserIDs    []string       `json:"user_ids,omitempty"`
}

// MetricsSummary is the analytics dashboard read model.
type MetricsSummary struct {
	InternshipsOpen            int     `json:"internships_open"`
	ApplicationsSubmitted      int     `json:"applications_submitted"`
	LogbookEntries             int     `json:"logbook_entries"`
	CreditsAwarded             int     `json:"credits_awarded"`
	ApplicationsPendingReview  int     `json:"applications_pending_review"`
	WeeklyHours                float64 `json:"weekly_hours"`
}

// College is an institution registered on the platform.
type College struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Address           *string `json:"address,omitempty"`
	CoordinatorUserID *string `json:"coordinator_user_id,omitempty"`
}

// CollegeCreate is the payload for registering a college.
type CollegeCreate struct {
	Name              string  `json:"name"`
	Address           *string `json:"address,omitempty"`
	CoordinatorUserID *string `json:"coordinator_user_id,omitempty"`
}

// Credit is an academic credit award for a completed internship.
type Credit struct {
	ID              string     `json:"id"`
	StudentID       string     `json:"student_id"`
	InternshipID    string     `json:"internship_id"`
	CreditsAwarded  int        `json:"credits_awarded"`
	FacultySignedAt *time.Time `json:"faculty_signed_at,omitempty"`
}

// CreditCreate is the payload for awarding credits.
type CreditCreate struct {
	StudentID       string     `json:"student_id"`
	InternshipID    string     `json:"internship_id"`
	CreditsAwarded  int        `json:"credits_awarded"`
	FacultySignedAt *time.Time `json:"faculty_signed_at,omitempty"`
}

// Report is a generated internship completion report. The QR code token
// resolves the report without authentication for on-paper verification.
type Report struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	PDFURL        string    `json:"pdf_url"`
	GeneratedAt   time.Time `json:"generated_at"`
	QRCodeToken   string    `json:"qr_code_token"`
}

// ReportCreate is the payload for registering a generated report.
type ReportCreate struct {
	ApplicationID string `json:"application_id"`
	PDFURL        string `json:"pdf_url"`
}
