package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/outbox"
	"github.com/prashikshan/prashikshan-cli/status"
)

const dateFormat = "2006-01-02"
const timestampFormat = "2006-01-02 15:04"

// InternshipTable renders internships as a markdown table.
func InternshipTable(internships []api.Internship) string {
	if len(internships) == 0 {
		return "No internships found.\n"
	}

	var sb strings.Builder
	sb.WriteString("| ID | Title | Location | Stipend | Credits | Status |\n")
	sb.WriteString("|----|-------|----------|---------|---------|--------|\n")
	for _, in := range internships {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			in.ID,
			in.Title,
			internshipLocation(&in),
			formatStipend(in.Stipend),
			formatOptionalInt(in.Credits),
			in.Status))
	}
	sb.WriteString(fmt.Sprintf("\n%d internship(s)\n", len(internships)))
	return sb.String()
}

// InternshipDetail renders one internship, converting its rich-text
// description with conv when set.
func InternshipDetail(in *api.Internship, conv *Converter) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", in.Title))
	sb.WriteString(fmt.Sprintf("**ID**: `%s`\n", in.ID))
	sb.WriteString(fmt.Sprintf("**Status**: %s\n", in.Status))
	sb.WriteString(fmt.Sprintf("**Location**: %s\n", internshipLocation(in)))
	sb.WriteString(fmt.Sprintf("**Stipend**: %s\n", formatStipend(in.Stipend)))
	if in.DurationWeeks != nil {
		sb.WriteString(fmt.Sprintf("**Duration**: %d weeks\n", *in.DurationWeeks))
	}
	if in.Credits != nil {
		sb.WriteString(fmt.Sprintf("**Credits**: %d\n", *in.Credits))
	}
	if in.StartDate != nil && *in.StartDate != "" {
		sb.WriteString(fmt.Sprintf("**Starts**: %s\n", *in.StartDate))
	}
	if len(in.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("**Skills**: %s\n", strings.Join(in.Skills, ", ")))
	}
	sb.WriteString(fmt.Sprintf("**Posted**: %s\n", in.CreatedAt.Format(dateFormat)))

	if in.Description != nil && *in.Description != "" {
		body := *in.Description
		if conv != nil {
			if converted, err := conv.Markdown(body); err == nil {
				body = converted
			}
		}
		sb.WriteString("\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ApplicationTable renders applications with the combined status as seen by
// viewer.
func ApplicationTable(applications []api.Application, viewer status.Role) string {
	if len(applications) == 0 {
		return "No applications found.\n"
	}

	var sb strings.Builder
	sb.WriteString("| ID | Internship | Applicant | Applied | Status |\n")
	sb.WriteString("|----|------------|-----------|---------|--------|\n")
	for _, app := range applications {
		title := app.InternshipID
		if app.Internship != nil {
			title = app.Internship.Title
		}
		applicant := app.StudentID
		if app.Student != nil {
			applicant = app.Student.Name
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			app.ID,
			title,
			applicant,
			app.AppliedAt.Format(dateFormat),
			FormatStatus(app.CombinedStatus(viewer))))
	}
	sb.WriteString(fmt.Sprintf("\n%d application(s)\n", len(applications)))
	return sb.String()
}

// ApplicationDetail renders one application for viewer. Admins additionally
// see both raw decision fields.
func ApplicationDetail(app *api.Application, viewer status.Role) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Application %s\n\n", app.ID))
	if app.Internship != nil {
		sb.WriteString(fmt.Sprintf("**Internship**: %s (`%s`)\n", app.Internship.Title, app.InternshipID))
	} else {
		sb.WriteString(fmt.Sprintf("**Internship**: `%s`\n", app.InternshipID))
	}
	if app.Student != nil {
		sb.WriteString(fmt.Sprintf("**Applicant**: %s <%s>\n", app.Student.Name, app.Student.Email))
	}
	sb.WriteString(fmt.Sprintf("**Applied**: %s\n", app.AppliedAt.Format(timestampFormat)))
	sb.WriteString(fmt.Sprintf("**Status**: %s\n", FormatStatus(app.CombinedStatus(viewer))))
	if viewer == status.RoleAdmin {
		sb.WriteString(fmt.Sprintf("**Industry decision**: %s\n", app.IndustryStatus))
		sb.WriteString(fmt.Sprintf("**Faculty decision**: %s\n", app.FacultyStatus))
	}
	if app.ResumeSnapshotURL != nil && *app.ResumeSnapshotURL != "" {
		sb.WriteString(fmt.Sprintf("**Resume**: %s\n", *app.ResumeSnapshotURL))
	}
	return sb.String()
}

// LogbookTable renders logbook entries oldest first.
func LogbookTable(entries []api.LogbookEntry) string {
	if len(entries) == 0 {
		return "No logbook entries found.\n"
	}

	sorted := make([]api.LogbookEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EntryDate < sorted[j].EntryDate
	})

	var total float64
	var sb strings.Builder
	sb.WriteString("| ID | Date | Hours | Approved | Description |\n")
	sb.WriteString("|----|------|-------|----------|-------------|\n")
	for _, e := range sorted {
		sb.WriteString(fmt.Sprintf("| %s | %s | %.1f | %s | %s |\n",
			e.ID,
			e.EntryDate,
			e.Hours,
			approvedMark(e.Approved),
			Excerpt(e.Description, 60)))
		total += e.Hours
	}
	sb.WriteString(fmt.Sprintf("\n%d entries, %.1f hours total\n", len(sorted), total))
	return sb.String()
}

// DraftTable renders queued logbook drafts.
func DraftTable(drafts []*outbox.Draft) string {
	if len(drafts) == 0 {
		return "No queued drafts.\n"
	}

	var sb strings.Builder
	sb.WriteString("| ID | Date | Hours | Status | Queued | Last error |\n")
	sb.WriteString("|----|------|-------|--------|--------|------------|\n")
	for _, d := range drafts {
		sb.WriteString(fmt.Sprintf("| %s | %s | %.1f | %s | %s | %s |\n",
			d.ID,
			d.EntryDate,
			d.Hours,
			string(d.Status),
			d.CreatedAt.Format(timestampFormat),
			Excerpt(d.LastError, 50)))
	}
	sb.WriteString(fmt.Sprintf("\n%d draft(s) waiting to sync\n", len(drafts)))
	return sb.String()
}

// NotificationList renders notifications newest first, unread flagged.
func NotificationList(notifications []api.Notification, conv *Converter) string {
	if len(notifications) == 0 {
		return "No notifications.\n"
	}

	sorted := make([]api.Notification, len(notifications))
	copy(sorted, notifications)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var sb strings.Builder
	unread := 0
	for _, n := range sorted {
		marker := " "
		if !n.Read {
			marker = "●"
			unread++
		}
		sb.WriteString(fmt.Sprintf("%s [%s] %s (%s)\n", marker, n.ID, n.Title, n.CreatedAt.Format(timestampFormat)))
		if n.Body != nil && *n.Body != "" {
			body := *n.Body
			if conv != nil {
				if converted, err := conv.Markdown(body); err == nil {
					body = converted
				}
			}
			for _, line := range strings.Split(body, "\n") {
				sb.WriteString("    " + line + "\n")
			}
		}
	}
	sb.WriteString(fmt.Sprintf("\n%d notification(s), %d unread\n", len(sorted), unread))
	return sb.String()
}

// UserTable renders platform accounts.
func UserTable(users []api.User) string {
	if len(users) == 0 {
		return "No users found.\n"
	}

	var sb strings.Builder
	sb.WriteString("| ID | Name | Email | Role | Active | Joined |\n")
	sb.WriteString("|----|------|-------|------|--------|--------|\n")
	for _, u := range users {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			u.ID,
			u.Name,
			u.Email,
			u.Role,
			activeMark(u.IsActive),
			u.CreatedAt.Format(dateFormat)))
	}
	sb.WriteString(fmt.Sprintf("\n%d user(s)\n", len(users)))
	return sb.String()
}

// Whoami renders the signed-in account with token expiry.
func Whoami(user *api.User, expiresAt *time.Time) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Name**: %s\n", user.Name))
	sb.WriteString(fmt.Sprintf("**Email**: %s\n", user.Email))
	sb.WriteString(fmt.Sprintf("**Role**: %s\n", user.Role))
	sb.WriteString(fmt.Sprintf("**ID**: `%s`\n", user.ID))
	if user.CollegeID != nil && *user.CollegeID != "" {
		sb.WriteString(fmt.Sprintf("**College**: `%s`\n", *user.CollegeID))
	}
	if expiresAt != nil {
		sb.WriteString(fmt.Sprintf("**Session expires**: %s\n", expiresAt.Format(timestampFormat)))
	}
	return sb.String()
}

// Dashboard renders the analytics summary.
func Dashboard(m *api.MetricsSummary) string {
	var sb strings.Builder
	sb.WriteString("## Dashboard\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Open internships | %d |\n", m.InternshipsOpen))
	sb.WriteString(fmt.Sprintf("| Applications submitted | %d |\n", m.ApplicationsSubmitted))
	sb.WriteString(fmt.Sprintf("| Applications pending review | %d |\n", m.ApplicationsPendingReview))
	sb.WriteString(fmt.Sprintf("| Logbook entries | %d |\n", m.LogbookEntries))
	sb.WriteString(fmt.Sprintf("| Credits awarded | %d |\n", m.CreditsAwarded))
	sb.WriteString(fmt.Sprintf("| Hours this week | %.1f |\n", m.WeeklyHours))
	return sb.String()
}

// FormatStatus formats a combined application status with an indicator.
func FormatStatus(s status.Status) string {
	switch s {
	case status.StatusPending:
		return "⏳ pending"
	case status.StatusInterviewing:
		return "💬 interviewing"
	case status.StatusApproved:
		return "✅ approved"
	case status.StatusRejected:
		return "❌ rejected"
	default:
		return string(s)
	}
}

func approvedMark(approved bool) string {
	if approved {
		return "✓"
	}
	return "○"
}

func activeMark(active bool) string {
	if active {
		return "✓"
	}
	return "✗ deactivated"
}

func internshipLocation(in *api.Internship) string {
	if in.Remote {
		return "remote"
	}
	if in.Location != nil && *in.Location != "" {
		return *in.Location
	}
	return "-"
}

func formatStipend(stipend *float64) string {
	if stipend == nil || *stipend == 0 {
		return "unpaid"
	}
	return fmt.Sprintf("₹%.0f/mo", *stipend)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
