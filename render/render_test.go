package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/outbox"
	"github.com/prashikshan/prashikshan-cli/render"
	"github.com/prashikshan/prashikshan-cli/status"
)

func strPtr(s string) *string { return &s }

func TestConverter_PlainTextPassesThrough(t *testing.T) {
	conv := render.NewConverter()
	out, err := conv.Markdown("Worked on the data pipeline.\nFixed two bugs.")
	require.NoError(t, err)
	assert.Equal(t, "Worked on the data pipeline.\nFixed two bugs.", out)
}

func TestConverter_HTMLBecomesMarkdown(t *testing.T) {
	conv := render.NewConverter()
	out, err := conv.Markdown("<h2>About the role</h2><p>Build <strong>Go</strong> services.</p><ul><li>APIs</li><li>Workers</li></ul>")
	require.NoError(t, err)
	assert.Contains(t, out, "## About the role")
	assert.Contains(t, out, "**Go**")
	assert.Contains(t, out, "- APIs")
	assert.NotContains(t, out, "<p>")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "plain text", render.Excerpt("plain   text", 100))
	assert.Equal(t, "Build Go services.", render.Excerpt("<p>Build <b>Go</b> services.</p>", 100))

	long := strings.Repeat("a", 100)
	got := render.Excerpt(long, 10)
	assert.LessOrEqual(t, len([]rune(got)), 10)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestInternshipTable(t *testing.T) {
	stipend := 12000.0
	credits := 4
	table := render.InternshipTable([]api.Internship{
		{ID: "in-1", Title: "Backend Intern", Remote: true, Stipend: &stipend, Credits: &credits, Status: "open"},
		{ID: "in-2", Title: "QA Intern", Location: strPtr("Pune"), Status: "open"},
	})

	assert.Contains(t, table, "| in-1 | Backend Intern | remote | ₹12000/mo | 4 | open |")
	assert.Contains(t, table, "| in-2 | QA Intern | Pune | unpaid | - | open |")
	assert.Contains(t, table, "2 internship(s)")
}

func TestInternshipTable_Empty(t *testing.T) {
	assert.Equal(t, "No internships found.\n", render.InternshipTable(nil))
}

func TestApplicationTable_UsesViewerStatus(t *testing.T) {
	apps := []api.Application{{
		ID:             "app-1",
		InternshipID:   "in-1",
		StudentID:      "stu-1",
		AppliedAt:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		IndustryStatus: status.DecisionApproved,
		FacultyStatus:  status.DecisionPending,
		Internship:     &api.ApplicationInternship{ID: "in-1", Title: "Backend Intern"},
		Student:        &api.ApplicationStudent{ID: "stu-1", Name: "Asha", Email: "asha@example.edu"},
	}}

	student := render.ApplicationTable(apps, status.RoleStudent)
	assert.Contains(t, student, "interviewing")

	faculty := render.ApplicationTable(apps, status.RoleFaculty)
	assert.Contains(t, faculty, "pending")
	assert.NotContains(t, faculty, "interviewing")
}

func TestApplicationDetail_AdminSeesBothDecisions(t *testing.T) {
	app := &api.Application{
		ID:             "app-1",
		InternshipID:   "in-1",
		AppliedAt:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		IndustryStatus: status.DecisionApproved,
		FacultyStatus:  status.DecisionRejected,
	}

	admin := render.ApplicationDetail(app, status.RoleAdmin)
	assert.Contains(t, admin, "Industry decision")
	assert.Contains(t, admin, "Faculty decision")

	student := render.ApplicationDetail(app, status.RoleStudent)
	assert.NotContains(t, student, "Industry decision")
	assert.Contains(t, student, "rejected")
}

func TestLogbookTable_SortsAndTotalsHours(t *testing.T) {
	table := render.LogbookTable([]api.LogbookEntry{
		{ID: "e-2", EntryDate: "2025-06-03", Hours: 4.5, Description: "Later entry"},
		{ID: "e-1", EntryDate: "2025-06-02", Hours: 3, Approved: true, Description: "Earlier entry"},
	})

	first := strings.Index(table, "e-1")
	second := strings.Index(table, "e-2")
	assert.Less(t, first, second)
	assert.Contains(t, table, "7.5 hours total")
	assert.Contains(t, table, "✓")
}

func TestDraftTable(t *testing.T) {
	table := render.DraftTable([]*outbox.Draft{{
		ID:        "d-1",
		EntryDate: "2025-06-02",
		Hours:     6,
		Status:    outbox.StatusFailed,
		CreatedAt: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
		LastError: "dial tcp: connection refused",
	}})

	assert.Contains(t, table, "d-1")
	assert.Contains(t, table, "failed")
	assert.Contains(t, table, "connection refused")
	assert.Contains(t, table, "1 draft(s)")
}

func TestNotificationList_FlagsUnreadNewestFirst(t *testing.T) {
	list := render.NotificationList([]api.Notification{
		{ID: "n-1", Title: "Older read", Read: true, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "n-2", Title: "Newer unread", Body: strPtr("<p>Faculty approved your entry.</p>"), CreatedAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
	}, render.NewConverter())

	assert.Less(t, strings.Index(list, "n-2"), strings.Index(list, "n-1"))
	assert.Contains(t, list, "● [n-2]")
	assert.Contains(t, list, "Faculty approved your entry.")
	assert.NotContains(t, list, "<p>")
	assert.Contains(t, list, "1 unread")
}

func TestDashboard(t *testing.T) {
	out := render.Dashboard(&api.MetricsSummary{
		InternshipsOpen:       5,
		ApplicationsSubmitted: 12,
		WeeklyHours:           18.5,
	})
	assert.Contains(t, out, "| Open internships | 5 |")
	assert.Contains(t, out, "| Hours this week | 18.5 |")
}
