package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prashikshan/prashikshan-cli/status"
)

func TestCombined_RejectionDominates(t *testing.T) {
	decisions := []status.Decision{
		status.DecisionPending,
		status.DecisionApproved,
		status.DecisionRejected,
	}
	roles := []status.Role{
		status.RoleStudent,
		status.RoleFaculty,
		status.RoleIndustry,
		status.RoleAdmin,
	}

	for _, other := range decisions {
		for _, role := range roles {
			assert.Equal(t, status.StatusRejected,
				status.Combined(status.DecisionRejected, other, role),
				"industry REJECTED, faculty %s, viewer %s", other, role)
			assert.Equal(t, status.StatusRejected,
				status.Combined(other, status.DecisionRejected, role),
				"industry %s, faculty REJECTED, viewer %s", other, role)
		}
	}
}

func TestCombined_FacultyViewerSeesOwnDecision(t *testing.T) {
	for _, faculty := range []status.Decision{status.DecisionPending, status.DecisionApproved} {
		for _, industry := range []status.Decision{status.DecisionPending, status.DecisionApproved} {
			got := status.Combined(industry, faculty, status.RoleFaculty)
			assert.Equal(t, status.Status(faculty), got,
				"industry %s, faculty %s", industry, faculty)
		}
	}
}

func TestCombined_IndustryViewerSeesOwnDecision(t *testing.T) {
	for _, faculty := range []status.Decision{status.DecisionPending, status.DecisionApproved} {
		for _, industry := range []status.Decision{status.DecisionPending, status.DecisionApproved} {
			got := status.Combined(industry, faculty, status.RoleIndustry)
			assert.Equal(t, status.Status(industry), got,
				"industry %s, faculty %s", industry, faculty)
		}
	}
}

func TestCombined_StudentView(t *testing.T) {
	tests := []struct {
		name     string
		industry status.Decision
		faculty  status.Decision
		want     status.Status
	}{
		{"both approved", status.DecisionApproved, status.DecisionApproved, status.StatusApproved},
		{"industry approved only", status.DecisionApproved, status.DecisionPending, status.StatusInterviewing},
		{"faculty approved only", status.DecisionPending, status.DecisionApproved, status.StatusInterviewing},
		{"both pending", status.DecisionPending, status.DecisionPending, status.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Combined(tt.industry, tt.faculty, status.RoleStudent))
			// Admin has no decision of its own and gets the student read model.
			assert.Equal(t, tt.want, status.Combined(tt.industry, tt.faculty, status.RoleAdmin))
		})
	}
}

func TestCombined_ExampleScenario(t *testing.T) {
	// industry PENDING, faculty APPROVED: each role sees a different status.
	assert.Equal(t, status.StatusInterviewing,
		status.Combined(status.DecisionPending, status.DecisionApproved, status.RoleStudent))
	assert.Equal(t, status.StatusApproved,
		status.Combined(status.DecisionPending, status.DecisionApproved, status.RoleFaculty))
	assert.Equal(t, status.StatusPending,
		status.Combined(status.DecisionPending, status.DecisionApproved, status.RoleIndustry))
}
