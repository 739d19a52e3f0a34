// Package status derives a single display status for an application from its
// two independent review decisions. The derived value is a read model only;
// it is never written back to the API.
package status

// Decision is a single reviewer's decision on an application.
type Decision string

// Decision values as they appear on the wire.
const (
	DecisionPending  Decision = "PENDING"
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// Role identifies the viewer's role on the platform.
type Role string

// Role values as they appear on the wire.
const (
	RoleStudent  Role = "STUDENT"
	RoleFaculty  Role = "FACULTY"
	RoleIndustry Role = "INDUSTRY"
	RoleAdmin    Role = "ADMIN"
)

// Status is the combined display status of an application.
type Status string

// Combined status values. Interviewing means exactly one reviewer has
// approved and the other is still pending.
const (
	StatusPending      Status = "PENDING"
	StatusApproved     Status = "APPROVED"
	StatusRejected     Status = "REJECTED"
	StatusInterviewing Status = "INTERVIEWING"
)

// Combined computes the display status for the given viewer.
//
// A rejection from either side dominates regardless of the other decision.
// Faculty and industry viewers see their own decision verbatim. Everyone
// else gets the student view: approved only when both sides approved,
// interviewing when exactly one side approved.
func Combined(industry, faculty Decision, viewer Role) Status {
	if industry == DecisionRejected || faculty == DecisionRejected {
		return StatusRejected
	}

	switch viewer {
	case RoleFaculty:
		return Status(faculty)
	case RoleIndustry:
		return Status(industry)
	}

	switch {
	case industry == DecisionApproved && faculty == DecisionApproved:
		return StatusApproved
	case industry == DecisionApproved || faculty == DecisionApproved:
		return StatusInterviewing
	default:
		return StatusPending
	}
}
