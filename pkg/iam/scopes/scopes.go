package scopes

// ============================================================================
// SCOPES - HR / Recruitment platform
// ============================================================================

const (
	// Super scope - full access to everything
	ScopeAll = "*"

	// Admin scopes
	ScopeAdminAll   = "admin:*"
	ScopeAdminRead  = "admin:read"
	ScopeAdminWrite = "admin:write"

	// User/account management scopes
	ScopeUsersAll    = "users:*"
	ScopeUsersRead   = "users:read"
	ScopeUsersWrite  = "users:write"
	ScopeUsersDelete = "users:delete"

	// Employee scopes
	ScopeEmployeesAll   = "employees:*"
	ScopeEmployeesRead  = "employees:read"
	ScopeEmployeesWrite = "employees:write"

	// Leave balance scopes
	ScopeLeaveAll   = "leave:*"
	ScopeLeaveRead  = "leave:read"
	ScopeLeaveWrite = "leave:write"

	// Position scopes
	ScopePositionsAll    = "positions:*"
	ScopePositionsRead   = "positions:read"
	ScopePositionsWrite  = "positions:write"
	ScopePositionsDelete = "positions:delete"

	// Candidate scopes
	ScopeCandidatesAll    = "candidates:*"
	ScopeCandidatesRead   = "candidates:read"
	ScopeCandidatesWrite  = "candidates:write"
	ScopeCandidatesDelete = "candidates:delete"

	// Application scopes
	ScopeApplicationsAll   = "applications:*"
	ScopeApplicationsRead  = "applications:read"
	ScopeApplicationsWrite = "applications:write"

	// Interview scopes
	ScopeInterviewsAll      = "interviews:*"
	ScopeInterviewsRead     = "interviews:read"
	ScopeInterviewsWrite    = "interviews:write"
	ScopeInterviewsDelete   = "interviews:delete"
	ScopeInterviewsSchedule = "interviews:schedule"

	// Hiring scopes
	ScopeHiringAll     = "hiring:*"
	ScopeHiringRead    = "hiring:read"
	ScopeHiringConfirm = "hiring:confirm"

	// Reports scopes
	ScopeReportsAll  = "reports:*"
	ScopeReportsView = "reports:view"
)

// ScopeCategories organizes scopes by domain
var ScopeCategories = map[string][]string{
	"Administration": {
		ScopeAll,
		ScopeAdminAll,
		ScopeAdminRead,
		ScopeAdminWrite,
	},
	"Users": {
		ScopeUsersAll,
		ScopeUsersRead,
		ScopeUsersWrite,
		ScopeUsersDelete,
	},
	"Employees": {
		ScopeEmployeesAll,
		ScopeEmployeesRead,
		ScopeEmployeesWrite,
	},
	"Leave": {
		ScopeLeaveAll,
		ScopeLeaveRead,
		ScopeLeaveWrite,
	},
	"Positions": {
		ScopePositionsAll,
		ScopePositionsRead,
		ScopePositionsWrite,
		ScopePositionsDelete,
	},
	"Candidates": {
		ScopeCandidatesAll,
		ScopeCandidatesRead,
		ScopeCandidatesWrite,
		ScopeCandidatesDelete,
	},
	"Applications": {
		ScopeApplicationsAll,
		ScopeApplicationsRead,
		ScopeApplicationsWrite,
	},
	"Interviews": {
		ScopeInterviewsAll,
		ScopeInterviewsRead,
		ScopeInterviewsWrite,
		ScopeInterviewsDelete,
		ScopeInterviewsSchedule,
	},
	"Hiring": {
		ScopeHiringAll,
		ScopeHiringRead,
		ScopeHiringConfirm,
	},
	"Reports": {
		ScopeReportsAll,
		ScopeReportsView,
	},
}

// ScopeDescriptions provides human-readable descriptions
var ScopeDescriptions = map[string]string{
	ScopeAll: "Full access to all system resources",

	ScopeAdminAll:   "Full administrative access",
	ScopeAdminRead:  "View administrative settings",
	ScopeAdminWrite: "Modify administrative settings",

	ScopeUsersAll:    "Full access to user accounts",
	ScopeUsersRead:   "View user accounts",
	ScopeUsersWrite:  "Create and edit user accounts",
	ScopeUsersDelete: "Delete user accounts",

	ScopeEmployeesAll:   "Full access to employee profiles",
	ScopeEmployeesRead:  "View employee profiles",
	ScopeEmployeesWrite: "Create and edit employee profiles",

	ScopeLeaveAll:   "Full access to leave balances",
	ScopeLeaveRead:  "View leave balances",
	ScopeLeaveWrite: "Adjust leave balances",

	ScopePositionsAll:    "Full access to positions",
	ScopePositionsRead:   "View positions",
	ScopePositionsWrite:  "Create and edit positions",
	ScopePositionsDelete: "Delete positions",

	ScopeCandidatesAll:    "Full access to candidates",
	ScopeCandidatesRead:   "View candidates",
	ScopeCandidatesWrite:  "Create and edit candidates",
	ScopeCandidatesDelete: "Delete candidates",

	ScopeApplicationsAll:   "Full access to applications",
	ScopeApplicationsRead:  "View applications",
	ScopeApplicationsWrite: "Create and edit applications",

	ScopeInterviewsAll:      "Full access to interviews",
	ScopeInterviewsRead:     "View interviews",
	ScopeInterviewsWrite:    "Update interview status and feedback",
	ScopeInterviewsDelete:   "Delete interviews",
	ScopeInterviewsSchedule: "Schedule interviews",

	ScopeHiringAll:     "Full access to hiring operations",
	ScopeHiringRead:    "View hiring eligibility",
	ScopeHiringConfirm: "Confirm candidate hires",

	ScopeReportsAll:  "Full access to reporting",
	ScopeReportsView: "View reports",
}

// ScopeGroups defines the role groupings of the platform.
// Los nombres coinciden con los roles de la aplicación: admin, rrhh,
// supervisor, empleado.
var ScopeGroups = map[string][]string{
	"admin": {
		ScopeAll,
	},
	"rrhh": {
		ScopeUsersRead,
		ScopeUsersWrite,
		ScopeEmployeesAll,
		ScopeLeaveAll,
		ScopePositionsAll,
		ScopeCandidatesAll,
		ScopeApplicationsAll,
		ScopeInterviewsAll,
		ScopeHiringAll,
		ScopeReportsAll,
	},
	"supervisor": {
		ScopeEmployeesRead,
		ScopePositionsRead,
		ScopeCandidatesRead,
		ScopeApplicationsRead,
		ScopeInterviewsRead,
		ScopeInterviewsWrite,
		ScopeHiringRead,
		ScopeReportsView,
	},
	"empleado": {
		ScopeEmployeesRead,
		ScopeLeaveRead,
	},
}
