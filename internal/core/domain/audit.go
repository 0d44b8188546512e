package domain

import "time"

// AuditEvent records an authentication or account-management action.
// Subject is the account the action was about (email for auth attempts,
// account id for CRUD); Actor is who performed it, when known.
type AuditEvent struct {
	Subject   string
	Action    string
	Outcome   string
	Actor     string
	Timestamp time.Time
}

const (
	AuditActionLogin         = "login"
	AuditActionRegister      = "register"
	AuditActionPasswordReset = "password_reset"
	AuditActionProfileUpdate = "profile_update"
	AuditActionEmployeeWrite = "employee_write"

	AuditOutcomeSuccess  = "success"
	AuditOutcomeRejected = "rejected"
	AuditOutcomeThrottle = "throttled"
)
