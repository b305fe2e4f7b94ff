// Package common contains shared constants and sentinel errors used across
// EduPortal components.
package common

// Storage keys of the two independent local storage entries.
const (
	// RegistryKey holds the JSON array of every known account.
	RegistryKey = "college_portal_users"
	// SessionKey holds the JSON record of the signed-in account.
	SessionKey = "college_portal_user"
)

// MinPasswordLength is the shortest password accepted by explicit signup.
const MinPasswordLength = 6

// DefaultDepartment is assigned to accounts created by implicit login.
const DefaultDepartment = "General"
