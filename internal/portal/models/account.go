// Package models holds the records persisted by the identity store.
package models

// Account is a registry entry. PasswordHash is the stored digest and never
// leaves the registry.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Department   string `json:"department,omitempty"`
	StudentID    string `json:"studentId,omitempty"`
	EmployeeID   string `json:"employeeId,omitempty"`
	PasswordHash string `json:"passwordHash"`
}

// Session is the signed-in identity: the account without its digest.
type Session struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	StudentID  string `json:"studentId,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
}

// Session projects the account into a session record.
func (a *Account) Session() *Session {
	return &Session{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role,
		Department: a.Department,
		StudentID:  a.StudentID,
		EmployeeID: a.EmployeeID,
	}
}

// RoleIdentifier returns whichever of StudentID and EmployeeID is set.
func (s *Session) RoleIdentifier() string {
	if s.StudentID != "" {
		return s.StudentID
	}
	return s.EmployeeID
}
