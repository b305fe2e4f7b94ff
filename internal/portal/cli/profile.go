package cli

const notAvailable = "N/A"

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// WhoAmI prints the signed-in profile.
func (a *App) WhoAmI() {
	s := a.store.CurrentSession()
	if s == nil {
		a.println("Not signed in.")
		return
	}

	a.printf("Name:        %s\n", s.Name)
	a.printf("Email:       %s\n", s.Email)
	a.printf("Role:        %s\n", s.Role)
	a.printf("Department:  %s\n", orNA(s.Department))
	switch {
	case s.StudentID != "":
		a.printf("Student ID:  %s\n", s.StudentID)
	case s.EmployeeID != "":
		a.printf("Employee ID: %s\n", s.EmployeeID)
	default:
		a.printf("ID:          %s\n", notAvailable)
	}
}

// Dashboard prints the landing route for the current role.
func (a *App) Dashboard() {
	s := a.store.CurrentSession()
	if s == nil {
		a.println("/dashboard")
		return
	}
	a.println(s.Role.DashboardPath())
}
