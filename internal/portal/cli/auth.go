package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/eduportal/internal/common"
	"github.com/dmitrijs2005/eduportal/internal/portal/identity"
	"github.com/dmitrijs2005/eduportal/internal/portal/models"
)

// getSimpleText and getPassword point at the interactive helpers and are
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readRole() (string, error) {
	role, err := getSimpleText(a.reader, "Select role (student/teacher/admin) [student]", a.out)
	if err != nil {
		return "", err
	}
	if role == "" {
		role = string(models.RoleStudent)
	}
	return role, nil
}

// Register prompts for the signup form and creates the account. It does not
// sign in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := a.readRole()
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Enter department (optional)", a.out)
	if err != nil {
		return err
	}

	_, err = a.store.Register(ctx, identity.RegisterInput{
		Name:       name,
		Email:      email,
		Password:   password,
		Role:       role,
		Department: department,
	})
	if err != nil {
		return err
	}

	a.println("Signup successful. Please login.")
	return nil
}

// Login prompts for credentials and role and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		return fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	roleName, err := a.readRole()
	if err != nil {
		return err
	}
	role, err := models.ParseRole(roleName)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	session, err := a.store.Authenticate(ctx, email, password, role)
	if err != nil {
		return err
	}

	a.log.Info(ctx, "signed in", "account_id", session.ID, "role", session.Role)
	a.println("Welcome back!")
	a.println("Dashboard:", session.Role.DashboardPath())
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.EndSession(ctx); err != nil {
		return err
	}
	a.println("Signed out.")
	return nil
}
