package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/eduportal/internal/common"
	"github.com/dmitrijs2005/eduportal/internal/portal/models"
	"github.com/dmitrijs2005/eduportal/internal/portal/storage"
	"github.com/google/uuid"
)

// loadRegistry reads every account. An undecodable entry reads as empty.
func (s *Store) loadRegistry(ctx context.Context, st storage.Storage) ([]models.Account, error) {
	raw, err := st.Get(ctx, common.RegistryKey)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		s.log.Warn(ctx, "registry entry is unreadable, treating as empty", "error", err)
		return nil, nil
	}
	return accounts, nil
}

func (s *Store) saveRegistry(ctx context.Context, st storage.Storage, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := st.Set(ctx, common.RegistryKey, raw); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	return nil
}

func findByEmail(accounts []models.Account, email string) *models.Account {
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			return &accounts[i]
		}
	}
	return nil
}

// newAccount builds a registry entry for role. Role must have an ID prefix.
func (s *Store) newAccount(name, email string, role models.Role, department string, password []byte) (*models.Account, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate account id: %w", err)
	}

	digest, err := s.digester.Digest(password)
	if err != nil {
		return nil, fmt.Errorf("digest password: %w", err)
	}

	a := &models.Account{
		ID:           id.String(),
		Name:         name,
		Email:        email,
		Role:         role,
		Department:   department,
		PasswordHash: digest,
	}

	roleID := role.IDPrefix() + lastDigits(s.now().UnixMilli(), 6)
	switch role {
	case models.RoleStudent:
		a.StudentID = roleID
	case models.RoleTeacher:
		a.EmployeeID = roleID
	}
	return a, nil
}

// lastDigits returns the trailing n decimal digits of v, zero padded.
func lastDigits(v int64, n int) string {
	s := strconv.FormatInt(v, 10)
	if len(s) >= n {
		return s[len(s)-n:]
	}
	return strings.Repeat("0", n-len(s)) + s
}

// localPart is the portion of an email address before the '@'.
func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
