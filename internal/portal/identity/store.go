package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/eduportal/internal/common"
	"github.com/dmitrijs2005/eduportal/internal/cryptox"
	"github.com/dmitrijs2005/eduportal/internal/logging"
	"github.com/dmitrijs2005/eduportal/internal/portal/models"
	"github.com/dmitrijs2005/eduportal/internal/portal/storage"
)

// RegisterInput is the explicit signup form.
type RegisterInput struct {
	Name       string
	Email      string
	Password   []byte
	Role       string
	Department string
}

// Store is the account registry and current session over one Storage.
// Operations are serialized; it is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	storage        storage.Storage
	digester       cryptox.Digester
	log            logging.Logger
	now            func() time.Time
	sleep          func(time.Duration)
	latency        time.Duration
	verifyPassword bool

	session *models.Session
}

// Open builds a Store over st and rehydrates the persisted session.
func Open(ctx context.Context, st storage.Storage, opts ...Option) (*Store, error) {
	s := &Store{
		storage:  st,
		digester: cryptox.SHA256Digester{},
		log:      logging.NewNopLogger(),
		now:      time.Now,
		sleep:    time.Sleep,
		latency:  DefaultLatency,
	}
	for _, opt := range opts {
		opt(s)
	}

	session, err := s.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	s.session = session
	if session != nil {
		s.log.Debug(ctx, "session rehydrated", "account_id", session.ID, "role", session.Role)
	}
	return s, nil
}

// Register adds a student or teacher account. It does not sign the account in.
func (s *Store) Register(ctx context.Context, in RegisterInput) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulateLatency()

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || len(in.Password) == 0 || strings.TrimSpace(in.Role) == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if utf8.RuneCount(in.Password) < common.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, common.MinPasswordLength)
	}
	role, err := models.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if !role.SelfService() {
		return nil, fmt.Errorf("%w: only students or teachers can sign up", common.ErrRoleNotAllowed)
	}

	var created *models.Account
	err = s.storage.Update(ctx, func(ctx context.Context, tx storage.Storage) error {
		accounts, err := s.loadRegistry(ctx, tx)
		if err != nil {
			return err
		}
		if findByEmail(accounts, email) != nil {
			return fmt.Errorf("%w: email already exists, please login", common.ErrDuplicateAccount)
		}

		created, err = s.newAccount(name, email, role, strings.TrimSpace(in.Department), in.Password)
		if err != nil {
			return err
		}
		return s.saveRegistry(ctx, tx, append(accounts, *created))
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug(ctx, "account registered", "account_id", created.ID, "role", created.Role)
	out := *created
	return &out, nil
}

// Authenticate signs in the account registered under email, creating it
// first when the email is unknown and role is student or teacher. On success
// the new session replaces any previous one.
func (s *Store) Authenticate(ctx context.Context, email string, password []byte, role models.Role) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulateLatency()

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	var session *models.Session
	err := s.storage.Update(ctx, func(ctx context.Context, tx storage.Storage) error {
		accounts, err := s.loadRegistry(ctx, tx)
		if err != nil {
			return err
		}

		account := findByEmail(accounts, email)
		if account == nil {
			if !role.SelfService() {
				return fmt.Errorf("%w: only students or teachers can login", common.ErrRoleNotAllowed)
			}
			account, err = s.newAccount(localPart(email), email, role, common.DefaultDepartment, password)
			if err != nil {
				return err
			}
			if err := s.saveRegistry(ctx, tx, append(accounts, *account)); err != nil {
				return err
			}
			s.log.Debug(ctx, "account created on first login", "account_id", account.ID, "role", account.Role)
		} else {
			if !account.Role.SelfService() {
				return fmt.Errorf("%w: only students or teachers can login", common.ErrRoleNotAllowed)
			}
			if s.verifyPassword && !s.digester.Verify(account.PasswordHash, password) {
				return fmt.Errorf("%w: email or password is incorrect", common.ErrInvalidCredentials)
			}
		}

		session = account.Session()
		return s.saveSession(ctx, tx, session)
	})
	if err != nil {
		return nil, err
	}

	s.session = session
	out := *session
	return &out, nil
}

// EndSession signs out. Calling it while signed out is a no-op.
func (s *Store) EndSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	s.session = nil
	return nil
}

// CurrentSession returns a copy of the signed-in identity, or nil.
func (s *Store) CurrentSession() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	out := *s.session
	return &out
}

// IsAuthenticated reports whether a session is present.
func (s *Store) IsAuthenticated() bool {
	return s.CurrentSession() != nil
}

func (s *Store) simulateLatency() {
	if s.latency > 0 {
		s.sleep(s.latency)
	}
}

// loadSession reads the persisted session. An undecodable entry reads as
// signed out.
func (s *Store) loadSession(ctx context.Context) (*models.Session, error) {
	raw, err := s.storage.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.Warn(ctx, "session entry is unreadable, starting signed out", "error", err)
		return nil, nil
	}
	if session.Email == "" {
		// "null" or "{}"
		return nil, nil
	}
	return &session, nil
}

func (s *Store) saveSession(ctx context.Context, st storage.Storage, session *models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := st.Set(ctx, common.SessionKey, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
