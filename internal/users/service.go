// Package users implements the identity ledger: registration, login,
// password reset via recovery phrase, admin seeding, and the admin-only
// role/deletion operations. It is the only component that may mutate user
// records.
package users

import (
	"context"
	"crypto/subtle"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkarklins/gamebox/internal/common"
	"github.com/dkarklins/gamebox/internal/config"
	"github.com/dkarklins/gamebox/internal/digest"
	"github.com/dkarklins/gamebox/internal/logging"
	"github.com/dkarklins/gamebox/internal/session"
)

const saltBytes = 16

// Accepts the basic local@domain.tld shape; full RFC parsing is not the goal.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// Service serializes all credential operations behind one mutex: hashing
// yields control, and no two credential operations for the same ledger may
// commit out of order.
//
// Known gap, kept on purpose: deleting a user does not cascade into the
// score ledger, so that user's score records are orphaned, not removed.
type Service struct {
	mu       sync.Mutex
	repo     *Repository
	sessions *session.Manager
	digest   *digest.Service
	logger   logging.Logger

	adminEmail     string
	adminName      string
	adminPassword  string
	adminRecovery  string
	minPasswordLen int

	now func() time.Time
}

func NewService(repo *Repository, sessions *session.Manager, d *digest.Service, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		repo:           repo,
		sessions:       sessions,
		digest:         d,
		logger:         logger.With("component", "users"),
		adminEmail:     cfg.AdminEmail,
		adminName:      cfg.AdminName,
		adminPassword:  cfg.AdminPassword,
		adminRecovery:  cfg.AdminRecovery,
		minPasswordLen: cfg.MinPasswordLen,
		now:            time.Now,
	}
}

// SeedAdmin creates the built-in administrator unless a user with the
// configured admin email already exists. Safe to run on every startup.
func (s *Service) SeedAdmin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.FindByEmail(ctx, s.adminEmail); err == nil {
		s.logger.Debug(ctx, "admin account already present", "email", s.adminEmail)
		return nil
	}

	u, err := s.newUser(ctx, s.adminName, s.adminEmail, s.adminPassword, s.adminRecovery, RoleAdmin)
	if err != nil {
		return err
	}
	if err := s.repo.Prepend(ctx, *u); err != nil {
		return err
	}

	s.logger.Info(ctx, "seeded admin account", "email", s.adminEmail)
	return nil
}

// Register validates the input, rejects duplicate emails, and creates a new
// user with role "user" at the head of the ledger. Nothing is persisted on
// failure.
func (s *Service) Register(ctx context.Context, name, email, password, recovery string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if len([]rune(name)) < 2 {
		return nil, common.ErrNameTooShort
	}
	email = NormalizeEmail(email)
	if !emailRe.MatchString(email) {
		return nil, common.ErrInvalidEmail
	}
	if len(password) < s.minPasswordLen {
		return nil, common.ErrPasswordTooShort
	}
	if len(strings.TrimSpace(recovery)) < 4 {
		return nil, common.ErrRecoveryTooShort
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, common.ErrEmailExists
	}

	u, err := s.newUser(ctx, name, email, password, recovery, RoleUser)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Prepend(ctx, *u); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "registered user", "id", u.ID)
	return u, nil
}

// Login verifies the password against the stored salted hash and replaces
// the session on success. Unknown email and wrong password return the same
// error so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	candidate, err := s.digest.SaltedDigest(ctx, password, u.Salt)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(u.PassHash)) != 1 {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.sessions.Start(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout removes the session unconditionally. Idempotent.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// ResetPassword verifies the recovery phrase and installs a fresh salt and
// password hash. The recovery pair is untouched, so the same phrase works
// for future resets. Any active session for the account is cleared; the
// user must log in again with the new password.
func (s *Service) ResetPassword(ctx context.Context, email, recovery, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidCredentials
		}
		return err
	}

	candidate, err := s.digest.SaltedDigest(ctx, recovery, u.RecoverySalt)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(u.RecoveryHash)) != 1 {
		return common.ErrInvalidCredentials
	}
	if len(newPassword) < s.minPasswordLen {
		return common.ErrPasswordTooShort
	}

	u.Salt = s.digest.RandomHex(saltBytes)
	u.PassHash, err = s.digest.SaltedDigest(ctx, newPassword, u.Salt)
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, *u); err != nil {
		return err
	}

	if sess, ok := s.sessions.Current(ctx); ok && sess.UserID == u.ID {
		if err := s.sessions.Clear(ctx); err != nil {
			return err
		}
	}

	s.logger.Info(ctx, "password reset", "id", u.ID)
	return nil
}

// CurrentUser resolves the session against the ledger. A session pointing
// at a deleted user is cleared and reported as no user; (nil, nil) means
// nobody is logged in.
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	sess, ok := s.sessions.Current(ctx)
	if !ok {
		return nil, nil
	}

	u, err := s.repo.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// dangling reference, self-heal
			if err := s.sessions.Clear(ctx); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// ToggleRole flips the target between user and admin. Only admins may call
// it, and never on their own account.
func (s *Service) ToggleRole(ctx context.Context, actingID, targetID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.requireAdminActing(ctx, actingID, targetID)
	if err != nil {
		return nil, err
	}

	if target.Role == RoleAdmin {
		target.Role = RoleUser
	} else {
		target.Role = RoleAdmin
	}
	if err := s.repo.Save(ctx, *target); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "toggled role", "id", target.ID, "role", target.Role)
	return target, nil
}

// DeleteUser removes the target from the ledger. Only admins may call it,
// and never on their own account. The target's score records are left in
// place (orphaned), matching the original behavior.
func (s *Service) DeleteUser(ctx context.Context, actingID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.requireAdminActing(ctx, actingID, targetID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, target.ID); err != nil {
		return err
	}

	s.logger.Info(ctx, "deleted user", "id", target.ID)
	return nil
}

// ListUsers returns the ledger, most recently registered first.
func (s *Service) ListUsers(ctx context.Context) []User {
	return s.repo.List(ctx)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *Service) FindByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) requireAdminActing(ctx context.Context, actingID, targetID string) (*User, error) {
	acting, err := s.repo.FindByID(ctx, actingID)
	if err != nil {
		return nil, err
	}
	if !acting.IsAdmin() {
		return nil, common.ErrNotAdmin
	}
	if actingID == targetID {
		return nil, common.ErrOwnAccount
	}
	return s.repo.FindByID(ctx, targetID)
}

func (s *Service) newUser(ctx context.Context, name, email, password, recovery string, role Role) (*User, error) {
	salt := s.digest.RandomHex(saltBytes)
	passHash, err := s.digest.SaltedDigest(ctx, password, salt)
	if err != nil {
		return nil, err
	}

	recoverySalt := s.digest.RandomHex(saltBytes)
	recoveryHash, err := s.digest.SaltedDigest(ctx, recovery, recoverySalt)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        NormalizeEmail(email),
		Role:         role,
		Salt:         salt,
		PassHash:     passHash,
		RecoverySalt: recoverySalt,
		RecoveryHash: recoveryHash,
		CreatedAt:    s.now(),
	}, nil
}
