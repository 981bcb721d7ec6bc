package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/team-vault/internal/config"
	"github.com/MKhiriev/team-vault/internal/crypto"
	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

// authService is the concrete implementation of AuthService.
// Master passwords are only ever handled in memory: the store keeps the
// digest and salt produced by the DigestEngine, the session keeps the
// plaintext as its master key.
type authService struct {
	users     store.UserRepository
	digest    crypto.DigestEngine
	validator validators.Validator

	// minPasswordLength is the shortest master password accepted.
	minPasswordLength int

	logger *logger.Logger
	now    func() time.Time

	// decoy is a digest of decoyPassword, made on first use, that Login
	// verifies against when the email is unknown.
	decoyOnce sync.Once
	decoyHash string
	decoySalt string
}

// decoyPassword only seeds the decoy digest; nothing ever logs in with it.
const decoyPassword = "teamvault-unknown-account"

// NewAuthService constructs an AuthService. cfg supplies the password
// policy.
func NewAuthService(users store.UserRepository, digest crypto.DigestEngine, validator validators.Validator, cfg config.App, log *logger.Logger) AuthService {
	minLen := cfg.MinPasswordLength
	if minLen < 1 {
		minLen = 8
	}
	return &authService{
		users:             users,
		digest:            digest,
		validator:         validator,
		minPasswordLength: minLen,
		logger:            log,
		now:               time.Now,
	}
}

// Register implements AuthService.
func (a *authService) Register(ctx context.Context, email, name, password string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Email:  models.NormalizeEmail(email),
		Name:   name,
		Teams:  []string{},
		Role:   models.RoleUser,
		Status: models.StatusActive,
	}
	if err := a.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldName); err != nil {
		return nil, err
	}
	if err := a.checkPassword(password); err != nil {
		return nil, err
	}

	_, err := a.users.GetUser(ctx, user.Email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "authService.Register").Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	count, err := a.users.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if count == 0 {
		user.Role = models.RoleAdmin
	}

	user.PasswordHash, user.PasswordSalt, err = a.digest.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.CreatedAt = a.now().UTC()

	if err = a.validator.Validate(ctx, user); err != nil {
		return nil, err
	}
	if err = a.users.SaveUser(ctx, user); err != nil {
		log.Err(err).Str("func", "authService.Register").Str("email", user.Email).Msg("user creation ended with error")
		return nil, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("email", user.Email).Str("role", user.Role).Msg("user registered")
	return models.NewSession(user.Profile(), password, a.now()), nil
}

// Login implements AuthService.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.GetUser(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.verifyDecoy(ctx, password)
		log.Debug().Str("func", "authService.Login").Msg("login failed")
		return nil, errs.ErrAuth
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	if !a.digest.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		log.Debug().Str("func", "authService.Login").Msg("login failed")
		return nil, errs.ErrAuth
	}
	if user.Status == models.StatusDisabled {
		log.Info().Str("email", user.Email).Msg("login refused for disabled account")
		return nil, errs.ErrAccountDisabled
	}

	return models.NewSession(user.Profile(), password, a.now()), nil
}

// Logout implements AuthService.
func (a *authService) Logout(sess *models.Session) {
	sess.Destroy()
}

// ChangePassword implements AuthService.
func (a *authService) ChangePassword(ctx context.Context, sess *models.Session, current, next string) (*models.Session, error) {
	if !sess.Valid() {
		return nil, ErrInvalidSession
	}

	user, err := a.users.GetUser(ctx, sess.Email())
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.digest.VerifyPassword(current, user.PasswordHash, user.PasswordSalt) {
		return nil, errs.ErrAuth
	}
	if err = a.checkPassword(next); err != nil {
		return nil, err
	}

	user.PasswordHash, user.PasswordSalt, err = a.digest.HashPassword(next)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err = a.users.SaveUser(ctx, user); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.ChangePassword").Msg("failed to save user")
		return nil, fmt.Errorf("save user: %w", err)
	}

	sess.Destroy()
	return models.NewSession(user.Profile(), next, a.now()), nil
}

// SetUserStatus implements AuthService.
func (a *authService) SetUserStatus(ctx context.Context, sess *models.Session, email, status string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := a.validator.Validate(ctx, models.User{Status: status}, validators.FieldStatus); err != nil {
		return err
	}
	if models.NormalizeEmail(email) == sess.Email() {
		return errs.NewValidationError("email", "cannot change the status of your own account")
	}

	user, err := a.users.GetUser(ctx, email)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if user.Status == status {
		return nil
	}

	user.Status = status
	if err = a.users.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("email", user.Email).
		Str("status", status).
		Str("by", sess.Email()).
		Msg("user status changed")
	return nil
}

// ListUsers implements AuthService.
func (a *authService) ListUsers(ctx context.Context, sess *models.Session) ([]models.PublicProfile, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	users, err := a.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]models.PublicProfile, len(users))
	for i, u := range users {
		out[i] = u.Profile()
	}
	return out, nil
}

// verifyDecoy does the digest work of a real password check so an unknown
// email takes as long as a wrong password.
func (a *authService) verifyDecoy(ctx context.Context, password string) {
	a.decoyOnce.Do(func() {
		hash, salt, err := a.digest.HashPassword(decoyPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "authService.verifyDecoy").Msg("failed to hash decoy password")
			return
		}
		a.decoyHash, a.decoySalt = hash, salt
	})
	a.digest.VerifyPassword(password, a.decoyHash, a.decoySalt)
}

func (a *authService) checkPassword(password string) error {
	if utf8.RuneCountInString(password) < a.minPasswordLength {
		return errs.NewValidationError("password", fmt.Sprintf("must be at least %d characters", a.minPasswordLength))
	}
	return nil
}

func requireSession(sess *models.Session) error {
	if !sess.Valid() {
		return ErrInvalidSession
	}
	return nil
}

func requireAdmin(sess *models.Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}
