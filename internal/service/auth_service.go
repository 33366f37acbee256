package service

import (
	"errors"
	"fmt"

	"inkwell/config"
	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/pkg/slug"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrAccountExists covers the combined username-or-email duplicate
	// check; callers get one generic conflict without learning which field
	// collided.
	ErrAccountExists = errors.New("Author account already exists")
	// ErrInvalidCredentials is returned identically for an unknown username
	// and for a wrong password, so responses never leak which half failed.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAuthorNotFound     = errors.New("Author not found")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
	log      zerolog.Logger
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, log: log.With().Str("component", "auth").Logger()}
}

// Register creates a new author account. Name defaults to the username and
// the slug is derived from it.
func (s *AuthService) Register(username, email, password, name string) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountExists
	}
	if name == "" {
		name = username
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Username:     username,
		Slug:         slug.Make(username),
		Email:        &email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a signed token bound to the author.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID, u.Username, u.Slug)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// UpdateProperties looks the author up by username and applies any provided
// fields. Setting the username recomputes the slug.
func (s *AuthService) UpdateProperties(username string, name, email, password *string) (*models.User, error) {
	u, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	if name != nil {
		u.Name = *name
	}
	if email != nil {
		e := *email
		u.Email = &e
	}
	u.Username = username
	u.Slug = slug.Make(username)
	if password != nil && *password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.userRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ForgotPassword simulates the reset flow: a reset token is generated and
// logged instead of mailed. The response never reveals whether the email
// belongs to an account.
func (s *AuthService) ForgotPassword(email string) string {
	resetToken := uuid.New().String()
	s.log.Info().Str("email", email).Str("reset_token", resetToken).
		Msg("password reset requested (simulated, no email sent)")
	return fmt.Sprintf("Password reset instructions sent to %s", email)
}
