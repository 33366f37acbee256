package service

import (
	"testing"
	"time"

	"inkwell/config"
	"inkwell/internal/auth"
	"inkwell/internal/database"
	"inkwell/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "inkwell-test"},
	}
}

func setupAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(testConfig(), userRepo, zerolog.Nop()), userRepo
}

func TestRegister_DerivesSlugAndDefaultsName(t *testing.T) {
	svc, _ := setupAuthService(t)

	u, err := svc.Register("Jane Doe", "jane@x.com", "pw123", "")
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", u.Slug)
	assert.Equal(t, "Jane Doe", u.Name, "name defaults to the username")
	assert.NotEqual(t, "pw123", u.PasswordHash, "password must be stored hashed")
}

func TestRegister_DuplicateUsernameOrEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register("alice", "alice@x.com", "pw123", "Alice")
	require.NoError(t, err)

	_, err = svc.Register("alice", "fresh@x.com", "pw123", "")
	assert.ErrorIs(t, err, ErrAccountExists)

	_, err = svc.Register("someone-else", "alice@x.com", "pw123", "")
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestLogin_Success(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register("alice", "alice@x.com", "pw123", "")
	require.NoError(t, err)

	u, token, err := svc.Login("alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice", u.Slug)

	claims, err := auth.ParseToken(&testConfig().JWT, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Slug)
}

func TestLogin_IdenticalFailures(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register("alice", "alice@x.com", "pw123", "")
	require.NoError(t, err)

	_, _, unknownErr := svc.Login("nobody", "pw123")
	_, _, wrongPwErr := svc.Login("alice", "wrong")

	// Same error either way: responses must not leak which half was bad.
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPwErr)
}

func TestUpdateProperties(t *testing.T) {
	svc, userRepo := setupAuthService(t)

	_, err := svc.Register("Jane Doe", "jane@x.com", "pw123", "")
	require.NoError(t, err)

	name := "Jane D."
	email := "jane.d@x.com"
	password := "newpw456"
	u, err := svc.UpdateProperties("Jane Doe", &name, &email, &password)
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", u.Slug, "slug recomputed from username")
	assert.Equal(t, "Jane D.", u.Name)
	require.NotNil(t, u.Email)
	assert.Equal(t, "jane.d@x.com", *u.Email)

	_, _, err = svc.Login("Jane Doe", "newpw456")
	assert.NoError(t, err)

	// Untouched fields survive a partial update.
	u2, err := svc.UpdateProperties("Jane Doe", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Jane D.", u2.Name)

	stored, err := userRepo.GetByUsername("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "jane-doe", stored.Slug)
}

func TestUpdateProperties_UnknownAuthor(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.UpdateProperties("ghost", nil, nil, nil)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestForgotPassword_MessageEchoesEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	msg := svc.ForgotPassword("jane@x.com")
	assert.Equal(t, "Password reset instructions sent to jane@x.com", msg)
}
