package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/pkg/apperrors"
	"github.com/givehope/givehope/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (AuthService, *store.Store, *auth.SessionManager) {
	t.Helper()
	st := store.New()
	sessions := auth.NewSessionManager(auth.SessionConfig{TTL: time.Hour})
	t.Cleanup(sessions.Close)
	return NewAuthService(st, sessions, zerolog.Nop()), st, sessions
}

func registerRequest(username string, role models.RoleType) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:        username,
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Email:           username + "@example.com",
		FullName:        "Test User",
		Role:            role,
	}
}

func TestRegisterCreatesSessionAndHashesPassword(t *testing.T) {
	svc, st, sessions := newAuthFixture(t)

	user, session, err := svc.Register(registerRequest("johndoe", models.RoleDonor))
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", user.Password, "plaintext must never be stored")
	assert.True(t, auth.CheckPassword("secret123", user.Password))
	assert.True(t, user.IsApproved)

	userID, ok := sessions.Resolve(session.Token)
	require.True(t, ok, "registration logs the user straight in")
	assert.Equal(t, user.ID, userID)

	assert.NotNil(t, st.GetUserByUsername("johndoe"))
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Register(registerRequest("sneaky", models.RoleAdmin))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Register(registerRequest("johndoe", models.RoleDonor))
	require.NoError(t, err)

	_, _, err = svc.Register(registerRequest("johndoe", models.RoleDonor))
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	req := registerRequest("different", models.RoleDonor)
	req.Email = "johndoe@example.com"
	_, _, err = svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _, sessions := newAuthFixture(t)
	registered, _, err := svc.Register(registerRequest("johndoe", models.RoleDonor))
	require.NoError(t, err)

	user, session, err := svc.Login("johndoe", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	userID, ok := sessions.Resolve(session.Token)
	require.True(t, ok)
	assert.Equal(t, registered.ID, userID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, _, err := svc.Register(registerRequest("johndoe", models.RoleDonor))
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login("johndoe", "not-the-password")
	_, _, unknownUser := svc.Login("nobody", "secret123")

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, apperrors.ErrInvalidCredentials)
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	_, _, err := svc.Register(registerRequest("johndoe", models.RoleDonor))
	require.NoError(t, err)

	_, _, err = svc.AdminLogin("johndoe", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAdminLoginChecksRealCredentials(t *testing.T) {
	svc, st, _ := newAuthFixture(t)

	hashed, err := auth.HashPassword("topsecret")
	require.NoError(t, err)
	_, err = st.CreateUser(store.NewUser{
		Username: "admin",
		Password: hashed,
		Email:    "admin@example.com",
		FullName: "Admin",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	user, session, err := svc.AdminLogin("admin", "topsecret")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.NotEmpty(t, session.Token)

	// There is no credential backdoor: a guessed password fails even for
	// the admin username.
	_, _, err = svc.AdminLogin("admin", "admin")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture(t)
	_, session, err := svc.Register(registerRequest("johndoe", models.RoleDonor))
	require.NoError(t, err)

	svc.Logout(session.Token)
	_, ok := sessions.Resolve(session.Token)
	assert.False(t, ok)

	svc.Logout(session.Token) // idempotent
}

func TestUpdateProfileTouchesOnlyProfileFields(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	user, _, err := svc.Register(registerRequest("johndoe", models.RoleDonor))
	require.NoError(t, err)

	bio := "Who I am"
	fullName := "John D."
	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FullName: &fullName,
		Bio:      &bio,
	})
	require.NoError(t, err)

	assert.Equal(t, "John D.", updated.FullName)
	assert.Equal(t, "Who I am", *updated.Bio)
	assert.Equal(t, user.Username, updated.Username)
	assert.Equal(t, user.Password, updated.Password, "credentials are not patchable here")
}
