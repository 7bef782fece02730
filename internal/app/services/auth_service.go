package services

import (
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/pkg/apperrors"
	"github.com/givehope/givehope/internal/pkg/auth"
)

// AuthService handles registration, credential verification and session
// lifecycle.
type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, auth.Session, error)
	Login(username, password string) (*models.User, auth.Session, error)
	AdminLogin(username, password string) (*models.User, auth.Session, error)
	Logout(token string)
	UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
}

type authService struct {
	store    *store.Store
	sessions *auth.SessionManager
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(st *store.Store, sessions *auth.SessionManager, logger zerolog.Logger) AuthService {
	return &authService{
		store:    st,
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates the account and logs it straight in. Only donor and
// organization roles can self-register; the admin account is provisioned at
// startup.
func (s *authService) Register(req *dto.RegisterRequest) (*models.User, auth.Session, error) {
	if req.Role != models.RoleDonor && req.Role != models.RoleOrganization {
		return nil, auth.Session{}, apperrors.NewBadRequestError("role must be donor or organization")
	}

	// Cheap duplicate checks before the expensive hash. The store repeats
	// them atomically with the insert, so a concurrent racer still loses.
	if s.store.GetUserByUsername(req.Username) != nil {
		return nil, auth.Session{}, apperrors.ErrUsernameTaken
	}
	if s.store.GetUserByEmail(req.Email) != nil {
		return nil, auth.Session{}, apperrors.ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, auth.Session{}, err
	}

	user, err := s.store.CreateUser(store.NewUser{
		Username:     req.Username,
		Password:     hashed,
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return nil, auth.Session{}, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, s.sessions.Create(user.ID), nil
}

// Login verifies the credentials and mints a fresh session. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(username, password string) (*models.User, auth.Session, error) {
	user := s.store.GetUserByUsername(username)
	if user == nil {
		return nil, auth.Session{}, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.Password) {
		s.logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, auth.Session{}, apperrors.ErrInvalidCredentials
	}

	return user, s.sessions.Create(user.ID), nil
}

// AdminLogin is Login with an additional admin-role requirement. Non-admin
// accounts fail the same way bad credentials do.
func (s *authService) AdminLogin(username, password string) (*models.User, auth.Session, error) {
	user, session, err := s.Login(username, password)
	if err != nil {
		return nil, auth.Session{}, err
	}

	if !user.IsAdmin() {
		s.sessions.Revoke(session.Token)
		return nil, auth.Session{}, apperrors.ErrInvalidCredentials
	}

	return user, session, nil
}

// Logout revokes the session; revoking an unknown token is a no-op.
func (s *authService) Logout(token string) {
	s.sessions.Revoke(token)
}

// UpdateProfile merges the allowed profile fields into the user's own record.
func (s *authService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	return s.store.UpdateUser(userID, store.UserPatch{
		FullName:     req.FullName,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	})
}
