package store

import (
	"time"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/pkg/apperrors"
)

// NewUser carries the fields accepted at user creation. Password must already
// be hashed; the store never sees plaintext credentials.
type NewUser struct {
	Username     string
	Password     string
	Email        string
	FullName     string
	Role         models.RoleType
	Bio          *string
	ProfileImage *string
}

// UserPatch carries a partial user update. Nil fields are left untouched.
// Identity fields (id, username, email, role, password, createdAt) are not
// patchable through this path.
type UserPatch struct {
	FullName     *string
	Bio          *string
	ProfileImage *string
	IsApproved   *bool
}

// GetUser returns the user by id, or nil if absent.
func (s *Store) GetUser(id int64) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return &user
	}
	return nil
}

// GetUserByUsername returns the user with the given username, or nil.
func (s *Store) GetUserByUsername(username string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUserLocked(func(u models.User) bool { return u.Username == username })
}

// GetUserByEmail returns the user with the given email, or nil.
func (s *Store) GetUserByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUserLocked(func(u models.User) bool { return u.Email == email })
}

// GetUsersByRole returns all users holding the given role.
func (s *Store) GetUsersByRole(role models.RoleType) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, user := range s.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users
}

// CreateUser assigns the next id, stamps createdAt and defaults the approval
// flag from the role: organizations start unapproved, donors and admins are
// approved immediately. The uniqueness check and the insert happen under one
// lock, so two concurrent registrations of the same username cannot both
// succeed.
func (s *Store) CreateUser(data NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findUserLocked(func(u models.User) bool { return u.Username == data.Username }); existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if existing := s.findUserLocked(func(u models.User) bool { return u.Email == data.Email }); existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	s.userIDCounter++
	user := models.User{
		ID:           s.userIDCounter,
		Username:     data.Username,
		Password:     data.Password,
		Email:        data.Email,
		FullName:     data.FullName,
		Role:         data.Role,
		Bio:          data.Bio,
		ProfileImage: data.ProfileImage,
		IsApproved:   data.Role != models.RoleOrganization,
		CreatedAt:    time.Now(),
	}
	s.users[user.ID] = user

	return &user, nil
}

// UpdateUser merges the patch into the stored record and returns the updated
// user, or ErrUserNotFound if the id is absent.
func (s *Store) UpdateUser(id int64, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Bio != nil {
		user.Bio = patch.Bio
	}
	if patch.ProfileImage != nil {
		user.ProfileImage = patch.ProfileImage
	}
	if patch.IsApproved != nil {
		user.IsApproved = *patch.IsApproved
	}

	s.users[id] = user
	return &user, nil
}

// findUserLocked scans users under an already-held lock.
func (s *Store) findUserLocked(match func(models.User) bool) *models.User {
	for _, user := range s.users {
		if match(user) {
			u := user
			return &u
		}
	}
	return nil
}
