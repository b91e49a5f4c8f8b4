package store

import (
	"context"
	"fmt"
	"strings"

	apperrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/models"

	"github.com/google/uuid"
)

// AuthStore owns the current user and the local registry of registered
// users. The authentication state machine has exactly two states,
// anonymous and authenticated; there is no intermediate "authenticating"
// state even on the provider path.
type AuthStore struct {
	states   StateStore
	provider IdentityProvider
	state    authState
}

type authState struct {
	User             *models.User  `json:"user"`
	Users            []models.User `json:"users"`
	IsAuthenticated  bool          `json:"isAuthenticated"`
	IsLoginModalOpen bool          `json:"isLoginModalOpen"`
}

// NewAuthStore rehydrates the auth state. provider may be nil when no
// external sign-in is configured; LoginWithGoogle then fails with
// ErrProviderFailure.
func NewAuthStore(states StateStore, provider IdentityProvider) (*AuthStore, error) {
	s := &AuthStore{states: states, provider: provider}
	if err := loadState(states, authStateKey, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

// Login looks the user up by exact email in the local registry. The
// password is required by the call contract but never checked against
// anything: no credential material is stored anywhere in this system.
// This is a known non-functional stub carried over from the source, not
// an omission to patch with invented verification.
func (s *AuthStore) Login(email, password string) (*models.User, error) {
	_ = password

	for i := range s.state.Users {
		if s.state.Users[i].Email == email {
			user := s.state.Users[i]
			s.setCurrentUser(user)
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Register appends a new user to the registry and logs them in
// immediately. A duplicate email fails with ErrUserAlreadyExists and
// leaves the registry untouched. No password is stored.
func (s *AuthStore) Register(username, email, password string) (*models.User, error) {
	_ = password

	for i := range s.state.Users {
		if s.state.Users[i].Email == email {
			return nil, apperrors.ErrUserAlreadyExists
		}
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Provider: models.ProviderEmail,
	}
	s.state.Users = append(s.state.Users, user)
	s.setCurrentUser(user)
	return &user, nil
}

// LoginWithGoogle delegates the interactive sign-in to the external
// provider. An existing registry entry with the returned email is
// reused; otherwise a google-provider user is created and appended.
// Provider failures propagate unchanged so the caller can distinguish
// the cancelled / unauthorized-domain / generic reasons; nothing is
// retried and the visible state stays unchanged until success.
func (s *AuthStore) LoginWithGoogle(ctx context.Context) (*models.User, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("%w: no identity provider configured", apperrors.ErrProviderFailure)
	}

	identity, err := s.provider.SignIn(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Email == "" {
		return nil, fmt.Errorf("%w: no email in provider response", apperrors.ErrProviderFailure)
	}

	for i := range s.state.Users {
		if s.state.Users[i].Email == identity.Email {
			user := s.state.Users[i]
			s.setCurrentUser(user)
			return &user, nil
		}
	}

	username := identity.DisplayName
	if username == "" {
		username = strings.SplitN(identity.Email, "@", 2)[0]
	}
	id := identity.ID
	if id == "" {
		id = uuid.New().String()
	}
	user := models.User{
		ID:       id,
		Username: username,
		Email:    identity.Email,
		Provider: models.ProviderGoogle,
		Avatar:   identity.PhotoURL,
	}
	s.state.Users = append(s.state.Users, user)
	s.setCurrentUser(user)
	return &user, nil
}

// Logout clears the current user; the registry survives.
func (s *AuthStore) Logout() {
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.persist()
}

// UpdateProfile merges the non-empty fields into the current user and
// into the matching registry entry. Without a logged-in user the call is
// a silent no-op.
func (s *AuthStore) UpdateProfile(update models.ProfileUpdate) {
	if s.state.User == nil {
		return
	}

	apply := func(user *models.User) {
		if update.Username != "" {
			user.Username = update.Username
		}
		if update.Email != "" {
			user.Email = update.Email
		}
		if update.Avatar != "" {
			user.Avatar = update.Avatar
		}
	}

	apply(s.state.User)
	for i := range s.state.Users {
		if s.state.Users[i].ID == s.state.User.ID {
			apply(&s.state.Users[i])
			break
		}
	}
	s.persist()
}

func (s *AuthStore) OpenLoginModal() {
	s.state.IsLoginModalOpen = true
	s.persist()
}

func (s *AuthStore) CloseLoginModal() {
	s.state.IsLoginModalOpen = false
	s.persist()
}

func (s *AuthStore) IsLoginModalOpen() bool {
	return s.state.IsLoginModalOpen
}

func (s *AuthStore) IsAuthenticated() bool {
	return s.state.IsAuthenticated
}

// CurrentUser returns a snapshot of the logged-in user, or nil.
func (s *AuthStore) CurrentUser() *models.User {
	if s.state.User == nil {
		return nil
	}
	user := *s.state.User
	return &user
}

// Users returns the registered-user registry in insertion order.
func (s *AuthStore) Users() []models.User {
	users := make([]models.User, len(s.state.Users))
	copy(users, s.state.Users)
	return users
}

func (s *AuthStore) persist() {
	saveState(s.states, authStateKey, s.state)
}

func (s *AuthStore) setCurrentUser(user models.User) {
	s.state.User = &user
	s.state.IsAuthenticated = true
	s.state.IsLoginModalOpen = false
	s.persist()
}
