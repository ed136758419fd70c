package mocks

import (
	"net/http"

	"github.com/notes-board/internal/identity"
)

// MockProvider is a mock implementation of identity.Provider
type MockProvider struct {
	// User is returned by Current when non-nil.
	User *identity.User

	// CurrentFunc overrides Current entirely when set, for per-request
	// behavior (e.g. reading test headers).
	CurrentFunc func(r *http.Request) (*identity.User, bool)

	Login  string
	Logout string
}

// Verify interface compliance
var _ identity.Provider = (*MockProvider)(nil)

func NewMockProvider() *MockProvider {
	return &MockProvider{
		Login:  "/auth/login?dest=%2F",
		Logout: "/auth/logout?dest=%2F",
	}
}

func (m *MockProvider) Current(r *http.Request) (*identity.User, bool) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(r)
	}
	if m.User == nil {
		return nil, false
	}
	return m.User, true
}

func (m *MockProvider) LoginURL(dest string) string {
	return m.Login
}

func (m *MockProvider) LogoutURL(dest string) string {
	return m.Logout
}
