package identity

import (
	"net/http"
	"net/url"
)

// User is an authenticated identity supplied by the hosting platform.
type User struct {
	ID    string
	Name  string
	Email string
}

// Provider exposes the hosting platform's identity lookups. Lookups are
// opaque and uncached; a request either carries an identity or it doesn't.
type Provider interface {
	// Current returns the authenticated user for the request, or false
	// when the request is anonymous.
	Current(r *http.Request) (*User, bool)

	// LoginURL returns the platform sign-in URL that returns to dest.
	LoginURL(dest string) string

	// LogoutURL returns the platform sign-out URL that returns to dest.
	LogoutURL(dest string) string
}

// Header names populated by the platform's auth proxy for signed-in
// requests. An absent ID header means the request is anonymous.
const (
	HeaderUserID    = "X-Auth-User-Id"
	HeaderUserName  = "X-Auth-User-Name"
	HeaderUserEmail = "X-Auth-User-Email"
)

// HeaderProvider reads the identity the platform's auth layer forwards on
// each request. It trusts the headers as-is; stripping untrusted copies at
// the edge is the proxy's concern.
type HeaderProvider struct {
	loginURL  string
	logoutURL string
}

// Verify interface compliance
var _ Provider = (*HeaderProvider)(nil)

// NewHeaderProvider creates a HeaderProvider with the platform's auth
// endpoint URLs.
func NewHeaderProvider(loginURL, logoutURL string) *HeaderProvider {
	return &HeaderProvider{
		loginURL:  loginURL,
		logoutURL: logoutURL,
	}
}

func (p *HeaderProvider) Current(r *http.Request) (*User, bool) {
	id := r.Header.Get(HeaderUserID)
	if id == "" {
		return nil, false
	}
	return &User{
		ID:    id,
		Name:  r.Header.Get(HeaderUserName),
		Email: r.Header.Get(HeaderUserEmail),
	}, true
}

func (p *HeaderProvider) LoginURL(dest string) string {
	return withDest(p.loginURL, dest)
}

func (p *HeaderProvider) LogoutURL(dest string) string {
	return withDest(p.logoutURL, dest)
}

// withDest appends dest to the endpoint's query string, preserving any
// query parameters the configured endpoint already carries.
func withDest(endpoint, dest string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	q := u.Query()
	q.Set("dest", dest)
	u.RawQuery = q.Encode()
	return u.String()
}
