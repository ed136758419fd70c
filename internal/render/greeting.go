package render

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/notes-board/internal/identity"
)

// Greeting builds the greeting snippet for the top of the board: a welcome
// line with a sign-out link for authenticated visitors, otherwise a
// sign-in/register link. Name and URLs are escaped before interpolation.
func Greeting(provider identity.Provider, r *http.Request) template.HTML {
	if user, ok := provider.Current(r); ok {
		return template.HTML(fmt.Sprintf(
			`Welcome, %s (<a href="%s">sign out</a>)!`,
			template.HTMLEscapeString(user.Name),
			template.HTMLEscapeString(provider.LogoutURL("/")),
		))
	}
	return template.HTML(fmt.Sprintf(
		`<a href="%s">Sign in or register</a>.`,
		template.HTMLEscapeString(provider.LoginURL("/")),
	))
}
