package identity

import (
	"github.com/notes-board/internal/models"
)

// ResolveAuthor decides the author to attach to a new comment. Precedence,
// first match wins:
//
//  1. Authenticated: the platform identity is used and the submitted
//     name/email are discarded entirely.
//  2. Explicit anonymous: no identity and both submitted fields are the
//     empty string; every author field gets the sentinel.
//  3. Named anonymous: no identity but at least one submitted field is
//     non-empty; identity gets the sentinel and name/email are stored
//     verbatim, unvalidated.
//
// Rule 2 checks strict equality with "": a whitespace-only name or email
// routes to rule 3 and is kept as-is.
func ResolveAuthor(user *User, name, email string) models.Author {
	if user != nil {
		return models.Author{
			Identity: user.ID,
			Name:     user.Name,
			Email:    user.Email,
		}
	}
	if emptyIdentification(name, email) {
		return models.AnonymousAuthor()
	}
	return models.Author{
		Identity: models.AnonymousSentinel,
		Name:     name,
		Email:    email,
	}
}

func emptyIdentification(name, email string) bool {
	return name == "" && email == ""
}
