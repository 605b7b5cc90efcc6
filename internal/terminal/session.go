package terminal

import (
	"fmt"

	"github.com/jakindah/motorshop-api/pkg/utils"
)

// Session carries the operator's identity for the life of one terminal run.
// The role is decoded client-side for display and local gating only; the
// backend re-checks authorization on every request.
type Session struct {
	token string
	email string
	role  string
}

// NewSession builds a session from a bearer token
func NewSession(token string) (*Session, error) {
	claims, err := utils.DecodeClaimsUnverified(token)
	if err != nil {
		return nil, fmt.Errorf("decoding session token: %w", err)
	}
	return &Session{
		token: token,
		email: claims.Email,
		role:  claims.Role,
	}, nil
}

// Token returns the bearer token
func (s *Session) Token() string {
	return s.token
}

// Email returns the operator's email
func (s *Session) Email() string {
	return s.email
}

// CurrentRole returns the operator's role as carried in the token
func (s *Session) CurrentRole() string {
	return s.role
}
