package services

import (
	"strings"

	"decoyauction/internal/domain"
)

// AdminPolicy decides whether an authenticated account may manage listings
// and view orders. Injected so the allow-list can be swapped for real
// role-based access control without touching view logic.
type AdminPolicy func(u *domain.User) bool

// NewAllowlistPolicy grants admin capability to a fixed set of email
// addresses, compared case-insensitively. This is a capability check on top
// of authentication, not a security boundary on its own.
func NewAllowlistPolicy(emails []string) AdminPolicy {
	allowed := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		allowed[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return func(u *domain.User) bool {
		if u == nil {
			return false
		}
		_, ok := allowed[strings.ToLower(u.Email)]
		return ok
	}
}
