// Package models defines the wellkeeper domain records: accounts, per-account
// settings and dated log entries with category-tagged payloads.
//
// Every record is stored as JSON inside the key/value buckets, so field tags
// use camelCase names.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/common"
)

// Role is the access tier chosen at registration.
type Role string

const (
	RoleGuest  Role = "Guest"
	RoleSeeker Role = "Seeker"
	RoleGuide  Role = "Guide"
)

// Roles lists every tier in registration order.
var Roles = []Role{RoleGuest, RoleSeeker, RoleGuide}

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleSeeker, RoleGuide:
		return true
	}
	return false
}

// CanTrack reports whether the tier may write mood, routine, gratitude,
// journal and goal data.
func (r Role) CanTrack() bool {
	return r == RoleSeeker || r == RoleGuide
}

// CanAdminister reports whether the tier may manage the care network and
// cross-account log maintenance.
func (r Role) CanAdminister() bool {
	return r == RoleGuide
}

// ParseRole matches s against the known tiers case-insensitively.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidRole, s)
}

// Account is a registered identity. It is never mutated after creation.
// Passphrases are kept and compared verbatim.
type Account struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Passphrase string    `json:"passphrase"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}
