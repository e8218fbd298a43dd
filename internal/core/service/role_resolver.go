package service

import (
	"strings"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

// RoleResolver maps an authenticated identity's email to a role through a
// static allow-list: one admin address and a small set of staff addresses.
// Everything else, including no identity at all, is a viewer.
type RoleResolver struct {
	admin string
	staff map[string]struct{}
}

func NewRoleResolver(adminEmail string, staffEmails []string) *RoleResolver {
	staff := make(map[string]struct{}, len(staffEmails))
	for _, e := range staffEmails {
		if n := normalizeEmail(e); n != "" {
			staff[n] = struct{}{}
		}
	}
	return &RoleResolver{
		admin: normalizeEmail(adminEmail),
		staff: staff,
	}
}

// Resolve is total: it always returns exactly one role and has no side
// effects, so it is safe to recompute on every request.
func (r *RoleResolver) Resolve(email string) domain.Role {
	n := normalizeEmail(email)
	if n == "" {
		return domain.RoleViewer
	}
	if n == r.admin {
		return domain.RoleAdmin
	}
	if _, ok := r.staff[n]; ok {
		return domain.RoleStaff
	}
	return domain.RoleViewer
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
