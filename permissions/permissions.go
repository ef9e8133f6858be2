// Package permissions decides whether a guild member may run a command.
package permissions

import (
	"slices"
	"sync"
)

// Member is the subject of a permission check
type Member interface {
	ID() string
	HasRole(roleID string) bool
}

// Permissions holds allow and deny lists for users and roles.
//
// HasPermission evaluates them in the following order, the first match deciding:
//
//	deny user, allow user, deny role, allow role, default
type Permissions struct {
	mu             sync.RWMutex
	allowByDefault bool
	allowUsers     []string
	allowRoles     []string
	denyUsers      []string
	denyRoles      []string
}

// New returns Permissions which allow any member not listed
func New() *Permissions {
	return &Permissions{allowByDefault: true}
}

// AllowByDefault allows members matched by no list
func (p *Permissions) AllowByDefault() *Permissions {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.allowByDefault = true

	return p
}

// DenyByDefault denies members matched by no list
func (p *Permissions) DenyByDefault() *Permissions {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.allowByDefault = false

	return p
}

// AllowUser adds user ids to the allow list
func (p *Permissions) AllowUser(ids ...string) *Permissions {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.allowUsers = append(p.allowUsers, ids...)

	return p
}

// AllowRole adds role ids to the allow list
func (p *Permissions) AllowRole(ids ...string) *Permissions {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.allowRoles = append(p.allowRoles, ids...)

	return p
}

// DenyUser adds user ids to the deny list
func (p *Permissions) DenyUser(ids ...string) *Permissions {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.denyUsers = append(p.denyUsers, ids...)

	return p
}

// DenyRole adds role ids to the deny list
func (p *Permissions) DenyRole(ids ...string) *Permissions {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.denyRoles = append(p.denyRoles, ids...)

	return p
}

// IsAllowedByDefault reports the decision for members matched by no list
func (p *Permissions) IsAllowedByDefault() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.allowByDefault
}

// HasPermission reports whether member may run the command guarded by p. A nil member is
// only allowed by default.
func (p *Permissions) HasPermission(member Member) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if member == nil {
		return p.allowByDefault
	}
	if slices.Contains(p.denyUsers, member.ID()) {
		return false
	}
	if slices.Contains(p.allowUsers, member.ID()) {
		return true
	}
	for _, role := range p.denyRoles {
		if member.HasRole(role) {
			return false
		}
	}
	for _, role := range p.allowRoles {
		if member.HasRole(role) {
			return true
		}
	}

	return p.allowByDefault
}
