package roletree

import (
	"sync"

	"github.com/napalu/chatopt/errs"
)

// Forest keeps one Tree per guild in memory
type Forest struct {
	mu    sync.RWMutex
	trees map[string]*Tree
}

// NewForest creates an empty Forest
func NewForest() *Forest {
	return &Forest{trees: map[string]*Tree{}}
}

// IsLinked reports whether role already has a parent in the tree of guildID
func (f *Forest) IsLinked(guildID, role string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t, ok := f.trees[guildID]
	return ok && t.Contains(role)
}

// Link makes parent the parent of every role in the tree of guildID. A parent not in the tree yet
// is placed below the root without counting as linked; linking it later moves its subtree. Nothing
// is linked when one of roles already has a parent or is parent itself or one of its ancestors.
func (f *Forest) Link(guildID, parent string, roles ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.trees[guildID]
	if !ok {
		t = New()
		f.trees[guildID] = t
	}
	for _, role := range roles {
		if t.Contains(role) {
			return errs.ErrRoleAlreadyLinked.WithArgs(role)
		}
		if role == parent || t.IsAncestor(role, parent) {
			return errs.ErrRoleCycle.WithArgs(role)
		}
	}
	t.AddTop(parent)
	t.Link(parent, roles...)

	return nil
}

// Format renders the tree of guildID, see Tree.Format. It returns "" for an unknown guild.
func (f *Forest) Format(guildID string, translate func(role string) string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t, ok := f.trees[guildID]
	if !ok {
		return ""
	}

	return t.Format(translate)
}
