package authz

import "github.com/tatthien/church-equipment/pkg/constants"

// Caller is the authenticated identity evaluated by every policy check,
// extracted from verified token claims by the auth middleware.
type Caller struct {
	ID   uint64
	Role string
}

// Target carries the minimal facts about the resource under evaluation.
// OwnerID is the equipment's creator reference; nil when the creator was
// deleted and the reference detached.
type Target struct {
	OwnerID *uint64
}

// ListScope describes how a list query must be filtered for a caller.
// A nil RestrictToOwner means no ownership predicate is applied.
type ListScope struct {
	RestrictToOwner *uint64
}

func (c Caller) IsAdmin() bool {
	return c.Role == constants.RoleAdmin
}

// CanAccess decides whether the caller may read, update or delete a single
// equipment row. Admins may act on any row; everyone else only on rows they
// created. An ownerless row is reachable by admins alone.
func CanAccess(caller Caller, target Target) bool {
	if caller.IsAdmin() {
		return true
	}
	return target.OwnerID != nil && *target.OwnerID == caller.ID
}

// ScopeForList computes the ownership filter a list query must apply.
// Evaluated per request; never cached.
func ScopeForList(caller Caller) ListScope {
	if caller.IsAdmin() {
		return ListScope{}
	}
	owner := caller.ID
	return ListScope{RestrictToOwner: &owner}
}

// CanManageUsers gates every user-entity operation uniformly. There is no
// per-user ownership concept for this resource.
func CanManageUsers(caller Caller) bool {
	return caller.IsAdmin()
}

// CanDeleteUser forbids self-deletion, admins included. Assumes
// CanManageUsers has already passed.
func CanDeleteUser(caller Caller, targetID uint64) bool {
	return caller.ID != targetID
}
