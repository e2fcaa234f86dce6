package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatthien/church-equipment/pkg/constants"
)

func ptrUint64(v uint64) *uint64 { return &v }

func TestCanAccess_AdminAlwaysAllowed(t *testing.T) {
	admin := Caller{ID: 7, Role: constants.RoleAdmin}

	assert.True(t, CanAccess(admin, Target{OwnerID: ptrUint64(7)}))
	assert.True(t, CanAccess(admin, Target{OwnerID: ptrUint64(42)}))
	assert.True(t, CanAccess(admin, Target{OwnerID: nil}), "ownerless rows stay reachable by admins")
}

func TestCanAccess_UserOnlyOwnRows(t *testing.T) {
	user := Caller{ID: 3, Role: constants.RoleUser}

	assert.True(t, CanAccess(user, Target{OwnerID: ptrUint64(3)}))
	assert.False(t, CanAccess(user, Target{OwnerID: ptrUint64(4)}))
	assert.False(t, CanAccess(user, Target{OwnerID: nil}), "detached rows are invisible to regular users")
}

func TestCanAccess_UnknownRoleTreatedAsUser(t *testing.T) {
	caller := Caller{ID: 3, Role: "superuser"}

	assert.True(t, CanAccess(caller, Target{OwnerID: ptrUint64(3)}))
	assert.False(t, CanAccess(caller, Target{OwnerID: ptrUint64(9)}))
}

func TestScopeForList(t *testing.T) {
	adminScope := ScopeForList(Caller{ID: 2, Role: constants.RoleAdmin})
	assert.Nil(t, adminScope.RestrictToOwner)

	userScope := ScopeForList(Caller{ID: 1, Role: constants.RoleUser})
	if assert.NotNil(t, userScope.RestrictToOwner) {
		assert.Equal(t, uint64(1), *userScope.RestrictToOwner)
	}
}

func TestScopeForList_IndependentPerCaller(t *testing.T) {
	a := ScopeForList(Caller{ID: 1, Role: constants.RoleUser})
	b := ScopeForList(Caller{ID: 2, Role: constants.RoleUser})

	assert.Equal(t, uint64(1), *a.RestrictToOwner)
	assert.Equal(t, uint64(2), *b.RestrictToOwner)
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(Caller{ID: 1, Role: constants.RoleAdmin}))
	assert.False(t, CanManageUsers(Caller{ID: 1, Role: constants.RoleUser}))
	assert.False(t, CanManageUsers(Caller{ID: 1, Role: ""}))
}

func TestCanDeleteUser_NeverSelf(t *testing.T) {
	admin := Caller{ID: 5, Role: constants.RoleAdmin}

	assert.False(t, CanDeleteUser(admin, 5), "self-deletion is forbidden even for admins")
	assert.True(t, CanDeleteUser(admin, 6))
}
