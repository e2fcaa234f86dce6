package constants

// Equipment lifecycle statuses. Matching is exact and case-sensitive.
const (
	StatusNew       = "new"
	StatusOld       = "old"
	StatusDamaged   = "damaged"
	StatusRepairing = "repairing"
	StatusDisposed  = "disposed"
)

// EquipmentStatuses is the closed set of valid Equipment.status values.
var EquipmentStatuses = map[string]struct{}{
	StatusNew:       {},
	StatusOld:       {},
	StatusDamaged:   {},
	StatusRepairing: {},
	StatusDisposed:  {},
}

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)
