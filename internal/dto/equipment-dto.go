package dto

type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required"`
	Status       *string `json:"status,omitempty" validate:"omitempty"`
	PurchaseDate *string `json:"purchase_date,omitempty" validate:"omitempty"`
	DepartmentID *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	BrandID      *uint64 `json:"brand_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateEquipmentDTO is a partial update: nil fields are left unchanged.
// An all-nil payload is a valid no-op.
type UpdateEquipmentDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitempty"`
	PurchaseDate *string `json:"purchase_date,omitempty" validate:"omitempty"`
	DepartmentID *uint64 `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	BrandID      *uint64 `json:"brand_id,omitempty" validate:"omitempty,gt=0"`
}

type EquipmentDTO struct {
	ID             uint64  `json:"id"`
	PublicID       string  `json:"public_id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	PurchaseDate   *string `json:"purchase_date"`
	DepartmentID   *uint64 `json:"department_id"`
	BrandID        *uint64 `json:"brand_id"`
	CreatedBy      *uint64 `json:"created_by"`
	DepartmentName *string `json:"department_name"`
	BrandName      *string `json:"brand_name"`
	CreatorName    *string `json:"created_by_name"`
	CreatedAt      string  `json:"created_at"`
}

// PublicEquipmentDTO is the limited field set served to unauthenticated QR
// scans. Internal identifiers and the creator stay hidden.
type PublicEquipmentDTO struct {
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	PurchaseDate   *string `json:"purchase_date"`
	DepartmentName *string `json:"department_name"`
	BrandName      *string `json:"brand_name"`
	CreatedAt      string  `json:"created_at"`
}

// EquipmentFilter carries list-query filters after parsing. RestrictToOwner
// comes from the access policy, never from user input.
type EquipmentFilter struct {
	Status          *string
	DepartmentID    *uint64
	BrandID         *uint64
	Search          string
	RestrictToOwner *uint64
	Limit           uint64
	Offset          uint64
}
