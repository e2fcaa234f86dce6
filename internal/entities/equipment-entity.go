package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type Equipment struct {
	ID       uint64    `json:"id" db:"id"`
	PublicID uuid.UUID `json:"public_id" db:"public_id"`
	Name     string    `json:"name" db:"name"`
	Status   string    `json:"status" db:"status"`

	PurchaseDate null.Time `json:"purchase_date" db:"purchase_date"`

	DepartmentID *uint64 `json:"department_id" db:"department_id"`
	BrandID      *uint64 `json:"brand_id" db:"brand_id"`
	CreatedBy    *uint64 `json:"created_by" db:"created_by"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined names, not columns of the equipment table.
	DepartmentName null.String `json:"department_name" db:"-"`
	BrandName      null.String `json:"brand_name" db:"-"`
	CreatorName    null.String `json:"created_by_name" db:"-"`
}
