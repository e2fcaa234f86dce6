package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Department struct {
	ID          uint64      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Description null.String `json:"description" db:"description"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
