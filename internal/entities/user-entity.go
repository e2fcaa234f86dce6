package entities

import "time"

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Name     string `json:"name" db:"name"`

	Password string `json:"-" db:"password"`

	Role string `json:"role" db:"role"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
