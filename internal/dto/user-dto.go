package dto

type CreateUserDTO struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Name     string  `json:"name" validate:"required,min=2"`
	Role     *string `json:"role" validate:"omitempty"`
}

type UpdateUserDTO struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Role     *string `json:"role,omitempty" validate:"omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty"`
}

type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type ShortUserDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
