package dto

type CreateBrandDTO struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty" validate:"omitempty"`
}

type UpdateBrandDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty"`
}

type BrandDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type ShortBrandDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
