package dto

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}
