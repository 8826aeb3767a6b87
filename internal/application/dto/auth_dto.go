package dto

import "time"

// LoginRequest body para POST /api/auth/login. El login es por nombre de
// usuario, no por email (el personal de reparto no siempre tiene correo).
type LoginRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterUserRequest body para POST /api/users (solo admin).
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER SALES_PERSON"`
}

// UserResponse usuario en respuestas HTTP (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
