package entity

import "time"

// User representa una cuenta registrada en la tienda.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // clave única, case-insensitive
	PasswordHash string    `json:"password_hash"` // bcrypt, nunca en claro
	UserRef      string    `json:"user_ref"` // código de referido para mostrar; no se garantiza único
	CreatedAt    time.Time `json:"created_at"`
}

// Session representa la sesión actual (como máximo una por instalación).
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
