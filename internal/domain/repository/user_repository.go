package repository

import "github.com/vasave/storefront-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByEmail busca por email case-insensitive; nil si no existe.
	GetByEmail(email string) *entity.User
	List() []entity.User
}

// SessionRepository define el puerto de la sesión actual (cero o una).
type SessionRepository interface {
	// Get devuelve nil si no hay sesión activa.
	Get() *entity.Session
	Set(session entity.Session) error
	Clear() error
}
