package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes de los
// errores de validación son los que ve el usuario final.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("este email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmptyCode          = errors.New("ingresa un código")
	ErrUnknownCode        = errors.New("código inválido")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrNoSession          = errors.New("no hay sesión activa")
)
