package dto

// SignupRequest entrada de registro de cuenta.
type SignupRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	ReferralCode string `json:"referral_code"` // opcional; si es válido activa el descuento de referido
}

// LoginRequest entrada de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse la sesión actual.
type SessionResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	UserRef string `json:"user_ref,omitempty"`
}

// AuthResponse salida de signup/login: token + sesión.
type AuthResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}
