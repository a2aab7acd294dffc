package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vasave/storefront-api/internal/application/dto"
	"github.com/vasave/storefront-api/internal/domain"
	"github.com/vasave/storefront-api/internal/domain/entity"
	"github.com/vasave/storefront-api/internal/domain/repository"
	"github.com/vasave/storefront-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AccountUseCase registro, login y sesión de la tienda. Los passwords
// se guardan como hash bcrypt y se comparan con bcrypt, nunca en claro.
type AccountUseCase struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	discounts *DiscountUseCase
	jwtCfg    JWTConfig
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(users repository.UserRepository, sessions repository.SessionRepository, discounts *DiscountUseCase, jwtCfg JWTConfig) *AccountUseCase {
	return &AccountUseCase{users: users, sessions: sessions, discounts: discounts, jwtCfg: jwtCfg}
}

// newUserRef genera el código de referido para mostrar ("VAS-XXXXXX").
// No se garantiza único; es solo un código de cortesía.
func newUserRef() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "VAS-" + strings.ToUpper(raw[:6])
}

// Signup crea la cuenta, establece la sesión y devuelve el token. Si el
// email ya existe (case-insensitive) devuelve ErrEmailAlreadyExists sin
// mutar nada. Un código de referido opcional válido queda activo como
// si se hubiera llamado ApplyReferral; uno inválido se ignora sin
// impedir el registro.
func (uc *AccountUseCase) Signup(in dto.SignupRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing := uc.users.GetByEmail(email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		UserRef:      newUserRef(),
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	if err := uc.sessions.Set(entity.Session{Name: user.Name, Email: user.Email}); err != nil {
		return nil, err
	}
	if in.ReferralCode != "" {
		// Mismo efecto que ApplyReferral; un código inválido no bloquea el alta.
		_, _ = uc.discounts.ApplyReferral(in.ReferralCode)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:   token,
		Session: dto.SessionResponse{Name: user.Name, Email: user.Email, UserRef: user.UserRef},
	}, nil
}

// Login compara email (case-insensitive) y password contra el registro.
// Cualquier fallo devuelve ErrInvalidCredentials sin cambiar la sesión.
func (uc *AccountUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user := uc.users.GetByEmail(strings.TrimSpace(in.Email))
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.sessions.Set(entity.Session{Name: user.Name, Email: user.Email}); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:   token,
		Session: dto.SessionResponse{Name: user.Name, Email: user.Email, UserRef: user.UserRef},
	}, nil
}

// Logout elimina la sesión incondicionalmente.
func (uc *AccountUseCase) Logout() error {
	return uc.sessions.Clear()
}

// Current devuelve la sesión activa o ErrNoSession.
func (uc *AccountUseCase) Current() (*dto.SessionResponse, error) {
	sess := uc.sessions.Get()
	if sess == nil {
		return nil, domain.ErrNoSession
	}
	out := &dto.SessionResponse{Name: sess.Name, Email: sess.Email}
	if user := uc.users.GetByEmail(sess.Email); user != nil {
		out.UserRef = user.UserRef
	}
	return out, nil
}
