// Package localstore persiste el estado de la tienda en un único
// documento JSON versionado en disco (el equivalente del localStorage
// del navegador: una instalación, un documento, sin sincronización).
// Todas las escrituras reescriben el documento completo de forma
// atómica (archivo temporal + rename).
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vasave/storefront-api/internal/domain/entity"
)

// schemaVersion versión del esquema del documento persistido.
const schemaVersion = 1

// document es la raíz serializada: carrito, códigos activos, registro
// de usuarios, sesión y órdenes, todo bajo un solo load/save.
type document struct {
	Version      int               `json:"version"`
	Cart         []entity.CartLine `json:"cart"`
	PromoCode    string            `json:"promo_code"`
	ReferralCode string            `json:"referral_code"`
	Users        []entity.User     `json:"users"`
	Session      *entity.Session   `json:"session"`
	Orders       []entity.Order    `json:"orders"`
}

func emptyDocument() document {
	return document{Version: schemaVersion}
}

// Store mantiene el documento en memoria y lo reescribe en cada
// mutación. Los puertos de persistencia del dominio se obtienen con
// Cart(), Codes(), Users(), Sessions() y Orders().
type Store struct {
	mu   sync.RWMutex
	path string
	doc  document
}

// Open carga el documento desde path. Si el archivo no existe o su
// contenido es ilegible, arranca con estado vacío: el estado corrupto
// nunca impide el arranque.
func Open(path string) (*Store, error) {
	s := &Store{path: path, doc: emptyDocument()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil || doc.Version != schemaVersion {
		// Documento corrupto o de otra versión: se descarta.
		s.doc = emptyDocument()
		return s, nil
	}
	s.doc = doc
	return s, nil
}

// Path devuelve la ruta del documento en disco.
func (s *Store) Path() string { return s.path }

// save escribe el documento completo de forma atómica. Debe llamarse
// con s.mu tomado en escritura.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".storefront-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Cart devuelve el puerto repository.CartRepository.
func (s *Store) Cart() *CartRepo { return &CartRepo{s: s} }

// Codes devuelve el puerto repository.AppliedCodesRepository.
func (s *Store) Codes() *CodesRepo { return &CodesRepo{s: s} }

// Users devuelve el puerto repository.UserRepository.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Sessions devuelve el puerto repository.SessionRepository.
func (s *Store) Sessions() *SessionRepo { return &SessionRepo{s: s} }

// Orders devuelve el puerto repository.OrderRepository.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

// ── CartRepository ────────────────────────────────────────────────────────────

// CartRepo vista del documento para el carrito.
type CartRepo struct{ s *Store }

// Load devuelve una copia de las líneas persistidas, en orden.
func (r *CartRepo) Load() []entity.CartLine {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.CartLine, len(r.s.doc.Cart))
	copy(out, r.s.doc.Cart)
	return out
}

// Save reemplaza la colección completa del carrito.
func (r *CartRepo) Save(lines []entity.CartLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doc.Cart = make([]entity.CartLine, len(lines))
	copy(r.s.doc.Cart, lines)
	return r.s.save()
}

// ── AppliedCodesRepository ────────────────────────────────────────────────────

// CodesRepo vista del documento para los códigos activos.
type CodesRepo struct{ s *Store }

// Get devuelve los códigos activos (cadenas vacías si no hay).
func (r *CodesRepo) Get() entity.AppliedCodes {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return entity.AppliedCodes{Promo: r.s.doc.PromoCode, Referral: r.s.doc.ReferralCode}
}

// Save persiste los códigos activos.
func (r *CodesRepo) Save(codes entity.AppliedCodes) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doc.PromoCode = codes.Promo
	r.s.doc.ReferralCode = codes.Referral
	return r.s.save()
}

// ── UserRepository ────────────────────────────────────────────────────────────

// UserRepo vista del documento para el registro de usuarios.
type UserRepo struct{ s *Store }

// Create agrega un usuario al registro.
func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doc.Users = append(r.s.doc.Users, *user)
	return r.s.save()
}

// GetByEmail busca por email case-insensitive; nil si no existe.
func (r *UserRepo) GetByEmail(email string) *entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.doc.Users {
		if strings.EqualFold(r.s.doc.Users[i].Email, email) {
			u := r.s.doc.Users[i]
			return &u
		}
	}
	return nil
}

// List devuelve el registro completo de usuarios.
func (r *UserRepo) List() []entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.User, len(r.s.doc.Users))
	copy(out, r.s.doc.Users)
	return out
}

// ── SessionRepository ─────────────────────────────────────────────────────────

// SessionRepo vista del documento para la sesión actual.
type SessionRepo struct{ s *Store }

// Get devuelve nil si no hay sesión activa.
func (r *SessionRepo) Get() *entity.Session {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.doc.Session == nil {
		return nil
	}
	sess := *r.s.doc.Session
	return &sess
}

// Set establece la sesión actual (reemplaza cualquier anterior).
func (r *SessionRepo) Set(session entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doc.Session = &session
	return r.s.save()
}

// Clear elimina la sesión; no-op si no había.
func (r *SessionRepo) Clear() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doc.Session = nil
	return r.s.save()
}

// ── OrderRepository ───────────────────────────────────────────────────────────

// OrderRepo vista del documento para el historial de órdenes.
type OrderRepo struct{ s *Store }

// Create agrega una orden al historial.
func (r *OrderRepo) Create(order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.doc.Orders = append(r.s.doc.Orders, *order)
	return r.s.save()
}

// GetByID devuelve nil si la orden no existe.
func (r *OrderRepo) GetByID(id string) *entity.Order {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.doc.Orders {
		if r.s.doc.Orders[i].ID == id {
			o := r.s.doc.Orders[i]
			return &o
		}
	}
	return nil
}

// ListByEmail devuelve las órdenes de un email, más reciente primero.
func (r *OrderRepo) ListByEmail(email string) []entity.Order {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Order, 0)
	for i := len(r.s.doc.Orders) - 1; i >= 0; i-- {
		if strings.EqualFold(r.s.doc.Orders[i].Email, email) {
			out = append(out, r.s.doc.Orders[i])
		}
	}
	return out
}
