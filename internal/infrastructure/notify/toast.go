// Package notify implementa las notificaciones transitorias (toasts)
// de la tienda: mensajes que se auto-descartan tras un TTL fijo.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL duración de un toast antes de auto-descartarse.
const DefaultTTL = 3 * time.Second

// Toast una notificación activa.
type Toast struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ToastCenter acumula toasts y descarta los vencidos al leerlos.
type ToastCenter struct {
	mu     sync.Mutex
	ttl    time.Duration
	toasts []Toast
	now    func() time.Time
}

// NewToastCenter construye el centro de notificaciones; ttl <= 0 usa DefaultTTL.
func NewToastCenter(ttl time.Duration) *ToastCenter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ToastCenter{ttl: ttl, now: time.Now}
}

// Notify agrega un toast con el TTL configurado.
func (c *ToastCenter) Notify(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.toasts = append(c.toasts, Toast{
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	})
}

// Active devuelve los toasts no vencidos y poda los vencidos.
func (c *ToastCenter) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		if t.ExpiresAt.After(now) {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
	out := make([]Toast, len(alive))
	copy(out, alive)
	return out
}
