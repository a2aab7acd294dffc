package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vasave/storefront-api/internal/infrastructure/notify"
)

// NotificationHandler expone los toasts activos para que la vista los
// muestre; el auto-descarte (3s) lo maneja el ToastCenter.
type NotificationHandler struct {
	toasts *notify.ToastCenter
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(toasts *notify.ToastCenter) *NotificationHandler {
	return &NotificationHandler{toasts: toasts}
}

// Active godoc
// @Summary      Notificaciones activas
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  notify.Toast
// @Router       /api/notifications [get]
func (h *NotificationHandler) Active(c *fiber.Ctx) error {
	return c.JSON(h.toasts.Active())
}
