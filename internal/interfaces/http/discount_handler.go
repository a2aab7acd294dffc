package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vasave/storefront-api/internal/application/dto"
	"github.com/vasave/storefront-api/internal/application/usecase"
	"github.com/vasave/storefront-api/internal/domain"
)

// DiscountHandler maneja la aplicación de códigos promo y de referido.
type DiscountHandler struct {
	uc *usecase.DiscountUseCase
}

// NewDiscountHandler construye el handler.
func NewDiscountHandler(uc *usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

func codeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCode):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CODE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownCode):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// ApplyPromo godoc
// @Summary      Aplicar código promocional
// @Description  Reemplaza el promo activo anterior; no afecta al código de referido.
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyCodeRequest  true  "Código"
// @Success      200   {object}  dto.AppliedCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/discounts/promo [post]
func (h *DiscountHandler) ApplyPromo(c *fiber.Ctx) error {
	var in dto.ApplyCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	code, err := h.uc.ApplyPromo(in.Code)
	if err != nil {
		return codeError(c, err)
	}
	return c.JSON(dto.AppliedCodeResponse{Code: code.Code, Kind: code.Kind, Label: code.Label})
}

// ApplyReferral godoc
// @Summary      Aplicar código de referido
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyCodeRequest  true  "Código"
// @Success      200   {object}  dto.AppliedCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/discounts/referral [post]
func (h *DiscountHandler) ApplyReferral(c *fiber.Ctx) error {
	var in dto.ApplyCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	code, err := h.uc.ApplyReferral(in.Code)
	if err != nil {
		return codeError(c, err)
	}
	return c.JSON(dto.AppliedCodeResponse{Code: code.Code, Kind: code.Kind, Label: code.Label})
}

// Active godoc
// @Summary      Códigos activos actuales
// @Tags         discounts
// @Produce      json
// @Success      200  {object}  dto.ActiveCodesResponse
// @Router       /api/discounts [get]
func (h *DiscountHandler) Active(c *fiber.Ctx) error {
	codes := h.uc.ActiveCodes()
	return c.JSON(dto.ActiveCodesResponse{Promo: codes.Promo, Referral: codes.Referral})
}

// Clear godoc
// @Summary      Desactivar ambos códigos
// @Tags         discounts
// @Produce      json
// @Success      200  {object}  dto.ActiveCodesResponse
// @Router       /api/discounts [delete]
func (h *DiscountHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearCodes(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ActiveCodesResponse{})
}
