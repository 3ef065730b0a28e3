package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/order"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// ReceiptHandler entrega el comprobante PDF de un pedido (protegido).
type ReceiptHandler struct {
	uc  *order.OrderUseCase
	log *logger.Logger
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *order.OrderUseCase, log *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, log: log}
}

// Get responde GET /api/pedidos/:id/comprobante con application/pdf.
func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="pedido-`+id+`.pdf"`)
	return c.Send(pdf)
}

func (h *ReceiptHandler) writeError(c *fiber.Ctx, err error) error {
	msg := err.Error()
	var de *domain.Error
	if errors.As(err, &de) {
		msg = de.Message
	}
	switch domain.KindOf(err) {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msg})
	default:
		h.log.Error().Err(err).Str("pedido", c.Params("id")).Msg("comprobante")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
