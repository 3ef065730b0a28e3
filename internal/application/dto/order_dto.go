package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de un pedido: producto y cantidad.
type OrderItemRequest struct {
	ProductID string `json:"id" validate:"required"`
	Cantidad  int    `json:"cantidad" validate:"gt=0"`
}

// CreateOrderRequest entrada de nuevoPedido. Estado vacío = PENDIENTE.
type CreateOrderRequest struct {
	Pedido  []OrderItemRequest `json:"pedido" validate:"required,min=1,dive"`
	Total   decimal.Decimal    `json:"total"`
	Cliente string             `json:"cliente" validate:"required"`
	Estado  string             `json:"estado" validate:"omitempty,oneof=PENDIENTE COMPLETADO CANCELADO"`
}

// UpdateOrderRequest entrada de actualizarPedido. Pedido nil = líneas sin cambios.
type UpdateOrderRequest struct {
	Pedido  []OrderItemRequest `json:"pedido" validate:"omitempty,min=1,dive"`
	Total   *decimal.Decimal   `json:"total"`
	Cliente *string            `json:"cliente" validate:"omitnil,min=1"`
	Estado  *string            `json:"estado" validate:"omitnil,oneof=PENDIENTE COMPLETADO CANCELADO"`
}

// OrderItemResponse línea de un pedido con la foto del producto.
type OrderItemResponse struct {
	ProductID string          `json:"id"`
	Cantidad  int             `json:"cantidad"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
}

// OrderResponse salida de un pedido. Cliente se adjunta solo en listados por vendedor.
type OrderResponse struct {
	ID        string              `json:"id"`
	Pedido    []OrderItemResponse `json:"pedido"`
	Total     decimal.Decimal     `json:"total"`
	ClienteID string              `json:"clienteId"`
	Cliente   *ClientResponse     `json:"cliente,omitempty"`
	Vendedor  string              `json:"vendedor"`
	Estado    string              `json:"estado"`
	Creado    time.Time           `json:"creado"`
}
