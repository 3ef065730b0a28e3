package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pedido.
const (
	OrderStatusPendiente  = "PENDIENTE"
	OrderStatusCompletado = "COMPLETADO"
	OrderStatusCancelado  = "CANCELADO"
)

// ValidOrderStatus indica si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPendiente, OrderStatusCompletado, OrderStatusCancelado:
		return true
	}
	return false
}

// OrderItem es una línea del pedido. Nombre y Precio son una foto del producto
// tomada al reservar la existencia.
type OrderItem struct {
	ProductID string          `json:"id"`
	Cantidad  int             `json:"cantidad"`
	Nombre    string          `json:"nombre,omitempty"`
	Precio    decimal.Decimal `json:"precio"`
}

// Order representa un pedido de un cliente, creado por un vendedor.
type Order struct {
	ID       string
	Items    []OrderItem
	Total    decimal.Decimal
	Cliente  string
	Vendedor string
	Estado   string
	Creado   time.Time
}

// OwnedBy indica si el pedido fue creado por el vendedor dado.
func (o *Order) OwnedBy(sellerID string) bool {
	return sellerID != "" && o.Vendedor == sellerID
}

// Quantities agrupa las cantidades por producto (suma si un producto se repite)
// y devuelve también el orden de primera aparición.
func Quantities(items []OrderItem) (map[string]int, []string) {
	qty := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		if _, seen := qty[it.ProductID]; !seen {
			order = append(order, it.ProductID)
		}
		qty[it.ProductID] += it.Cantidad
	}
	return qty, order
}
