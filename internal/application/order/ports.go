package order

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a ella.
// Si fn devuelve error se hace Rollback: ningún ajuste de existencia queda aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// ReceiptRenderer genera el comprobante PDF de un pedido.
type ReceiptRenderer interface {
	RenderOrderReceipt(ctx context.Context, receipt Receipt) ([]byte, error)
}

// Receipt datos que necesita el comprobante de un pedido.
type Receipt struct {
	Order  *entity.Order
	Client *entity.Client
	Seller *entity.User
}
