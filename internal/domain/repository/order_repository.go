package repository

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// OrderWithClient pedido con los datos de su cliente (nil si el cliente ya no existe).
type OrderWithClient struct {
	Order  *entity.Order
	Client *entity.Client
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetForUpdate obtiene el pedido y bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]OrderWithClient, error)
	ListBySellerAndStatus(ctx context.Context, sellerID, estado string) ([]*entity.Order, error)
	// Update reemplaza líneas, total, cliente y estado. Vendedor no cambia.
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
}
