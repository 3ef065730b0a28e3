package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria de repository.OrderRepository.
type OrderRepo struct {
	binding
}

func copyOrder(o entity.Order) *entity.Order {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	return &o
}

func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	return r.view(func(d *dataset) error {
		d.orders[order.ID] = row[entity.Order]{seq: d.next(), v: *copyOrder(*order)}
		return nil
	})
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	var out *entity.Order
	err := r.view(func(d *dataset) error {
		if o, ok := d.orders[id]; ok {
			out = copyOrder(o.v)
		}
		return nil
	})
	return out, err
}

// GetForUpdate es GetByID: las transacciones en memoria ya son exclusivas.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *OrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.view(func(d *dataset) error {
		out = copyOrders(sorted(d.orders, nil))
		return nil
	})
	return out, err
}

func (r *OrderRepo) ListBySeller(_ context.Context, sellerID string) ([]repository.OrderWithClient, error) {
	var out []repository.OrderWithClient
	err := r.view(func(d *dataset) error {
		orders := copyOrders(sorted(d.orders, func(o *entity.Order) bool { return o.Vendedor == sellerID }))
		out = make([]repository.OrderWithClient, 0, len(orders))
		for _, o := range orders {
			item := repository.OrderWithClient{Order: o}
			if c, ok := d.clients[o.Cliente]; ok {
				v := c.v
				item.Client = &v
			}
			out = append(out, item)
		}
		return nil
	})
	return out, err
}

func (r *OrderRepo) ListBySellerAndStatus(_ context.Context, sellerID, estado string) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.view(func(d *dataset) error {
		out = copyOrders(sorted(d.orders, func(o *entity.Order) bool {
			return o.Vendedor == sellerID && o.Estado == estado
		}))
		return nil
	})
	return out, err
}

func (r *OrderRepo) Update(_ context.Context, order *entity.Order) error {
	return r.view(func(d *dataset) error {
		cur, ok := d.orders[order.ID]
		if !ok {
			return fmt.Errorf("order update %s: %w", order.ID, domain.ErrNotFound)
		}
		vendedor, creado := cur.v.Vendedor, cur.v.Creado
		cur.v = *copyOrder(*order)
		cur.v.Vendedor = vendedor
		cur.v.Creado = creado
		d.orders[order.ID] = cur
		return nil
	})
}

func (r *OrderRepo) Delete(_ context.Context, id string) error {
	return r.view(func(d *dataset) error {
		if _, ok := d.orders[id]; !ok {
			return fmt.Errorf("order delete %s: %w", id, domain.ErrNotFound)
		}
		delete(d.orders, id)
		return nil
	})
}

func copyOrders(list []*entity.Order) []*entity.Order {
	for i, o := range list {
		list[i] = copyOrder(*o)
	}
	return list
}
