package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// reserve descuenta la existencia de cada línea, en el orden recibido, y devuelve
// las líneas con la foto de nombre y precio del producto.
// Debe ejecutarse dentro de una transacción (usa GetForUpdate).
func reserve(ctx context.Context, products repository.ProductRepository, items []entity.OrderItem) ([]entity.OrderItem, error) {
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		p, err := products.GetForUpdate(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrProductNotFound
		}
		if !p.HasStock(it.Cantidad) {
			return nil, exceedsStock(p)
		}
		if err := products.UpdateStock(ctx, p.ID, p.Existencia-it.Cantidad); err != nil {
			return nil, err
		}
		it.Nombre = p.Nombre
		it.Precio = p.Precio
		out = append(out, it)
	}
	return out, nil
}

// reconcile ajusta la existencia al pasar de las líneas previous a revised.
// Para cada producto de revised: disponible = existencia actual + cantidad previa;
// falla si disponible < nueva cantidad, si no existencia = disponible - nueva cantidad.
// Un producto nuevo en el pedido tiene cantidad previa 0; uno que desaparece
// recupera toda su cantidad previa.
func reconcile(ctx context.Context, products repository.ProductRepository, previous, revised []entity.OrderItem) ([]entity.OrderItem, error) {
	prevQty, prevOrder := entity.Quantities(previous)
	newQty, newOrder := entity.Quantities(revised)

	snapshot := make(map[string]*entity.Product, len(newOrder))
	for _, id := range newOrder {
		p, err := products.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrProductNotFound
		}
		available := p.Existencia + prevQty[id]
		if available < newQty[id] {
			return nil, exceedsStock(p)
		}
		if err := products.UpdateStock(ctx, id, available-newQty[id]); err != nil {
			return nil, err
		}
		snapshot[id] = p
	}

	for _, id := range prevOrder {
		if _, kept := newQty[id]; kept {
			continue
		}
		if err := restore(ctx, products, id, prevQty[id]); err != nil {
			return nil, err
		}
	}

	out := make([]entity.OrderItem, 0, len(revised))
	for _, it := range revised {
		p := snapshot[it.ProductID]
		it.Nombre = p.Nombre
		it.Precio = p.Precio
		out = append(out, it)
	}
	return out, nil
}

// release devuelve sin condiciones la cantidad de cada línea a su producto.
func release(ctx context.Context, products repository.ProductRepository, items []entity.OrderItem) error {
	qty, order := entity.Quantities(items)
	for _, id := range order {
		if err := restore(ctx, products, id, qty[id]); err != nil {
			return err
		}
	}
	return nil
}

// restore suma cantidad a la existencia del producto. Un producto eliminado se omite.
func restore(ctx context.Context, products repository.ProductRepository, productID string, cantidad int) error {
	p, err := products.GetForUpdate(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	return products.UpdateStock(ctx, p.ID, p.Existencia+cantidad)
}

func exceedsStock(p *entity.Product) error {
	return domain.NewError(domain.ErrInsufficientStock,
		fmt.Sprintf("El articulo %s excede la cantidad disponible", p.Nombre))
}
