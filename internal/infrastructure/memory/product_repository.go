package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/textnorm"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de repository.ProductRepository.
type ProductRepo struct {
	binding
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.view(func(d *dataset) error {
		d.products[product.ID] = row[entity.Product]{seq: d.next(), v: *product}
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.view(func(d *dataset) error {
		if p, ok := d.products[id]; ok {
			v := p.v
			out = &v
		}
		return nil
	})
	return out, err
}

// GetForUpdate es GetByID: las transacciones en memoria ya son exclusivas.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.view(func(d *dataset) error {
		out = sorted(d.products, nil)
		return nil
	})
	return out, err
}

// Search devuelve los productos cuyo nombre normalizado contiene todas las palabras
// de texto como prefijo de alguna palabra.
func (r *ProductRepo) Search(_ context.Context, texto string) ([]*entity.Product, error) {
	terms := strings.Fields(texto)
	if len(terms) == 0 {
		return []*entity.Product{}, nil
	}
	var out []*entity.Product
	err := r.view(func(d *dataset) error {
		out = sorted(d.products, func(p *entity.Product) bool {
			return matchesAll(strings.Fields(textnorm.Fold(p.Nombre)), terms)
		})
		return nil
	})
	return out, err
}

func matchesAll(words, terms []string) bool {
	for _, t := range terms {
		found := false
		for _, w := range words {
			if strings.HasPrefix(w, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.view(func(d *dataset) error {
		cur, ok := d.products[product.ID]
		if !ok {
			return fmt.Errorf("product update %s: %w", product.ID, domain.ErrNotFound)
		}
		cur.v = *product
		d.products[product.ID] = cur
		return nil
	})
}

func (r *ProductRepo) UpdateStock(_ context.Context, id string, existencia int) error {
	return r.view(func(d *dataset) error {
		cur, ok := d.products[id]
		if !ok {
			return fmt.Errorf("product stock %s: %w", id, domain.ErrNotFound)
		}
		if existencia < 0 {
			return fmt.Errorf("product stock %s: %w", id, domain.ErrInsufficientStock)
		}
		cur.v.Existencia = existencia
		d.products[id] = cur
		return nil
	})
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.view(func(d *dataset) error {
		if _, ok := d.products[id]; !ok {
			return fmt.Errorf("product delete %s: %w", id, domain.ErrNotFound)
		}
		delete(d.products, id)
		return nil
	})
}
