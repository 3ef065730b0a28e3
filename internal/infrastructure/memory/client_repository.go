package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación en memoria de repository.ClientRepository.
type ClientRepo struct {
	binding
}

func emailTaken(d *dataset, email, exceptID string) bool {
	for id, c := range d.clients {
		if id != exceptID && c.v.Email == email {
			return true
		}
	}
	return false
}

func (r *ClientRepo) Create(_ context.Context, client *entity.Client) error {
	return r.view(func(d *dataset) error {
		if emailTaken(d, client.Email, "") {
			return fmt.Errorf("client create: email %s: %w", client.Email, domain.ErrConflict)
		}
		d.clients[client.ID] = row[entity.Client]{seq: d.next(), v: *client}
		return nil
	})
}

func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	var out *entity.Client
	err := r.view(func(d *dataset) error {
		if c, ok := d.clients[id]; ok {
			v := c.v
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *ClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	var out *entity.Client
	err := r.view(func(d *dataset) error {
		for _, c := range d.clients {
			if c.v.Email == email {
				v := c.v
				out = &v
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *ClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	var out []*entity.Client
	err := r.view(func(d *dataset) error {
		out = sorted(d.clients, nil)
		return nil
	})
	return out, err
}

func (r *ClientRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	err := r.view(func(d *dataset) error {
		out = sorted(d.clients, func(c *entity.Client) bool { return c.Vendedor == sellerID })
		return nil
	})
	return out, err
}

func (r *ClientRepo) Update(_ context.Context, client *entity.Client) error {
	return r.view(func(d *dataset) error {
		cur, ok := d.clients[client.ID]
		if !ok {
			return fmt.Errorf("client update %s: %w", client.ID, domain.ErrNotFound)
		}
		if emailTaken(d, client.Email, client.ID) {
			return fmt.Errorf("client update: email %s: %w", client.Email, domain.ErrConflict)
		}
		vendedor := cur.v.Vendedor
		cur.v = *client
		cur.v.Vendedor = vendedor
		d.clients[client.ID] = cur
		return nil
	})
}

func (r *ClientRepo) Delete(_ context.Context, id string) error {
	return r.view(func(d *dataset) error {
		if _, ok := d.clients[id]; !ok {
			return fmt.Errorf("client delete %s: %w", id, domain.ErrNotFound)
		}
		delete(d.clients, id)
		return nil
	})
}
