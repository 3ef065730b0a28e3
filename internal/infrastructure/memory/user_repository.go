package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de repository.UserRepository.
type UserRepo struct {
	binding
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.view(func(d *dataset) error {
		for _, u := range d.users {
			if u.v.Email == user.Email {
				return fmt.Errorf("user create: email %s: %w", user.Email, domain.ErrConflict)
			}
		}
		d.users[user.ID] = row[entity.User]{seq: d.next(), v: *user}
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.view(func(d *dataset) error {
		if u, ok := d.users[id]; ok {
			v := u.v
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.view(func(d *dataset) error {
		for _, u := range d.users {
			if u.v.Email == email {
				v := u.v
				out = &v
				return nil
			}
		}
		return nil
	})
	return out, err
}
