// Package memory implementa los repositorios en memoria. Lo usan los tests de casos de
// uso y de GraphQL, y el servidor con DB_DRIVER=memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

type row[T any] struct {
	seq int64
	v   T
}

type dataset struct {
	seq      int64
	users    map[string]row[entity.User]
	products map[string]row[entity.Product]
	clients  map[string]row[entity.Client]
	orders   map[string]row[entity.Order]
}

func newDataset() *dataset {
	return &dataset{
		users:    map[string]row[entity.User]{},
		products: map[string]row[entity.Product]{},
		clients:  map[string]row[entity.Client]{},
		orders:   map[string]row[entity.Order]{},
	}
}

func (d *dataset) next() int64 {
	d.seq++
	return d.seq
}

// clone copia profunda: las líneas de pedido no se comparten entre copias.
func (d *dataset) clone() *dataset {
	c := newDataset()
	c.seq = d.seq
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.clients {
		c.clients[k] = v
	}
	for k, v := range d.orders {
		v.v.Items = append([]entity.OrderItem(nil), v.v.Items...)
		c.orders[k] = v
	}
	return c
}

// sorted devuelve los valores en orden de inserción.
func sorted[T any](m map[string]row[T], keep func(*T) bool) []*T {
	rows := make([]row[T], 0, len(m))
	for _, r := range m {
		if keep == nil || keep(&r.v) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	out := make([]*T, 0, len(rows))
	for i := range rows {
		v := rows[i].v
		out = append(out, &v)
	}
	return out
}

// Store guarda todas las tablas. Las transacciones se serializan y trabajan sobre una
// copia que solo se publica si fn termina sin error.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// binding ata un repositorio al almacén (tx == nil) o a la copia de una transacción.
type binding struct {
	s  *Store
	tx *dataset
}

func (b binding) view(fn func(d *dataset) error) error {
	if b.tx != nil {
		return fn(b.tx)
	}
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	return fn(b.s.data)
}

func (s *Store) Users() *UserRepo { return &UserRepo{binding{s: s}} }
func (s *Store) Products() *ProductRepo { return &ProductRepo{binding{s: s}} }
func (s *Store) Clients() *ClientRepo { return &ClientRepo{binding{s: s}} }
func (s *Store) Orders() *OrderRepo { return &OrderRepo{binding{s: s}} }
func (s *Store) Analytics() *AnalyticsRepo { return &AnalyticsRepo{binding{s: s}} }
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// TxRunner ejecuta fn sobre una copia del almacén; el error de fn descarta la copia.
type TxRunner struct {
	s *Store
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx := r.s.data.clone()
	b := binding{s: r.s, tx: tx}
	if err := fn(&ProductRepo{b}, &OrderRepo{b}); err != nil {
		return err
	}
	r.s.data = tx
	return nil
}
