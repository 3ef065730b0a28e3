package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas se guardan en la columna JSONB pedido: [{id, cantidad, nombre, precio}].
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `p.id, p.pedido, p.total, p.cliente, p.vendedor, p.estado, p.creado`

// Create persiste un pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO pedidos (id, pedido, total, cliente, vendedor, estado, creado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, o.ID, o.Items, o.Total, o.Cliente, o.Vendedor, o.Estado, o.Creado)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM pedidos p WHERE p.id = $1`, id)
}

// GetForUpdate obtiene el pedido con SELECT ... FOR UPDATE. Dos ajustes concurrentes del
// mismo pedido se serializan aquí, antes de tocar la existencia de sus productos.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM pedidos p WHERE p.id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) findOne(ctx context.Context, query, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(orderDest(&o)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List devuelve todos los pedidos.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM pedidos p ORDER BY p.creado, p.id`)
}

// ListBySellerAndStatus pedidos de un vendedor en un estado.
func (r *OrderRepo) ListBySellerAndStatus(ctx context.Context, sellerID, estado string) ([]*entity.Order, error) {
	return r.query(ctx,
		`SELECT `+orderColumns+` FROM pedidos p WHERE p.vendedor = $1 AND p.estado = $2 ORDER BY p.creado, p.id`,
		sellerID, estado)
}

func (r *OrderRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list := []*entity.Order{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(orderDest(&o)...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListBySeller pedidos del vendedor con su cliente (LEFT JOIN: el cliente puede no existir).
func (r *OrderRepo) ListBySeller(ctx context.Context, sellerID string) ([]repository.OrderWithClient, error) {
	query := `
		SELECT ` + orderColumns + `,
		       c.id, c.nombre, c.apellido, c.empresa, c.email, c.telefono, c.vendedor, c.creado
		FROM pedidos p
		LEFT JOIN clientes c ON c.id = p.cliente
		WHERE p.vendedor = $1
		ORDER BY p.creado, p.id`
	rows, err := r.q.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by seller: %w", err)
	}
	defer rows.Close()
	list := []repository.OrderWithClient{}
	for rows.Next() {
		var (
			o        entity.Order
			cID      *string
			nombre   *string
			apellido *string
			empresa  *string
			email    *string
			telefono *string
			vendedor *string
			creado   *time.Time
		)
		dest := append(orderDest(&o), &cID, &nombre, &apellido, &empresa, &email, &telefono, &vendedor, &creado)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		item := repository.OrderWithClient{Order: &o}
		if cID != nil {
			item.Client = &entity.Client{
				ID: *cID, Nombre: *nombre, Apellido: *apellido, Empresa: *empresa,
				Email: *email, Telefono: *telefono, Vendedor: *vendedor, Creado: *creado,
			}
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Update reemplaza líneas, total, cliente y estado.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `UPDATE pedidos SET pedido = $2, total = $3, cliente = $4, estado = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, o.ID, o.Items, o.Total, o.Cliente, o.Estado)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return mustAffect(tag, "update order", o.ID)
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return mustAffect(tag, "delete order", id)
}

func orderDest(o *entity.Order) []any {
	return []any{&o.ID, &o.Items, &o.Total, &o.Cliente, &o.Vendedor, &o.Estado, &o.Creado}
}
