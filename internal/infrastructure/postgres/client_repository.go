package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, nombre, apellido, empresa, email, telefono, vendedor, creado`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `INSERT INTO clientes (` + clientColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.Apellido, c.Empresa, c.Email, c.Telefono, c.Vendedor, c.Creado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert client: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.findOne(ctx, `SELECT `+clientColumns+` FROM clientes WHERE id = $1`, id)
}

// GetByEmail obtiene un cliente por email.
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	return r.findOne(ctx, `SELECT `+clientColumns+` FROM clientes WHERE email = $1`, email)
}

func (r *ClientRepo) findOne(ctx context.Context, query, arg string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	return r.query(ctx, `SELECT `+clientColumns+` FROM clientes ORDER BY creado, id`)
}

// ListBySeller devuelve los clientes de un vendedor.
func (r *ClientRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Client, error) {
	return r.query(ctx, `SELECT `+clientColumns+` FROM clientes WHERE vendedor = $1 ORDER BY creado, id`, sellerID)
}

func (r *ClientRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	list := []*entity.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update reemplaza los datos de contacto; vendedor no se toca.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clientes SET nombre = $2, apellido = $3, empresa = $4, email = $5, telefono = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Apellido, c.Empresa, c.Email, c.Telefono)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update client: %w", domain.ErrConflict)
		}
		return fmt.Errorf("update client: %w", err)
	}
	return mustAffect(tag, "update client", c.ID)
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return mustAffect(tag, "delete client", id)
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Empresa, &c.Email, &c.Telefono, &c.Vendedor, &c.Creado); err != nil {
		return nil, err
	}
	return &c, nil
}
