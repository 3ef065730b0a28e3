package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/textnorm"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, existencia, precio, creado`

// Create persiste un nuevo producto. La columna busqueda guarda el nombre normalizado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO productos (id, nombre, busqueda, existencia, precio, creado)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Nombre, textnorm.Fold(product.Nombre), product.Existencia, product.Precio, product.Creado,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM productos WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto con SELECT ... FOR UPDATE (solo tiene efecto dentro de una tx).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM productos WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) findOne(ctx context.Context, query, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.Existencia, &p.Precio, &p.Creado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.query(ctx, `SELECT `+productColumns+` FROM productos ORDER BY creado, id`)
}

// Search devuelve los productos en cuyo nombre normalizado cada palabra de texto es prefijo
// de alguna palabra: "caf org" encuentra "café orgánico". % y _ se buscan literales.
// El orden usa ts_rank con to_tsvector('spanish', busqueda).
func (r *ProductRepo) Search(ctx context.Context, texto string) ([]*entity.Product, error) {
	filter, args := wordPrefixFilter("busqueda", texto, 2)
	if filter == "" {
		return []*entity.Product{}, nil
	}
	query := `
		SELECT ` + productColumns + `
		FROM productos
		WHERE ` + filter + `
		ORDER BY ts_rank(to_tsvector('spanish', busqueda), plainto_tsquery('spanish', $1)) DESC, nombre`
	return r.query(ctx, query, append([]any{texto}, args...)...)
}

func (r *ProductRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Existencia, &p.Precio, &p.Creado); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reemplaza nombre, existencia y precio.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE productos SET nombre = $2, busqueda = $3, existencia = $4, precio = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.Nombre, textnorm.Fold(product.Nombre), product.Existencia, product.Precio,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update product: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update product: %w", err)
	}
	return mustAffect(tag, "update product", product.ID)
}

// UpdateStock fija la existencia. El CHECK (existencia >= 0) rechaza valores negativos.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, existencia int) error {
	tag, err := r.q.Exec(ctx, `UPDATE productos SET existencia = $2 WHERE id = $1`, id, existencia)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update stock %s: %w", id, domain.ErrInsufficientStock)
		}
		return fmt.Errorf("update stock: %w", err)
	}
	return mustAffect(tag, "update stock", id)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return mustAffect(tag, "delete product", id)
}
