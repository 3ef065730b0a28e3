package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pedidos-api/internal/application/order"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ order.TxRunner = (*TxRunner)(nil)

// TxBeginner lo cumplen *pgxpool.Pool y *pgx.Conn.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TxRunner ejecuta las mutaciones de pedidos en una sola transacción. Los productos se
// bloquean con GetForUpdate, así que READ COMMITTED basta para no sobrevender.
type TxRunner struct {
	db   TxBeginner
	opts pgx.TxOptions
}

// NewTxRunner construye el runner sobre el pool (o una conexión).
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// Run ejecuta fn con repositorios de productos y pedidos atados a la transacción.
// Cualquier error de fn revierte todos los ajustes de existencia.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	err := pgx.BeginTxFunc(ctx, r.db, r.opts, func(tx pgx.Tx) error {
		return fn(NewProductRepository(tx), NewOrderRepository(tx))
	})
	if err != nil {
		return fmt.Errorf("pedido tx: %w", err)
	}
	return nil
}
