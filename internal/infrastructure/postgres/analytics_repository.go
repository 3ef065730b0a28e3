package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre pedidos COMPLETADO.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// limitArg: NULL en LIMIT equivale a sin límite.
func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}

// TopClients suma el total por cliente y adjunta sus datos (nulos si el cliente fue eliminado).
func (r *AnalyticsRepo) TopClients(ctx context.Context, limit int) ([]repository.ClientRanking, error) {
	const query = `
	SELECT
	    t.cliente, t.total,
	    c.nombre, c.apellido, c.empresa, c.email, c.telefono, c.vendedor, c.creado
	FROM (
	    SELECT cliente, SUM(total) AS total
	    FROM pedidos
	    WHERE estado = 'COMPLETADO'
	    GROUP BY cliente
	) t
	LEFT JOIN clientes c ON c.id = t.cliente
	ORDER BY t.total DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("top clients: %w", err)
	}
	defer rows.Close()

	list := []repository.ClientRanking{}
	for rows.Next() {
		var (
			rk                                                   repository.ClientRanking
			nombre, apellido, empresa, email, telefono, vendedor *string
			creado                                               *time.Time
		)
		if err := rows.Scan(&rk.ClientID, &rk.Total, &nombre, &apellido, &empresa, &email, &telefono, &vendedor, &creado); err != nil {
			return nil, fmt.Errorf("scan top client: %w", err)
		}
		if nombre != nil {
			rk.Client = &entity.Client{
				ID: rk.ClientID, Nombre: *nombre, Apellido: *apellido, Empresa: *empresa,
				Email: *email, Telefono: *telefono, Vendedor: *vendedor, Creado: *creado,
			}
		}
		list = append(list, rk)
	}
	return list, rows.Err()
}

// TopSellers suma el total por vendedor y adjunta sus datos.
func (r *AnalyticsRepo) TopSellers(ctx context.Context, limit int) ([]repository.SellerRanking, error) {
	const query = `
	SELECT
	    t.vendedor, t.total,
	    u.nombre, u.apellido, u.email, u.creado
	FROM (
	    SELECT vendedor, SUM(total) AS total
	    FROM pedidos
	    WHERE estado = 'COMPLETADO'
	    GROUP BY vendedor
	) t
	LEFT JOIN usuarios u ON u.id = t.vendedor
	ORDER BY t.total DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}
	defer rows.Close()

	list := []repository.SellerRanking{}
	for rows.Next() {
		var (
			rk                      repository.SellerRanking
			nombre, apellido, email *string
			creado                  *time.Time
		)
		if err := rows.Scan(&rk.SellerID, &rk.Total, &nombre, &apellido, &email, &creado); err != nil {
			return nil, fmt.Errorf("scan top seller: %w", err)
		}
		if nombre != nil {
			rk.Seller = &entity.User{
				ID: rk.SellerID, Nombre: *nombre, Apellido: *apellido, Email: *email, Creado: *creado,
			}
		}
		list = append(list, rk)
	}
	return list, rows.Err()
}
