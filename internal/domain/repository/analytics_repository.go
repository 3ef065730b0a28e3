package repository

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ClientRanking total vendido a un cliente en pedidos COMPLETADO.
// Client es nil si el cliente fue eliminado.
type ClientRanking struct {
	ClientID string
	Total    decimal.Decimal
	Client   *entity.Client
}

// SellerRanking total vendido por un vendedor en pedidos COMPLETADO.
type SellerRanking struct {
	SellerID string
	Total    decimal.Decimal
	Seller   *entity.User
}

// AnalyticsRepository consultas de agregación de solo lectura.
type AnalyticsRepository interface {
	// TopClients agrupa por cliente, ordena por total descendente. limit <= 0 = sin límite.
	TopClients(ctx context.Context, limit int) ([]ClientRanking, error)
	// TopSellers agrupa por vendedor, ordena por total descendente. limit <= 0 = sin límite.
	TopSellers(ctx context.Context, limit int) ([]SellerRanking, error)
}
