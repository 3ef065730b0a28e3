package usecase

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// TopSellersLimit cantidad máxima de vendedores en mejoresVendedores.
const TopSellersLimit = 2

// AnalyticsUseCase rankings sobre pedidos COMPLETADO.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso de analítica.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// TopClients clientes ordenados por total comprado, de mayor a menor.
func (uc *AnalyticsUseCase) TopClients(ctx context.Context) ([]*dto.TopClientResponse, error) {
	rows, err := uc.analyticsRepo.TopClients(ctx, 0)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TopClientResponse, 0, len(rows))
	for _, r := range rows {
		item := &dto.TopClientResponse{Total: r.Total, Cliente: []dto.ClientResponse{}}
		if c := dto.ToClientResponse(r.Client); c != nil {
			item.Cliente = append(item.Cliente, *c)
		}
		out = append(out, item)
	}
	return out, nil
}

// TopSellers los TopSellersLimit vendedores con mayor total vendido.
func (uc *AnalyticsUseCase) TopSellers(ctx context.Context) ([]*dto.TopSellerResponse, error) {
	rows, err := uc.analyticsRepo.TopSellers(ctx, TopSellersLimit)
	if err != nil {
		return nil, err
	}
	if len(rows) > TopSellersLimit {
		rows = rows[:TopSellersLimit]
	}
	out := make([]*dto.TopSellerResponse, 0, len(rows))
	for _, r := range rows {
		item := &dto.TopSellerResponse{Total: r.Total, Vendedor: []dto.UserResponse{}}
		if u := dto.ToUserResponse(r.Seller); u != nil {
			item.Vendedor = append(item.Vendedor, *u)
		}
		out = append(out, item)
	}
	return out, nil
}
