package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agrega los pedidos COMPLETADO del almacén.
type AnalyticsRepo struct {
	binding
}

// totals suma el total de los pedidos completados agrupando por key, ordenado desc.
func totals(d *dataset, key func(*entity.Order) string) []groupTotal {
	byKey := map[string]decimal.Decimal{}
	var keys []string
	for _, o := range sorted(d.orders, func(o *entity.Order) bool { return o.Estado == entity.OrderStatusCompletado }) {
		k := key(o)
		if _, ok := byKey[k]; !ok {
			keys = append(keys, k)
		}
		byKey[k] = byKey[k].Add(o.Total)
	}
	out := make([]groupTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, groupTotal{id: k, total: byKey[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].total.GreaterThan(out[j].total) })
	return out
}

type groupTotal struct {
	id    string
	total decimal.Decimal
}

func limited(groups []groupTotal, limit int) []groupTotal {
	if limit > 0 && len(groups) > limit {
		return groups[:limit]
	}
	return groups
}

func (r *AnalyticsRepo) TopClients(_ context.Context, limit int) ([]repository.ClientRanking, error) {
	var out []repository.ClientRanking
	err := r.view(func(d *dataset) error {
		groups := limited(totals(d, func(o *entity.Order) string { return o.Cliente }), limit)
		out = make([]repository.ClientRanking, 0, len(groups))
		for _, g := range groups {
			rk := repository.ClientRanking{ClientID: g.id, Total: g.total}
			if c, ok := d.clients[g.id]; ok {
				v := c.v
				rk.Client = &v
			}
			out = append(out, rk)
		}
		return nil
	})
	return out, err
}

func (r *AnalyticsRepo) TopSellers(_ context.Context, limit int) ([]repository.SellerRanking, error) {
	var out []repository.SellerRanking
	err := r.view(func(d *dataset) error {
		groups := limited(totals(d, func(o *entity.Order) string { return o.Vendedor }), limit)
		out = make([]repository.SellerRanking, 0, len(groups))
		for _, g := range groups {
			rk := repository.SellerRanking{SellerID: g.id, Total: g.total}
			if u, ok := d.users[g.id]; ok {
				v := u.v
				rk.Seller = &v
			}
			out = append(out, rk)
		}
		return nil
	})
	return out, err
}
