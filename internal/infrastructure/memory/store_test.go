package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pedidos-api/pkg/textnorm"
)

func seedProduct(t *testing.T, s *memory.Store, id, nombre string, existencia int) {
	t.Helper()
	require.NoError(t, s.Products().Create(context.Background(), &entity.Product{
		ID: id, Nombre: nombre, Existencia: existencia, Precio: decimal.NewFromInt(10), Creado: time.Now(),
	}))
}

func TestTxRunner_ErrorDescartaCambios(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Lápiz", 5)

	boom := errors.New("boom")
	err := s.TxRunner().Run(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		require.NoError(t, products.UpdateStock(ctx, "p1", 1))
		require.NoError(t, orders.Create(ctx, &entity.Order{ID: "o1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Existencia)
	o, err := s.Orders().GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestTxRunner_CommitPublicaCambios(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Lápiz", 5)

	err := s.TxRunner().Run(ctx, func(products repository.ProductRepository, _ repository.OrderRepository) error {
		return products.UpdateStock(ctx, "p1", 2)
	})
	require.NoError(t, err)

	p, _ := s.Products().GetByID(ctx, "p1")
	assert.Equal(t, 2, p.Existencia)
}

func TestProductRepo_UpdateStockNegativo(t *testing.T) {
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Lápiz", 5)

	err := s.Products().UpdateStock(context.Background(), "p1", -1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestProductRepo_SearchIgnoraTildes(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Café Orgánico", 1)
	seedProduct(t, s, "p2", "Té verde", 1)

	got, err := s.Products().Search(ctx, textnorm.Fold("CAFE"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	got, err = s.Products().Search(ctx, "cafe verde")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductRepo_SearchPrefijosDePalabra(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Café Orgánico", 1)
	seedProduct(t, s, "p2", "Té verde", 1)

	for texto, want := range map[string][]string{
		"caf org": {"p1"},
		"ver":     {"p2"},
		"afe":     nil,
		"%":       nil,
		"_":       nil,
	} {
		got, err := s.Products().Search(ctx, texto)
		require.NoError(t, err)
		ids := []string{}
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		if want == nil {
			assert.Empty(t, ids, texto)
			continue
		}
		assert.Equal(t, want, ids, texto)
	}
}

func TestClientRepo_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Clients().Create(ctx, &entity.Client{ID: "c1", Email: "a@x.com", Vendedor: "u1"}))

	err := s.Clients().Create(ctx, &entity.Client{ID: "c2", Email: "a@x.com", Vendedor: "u2"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClientRepo_UpdateConservaVendedor(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Clients().Create(ctx, &entity.Client{ID: "c1", Email: "a@x.com", Vendedor: "u1"}))

	require.NoError(t, s.Clients().Update(ctx, &entity.Client{ID: "c1", Email: "a@x.com", Nombre: "Ana", Vendedor: "u2"}))

	c, _ := s.Clients().GetByID(ctx, "c1")
	assert.Equal(t, "u1", c.Vendedor)
	assert.Equal(t, "Ana", c.Nombre)
}

func TestAnalytics_SoloCompletadosOrdenDescendente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	users := s.Users()
	for _, id := range []string{"u1", "u2", "u3"} {
		require.NoError(t, users.Create(ctx, &entity.User{ID: id, Email: id + "@x.com"}))
	}
	orders := s.Orders()
	add := func(id, seller, client, estado string, total int64) {
		require.NoError(t, orders.Create(ctx, &entity.Order{
			ID: id, Vendedor: seller, Cliente: client, Estado: estado, Total: decimal.NewFromInt(total),
		}))
	}
	add("o1", "u1", "c1", entity.OrderStatusCompletado, 100)
	add("o2", "u2", "c2", entity.OrderStatusCompletado, 300)
	add("o3", "u3", "c1", entity.OrderStatusCompletado, 50)
	add("o4", "u1", "c1", entity.OrderStatusCompletado, 100)
	add("o5", "u3", "c2", entity.OrderStatusPendiente, 1000)

	sellers, err := s.Analytics().TopSellers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.Equal(t, "u2", sellers[0].SellerID)
	assert.Equal(t, "u1", sellers[1].SellerID)
	assert.True(t, decimal.NewFromInt(200).Equal(sellers[1].Total))
	require.NotNil(t, sellers[0].Seller)

	clients, err := s.Analytics().TopClients(ctx, 0)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "c2", clients[0].ClientID)
	assert.True(t, decimal.NewFromInt(250).Equal(clients[1].Total))
	assert.Nil(t, clients[0].Client)
}
