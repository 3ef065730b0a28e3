package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/order"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
)

const (
	sellerA = "00000000-0000-0000-0000-00000000000a"
	sellerB = "00000000-0000-0000-0000-00000000000b"
)

type fakeRenderer struct {
	got order.Receipt
}

func (f *fakeRenderer) RenderOrderReceipt(_ context.Context, r order.Receipt) ([]byte, error) {
	f.got = r
	return []byte("%PDF"), nil
}

type OrderUseCaseSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	renderer *fakeRenderer
	uc       *order.OrderUseCase
}

func TestOrderUseCase(t *testing.T) {
	suite.Run(t, new(OrderUseCaseSuite))
}

func (s *OrderUseCaseSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.renderer = &fakeRenderer{}
	s.uc = order.NewOrderUseCase(s.store.TxRunner(), s.store.Orders(), s.store.Clients(), s.store.Users(), s.renderer)

	require.NoError(s.T(), s.store.Users().Create(s.ctx, &entity.User{ID: sellerA, Nombre: "Ana", Email: "ana@x.com"}))
	require.NoError(s.T(), s.store.Clients().Create(s.ctx, &entity.Client{ID: "c1", Nombre: "Cli", Email: "c1@x.com", Vendedor: sellerA}))
	require.NoError(s.T(), s.store.Clients().Create(s.ctx, &entity.Client{ID: "c2", Nombre: "Otro", Email: "c2@x.com", Vendedor: sellerA}))
	s.product("p1", "Lápiz", 5)
	s.product("p2", "Cuaderno", 2)
}

func (s *OrderUseCaseSuite) product(id, nombre string, existencia int) {
	require.NoError(s.T(), s.store.Products().Create(s.ctx, &entity.Product{
		ID: id, Nombre: nombre, Existencia: existencia, Precio: decimal.NewFromInt(1500), Creado: time.Now(),
	}))
}

func (s *OrderUseCaseSuite) stock(id string) int {
	p, err := s.store.Products().GetByID(s.ctx, id)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), p)
	return p.Existencia
}

func (s *OrderUseCaseSuite) create(items ...dto.OrderItemRequest) *dto.OrderResponse {
	o, err := s.uc.Create(s.ctx, sellerA, dto.CreateOrderRequest{
		Pedido: items, Total: decimal.NewFromInt(4500), Cliente: "c1",
	})
	require.NoError(s.T(), err)
	return o
}

func item(id string, cantidad int) dto.OrderItemRequest {
	return dto.OrderItemRequest{ProductID: id, Cantidad: cantidad}
}

func (s *OrderUseCaseSuite) TestCreate_DescuentaExistencia() {
	o := s.create(item("p1", 3))

	assert.Equal(s.T(), 2, s.stock("p1"))
	assert.Equal(s.T(), entity.OrderStatusPendiente, o.Estado)
	assert.Equal(s.T(), sellerA, o.Vendedor)
	require.Len(s.T(), o.Pedido, 1)
	assert.Equal(s.T(), "Lápiz", o.Pedido[0].Nombre)
	assert.True(s.T(), decimal.NewFromInt(1500).Equal(o.Pedido[0].Precio))
}

func (s *OrderUseCaseSuite) TestCreate_ExistenciaInsuficienteNoModificaNada() {
	_, err := s.uc.Create(s.ctx, sellerA, dto.CreateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 3), item("p2", 5)}, Cliente: "c1",
	})

	require.ErrorIs(s.T(), err, domain.ErrInsufficientStock)
	assert.EqualError(s.T(), err, "El articulo Cuaderno excede la cantidad disponible")
	assert.Equal(s.T(), 5, s.stock("p1"), "la línea previa no debe quedar descontada")
	assert.Equal(s.T(), 2, s.stock("p2"))
	list, _ := s.uc.List(s.ctx)
	assert.Empty(s.T(), list)
}

func (s *OrderUseCaseSuite) TestCreate_ProductoInexistente() {
	_, err := s.uc.Create(s.ctx, sellerA, dto.CreateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 1), item("nope", 1)}, Cliente: "c1",
	})
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
	assert.Equal(s.T(), 5, s.stock("p1"))
}

func (s *OrderUseCaseSuite) TestCreate_ClienteInexistenteAntesQuePermiso() {
	_, err := s.uc.Create(s.ctx, sellerB, dto.CreateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 1)}, Cliente: "zzz",
	})
	assert.Equal(s.T(), domain.ErrClientNotFound, err)
}

func (s *OrderUseCaseSuite) TestCreate_ClienteDeOtroVendedor() {
	_, err := s.uc.Create(s.ctx, sellerB, dto.CreateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 1)}, Cliente: "c1",
	})
	assert.ErrorIs(s.T(), err, domain.ErrForbidden)
	assert.Equal(s.T(), 5, s.stock("p1"))
}

func (s *OrderUseCaseSuite) TestCreate_SinSesion() {
	_, err := s.uc.Create(s.ctx, "", dto.CreateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 1)}, Cliente: "c1",
	})
	assert.ErrorIs(s.T(), err, domain.ErrForbidden)
}

func (s *OrderUseCaseSuite) TestCreate_EntradaInvalida() {
	_, err := s.uc.Create(s.ctx, sellerA, dto.CreateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 0)}, Cliente: "c1",
	})
	assert.ErrorIs(s.T(), err, domain.ErrInvalidInput)
}

// 5 -> pedido de 3 -> 2 -> actualizar a 4 -> disponible 2+3=5 -> 1.
func (s *OrderUseCaseSuite) TestUpdate_ReconciliaExistencia() {
	o := s.create(item("p1", 3))
	require.Equal(s.T(), 2, s.stock("p1"))

	updated, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 4)},
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, s.stock("p1"))
	assert.Equal(s.T(), 4, updated.Pedido[0].Cantidad)
}

func (s *OrderUseCaseSuite) TestUpdate_MismaCantidadEsIdempotente() {
	o := s.create(item("p1", 3))

	_, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 3)},
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, s.stock("p1"))
}

func (s *OrderUseCaseSuite) TestUpdate_ExcedeDisponibleNoModifica() {
	o := s.create(item("p1", 3))

	_, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 6)},
	})
	require.ErrorIs(s.T(), err, domain.ErrInsufficientStock)
	assert.Equal(s.T(), 2, s.stock("p1"))
	got, err := s.uc.GetByID(s.ctx, sellerA, o.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 3, got.Pedido[0].Cantidad)
}

func (s *OrderUseCaseSuite) TestUpdate_ProductoNuevoYProductoQuitado() {
	o := s.create(item("p1", 3))

	_, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p2", 2)},
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 5, s.stock("p1"), "el producto quitado recupera su cantidad")
	assert.Equal(s.T(), 0, s.stock("p2"))
}

func (s *OrderUseCaseSuite) TestUpdate_CamposSinLineas() {
	o := s.create(item("p1", 1))
	estado := entity.OrderStatusCompletado
	total := decimal.RequireFromString("99.50")
	cliente := "c2"

	updated, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{
		Estado: &estado, Total: &total, Cliente: &cliente,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), estado, updated.Estado)
	assert.True(s.T(), total.Equal(updated.Total))
	assert.Equal(s.T(), "c2", updated.ClienteID)
	assert.Equal(s.T(), 4, s.stock("p1"))
}

func (s *OrderUseCaseSuite) TestUpdate_OrdenDeErrores() {
	cliente := "zzz"
	_, err := s.uc.Update(s.ctx, sellerB, "nope", dto.UpdateOrderRequest{Cliente: &cliente})
	assert.Equal(s.T(), domain.ErrOrderNotFound, err)

	o := s.create(item("p1", 1))
	_, err = s.uc.Update(s.ctx, sellerB, o.ID, dto.UpdateOrderRequest{Cliente: &cliente})
	assert.Equal(s.T(), domain.ErrClientNotFound, err)

	_, err = s.uc.Update(s.ctx, sellerB, o.ID, dto.UpdateOrderRequest{})
	assert.Equal(s.T(), domain.ErrNoCredentials, err)
}

func (s *OrderUseCaseSuite) TestUpdate_ClienteEliminadoPermiteCambiarEstado() {
	o := s.create(item("p1", 1))
	require.NoError(s.T(), s.store.Clients().Delete(s.ctx, "c1"))

	estado := entity.OrderStatusCompletado
	updated, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{Estado: &estado})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), estado, updated.Estado)
	assert.Equal(s.T(), "c1", updated.ClienteID, "sin cliente en la entrada se conserva el actual")
}

func (s *OrderUseCaseSuite) TestUpdate_ClienteDeOtroVendedor() {
	require.NoError(s.T(), s.store.Clients().Create(s.ctx, &entity.Client{ID: "cB", Nombre: "Ajeno", Email: "cb@x.com", Vendedor: sellerB}))
	o := s.create(item("p1", 1))

	cliente := "cB"
	_, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{Cliente: &cliente})
	assert.Equal(s.T(), domain.ErrNoCredentials, err)

	got, err := s.uc.GetByID(s.ctx, sellerA, o.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "c1", got.ClienteID)
}

func (s *OrderUseCaseSuite) TestDelete_DevuelveExistencia() {
	o := s.create(item("p1", 3), item("p2", 2))
	require.Equal(s.T(), 0, s.stock("p2"))

	msg, err := s.uc.Delete(s.ctx, sellerA, o.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Pedido eliminado", msg.Message)
	assert.Equal(s.T(), 5, s.stock("p1"))
	assert.Equal(s.T(), 2, s.stock("p2"))

	_, err = s.uc.GetByID(s.ctx, sellerA, o.ID)
	assert.Equal(s.T(), domain.ErrOrderNotFound, err)
}

func (s *OrderUseCaseSuite) TestDelete_ProductoEliminadoSeOmite() {
	o := s.create(item("p1", 3), item("p2", 1))
	require.NoError(s.T(), s.store.Products().Delete(s.ctx, "p2"))

	_, err := s.uc.Delete(s.ctx, sellerA, o.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 5, s.stock("p1"))
}

func (s *OrderUseCaseSuite) TestDelete_OtroVendedor() {
	o := s.create(item("p1", 3))

	_, err := s.uc.Delete(s.ctx, sellerB, o.ID)
	assert.Equal(s.T(), domain.ErrNoCredentials, err)
	assert.Equal(s.T(), 2, s.stock("p1"))
}

func (s *OrderUseCaseSuite) TestCicloCompletoNetaCero() {
	o := s.create(item("p1", 2), item("p2", 1))
	_, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 4), item("p2", 2)},
	})
	require.NoError(s.T(), err)
	_, err = s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{
		Pedido: []dto.OrderItemRequest{item("p1", 1)},
	})
	require.NoError(s.T(), err)
	_, err = s.uc.Delete(s.ctx, sellerA, o.ID)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 5, s.stock("p1"))
	assert.Equal(s.T(), 2, s.stock("p2"))
}

func (s *OrderUseCaseSuite) TestListados() {
	o := s.create(item("p1", 1))
	estado := entity.OrderStatusCompletado
	_, err := s.uc.Update(s.ctx, sellerA, o.ID, dto.UpdateOrderRequest{Estado: &estado})
	require.NoError(s.T(), err)
	s.create(item("p1", 1))

	bySeller, err := s.uc.ListBySeller(s.ctx, sellerA)
	require.NoError(s.T(), err)
	require.Len(s.T(), bySeller, 2)
	require.NotNil(s.T(), bySeller[0].Cliente)
	assert.Equal(s.T(), "Cli", bySeller[0].Cliente.Nombre)

	done, err := s.uc.ListByStatus(s.ctx, sellerA, entity.OrderStatusCompletado)
	require.NoError(s.T(), err)
	require.Len(s.T(), done, 1)
	assert.Equal(s.T(), o.ID, done[0].ID)

	other, err := s.uc.ListBySeller(s.ctx, sellerB)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), other)

	_, err = s.uc.ListByStatus(s.ctx, sellerA, "otro")
	assert.ErrorIs(s.T(), err, domain.ErrInvalidInput)

	_, err = s.uc.ListBySeller(s.ctx, "")
	assert.ErrorIs(s.T(), err, domain.ErrForbidden)
}

func (s *OrderUseCaseSuite) TestReceipt() {
	o := s.create(item("p1", 1))

	pdf, err := s.uc.Receipt(s.ctx, sellerA, o.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []byte("%PDF"), pdf)
	assert.Equal(s.T(), "Cli", s.renderer.got.Client.Nombre)
	assert.Equal(s.T(), "Ana", s.renderer.got.Seller.Nombre)

	_, err = s.uc.Receipt(s.ctx, sellerB, o.ID)
	assert.ErrorIs(s.T(), err, domain.ErrForbidden)
}
