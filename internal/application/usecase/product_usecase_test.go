package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
)

func newProductUseCase() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewStore().Products())
}

func TestProductUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := newProductUseCase()

	p, err := uc.Create(ctx, dto.CreateProductRequest{Nombre: "Café", Existencia: 10, Precio: decimal.NewFromInt(3000)})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Café", got.Nombre)

	nombre := "Café molido"
	existencia := 7
	upd, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Nombre: &nombre, Existencia: &existencia})
	require.NoError(t, err)
	assert.Equal(t, "Café molido", upd.Nombre)
	assert.Equal(t, 7, upd.Existencia)
	assert.True(t, decimal.NewFromInt(3000).Equal(upd.Precio), "precio no enviado se conserva")

	msg, err := uc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Producto eliminado", msg.Message)

	_, err = uc.GetByID(ctx, p.ID)
	assert.Equal(t, domain.ErrProductNotFound, err)
}

func TestProductUseCase_NoExiste(t *testing.T) {
	ctx := context.Background()
	uc := newProductUseCase()

	_, err := uc.Update(ctx, "nope", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Delete(ctx, "nope")
	assert.EqualError(t, err, "El producto no existe")
}

func TestProductUseCase_Validacion(t *testing.T) {
	ctx := context.Background()
	uc := newProductUseCase()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Nombre: "", Existencia: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Nombre: "x", Existencia: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Nombre: "x", Precio: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Search(t *testing.T) {
	ctx := context.Background()
	uc := newProductUseCase()
	for _, n := range []string{"Café Orgánico", "Azúcar", "Café de Colombia"} {
		_, err := uc.Create(ctx, dto.CreateProductRequest{Nombre: n, Existencia: 1})
		require.NoError(t, err)
	}

	got, err := uc.Search(ctx, "  CAFE ")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = uc.Search(ctx, "azucar")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Azúcar", got[0].Nombre)

	got, err = uc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
