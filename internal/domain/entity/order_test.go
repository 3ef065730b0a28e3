package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

func TestQuantities_SumaRepetidosYConservaOrden(t *testing.T) {
	qty, order := entity.Quantities([]entity.OrderItem{
		{ProductID: "b", Cantidad: 2},
		{ProductID: "a", Cantidad: 1},
		{ProductID: "b", Cantidad: 3},
	})

	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, 5, qty["b"])
	assert.Equal(t, 1, qty["a"])
}

func TestOwnedBy_VendedorVacioNuncaEsDueno(t *testing.T) {
	c := &entity.Client{Vendedor: ""}
	assert.False(t, c.OwnedBy(""))

	o := &entity.Order{Vendedor: "u1"}
	assert.True(t, o.OwnedBy("u1"))
	assert.False(t, o.OwnedBy("u2"))
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus("COMPLETADO"))
	assert.False(t, entity.ValidOrderStatus("completado"))
}
