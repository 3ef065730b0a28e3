package dto_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
)

func TestValidate_RegisterRequest(t *testing.T) {
	err := dto.Validate(dto.RegisterRequest{Nombre: "Ana", Apellido: "P", Email: "no-es-email", Password: "123"})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "email no es un email válido")
	assert.Contains(t, err.Error(), "password debe ser al menos 6")
}

func TestValidate_OrderRequest(t *testing.T) {
	ok := dto.CreateOrderRequest{
		Pedido:  []dto.OrderItemRequest{{ProductID: "p1", Cantidad: 2}},
		Cliente: "c1",
	}
	assert.NoError(t, dto.Validate(ok))

	sinLineas := ok
	sinLineas.Pedido = nil
	assert.Error(t, dto.Validate(sinLineas))

	cantidadCero := ok
	cantidadCero.Pedido = []dto.OrderItemRequest{{ProductID: "p1", Cantidad: 0}}
	assert.Error(t, dto.Validate(cantidadCero))

	estadoMalo := ok
	estadoMalo.Estado = "ENVIADO"
	assert.Error(t, dto.Validate(estadoMalo))
}

func TestValidate_UpdateConCamposAusentes(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.UpdateClientRequest{}))
	assert.NoError(t, dto.Validate(dto.UpdateOrderRequest{}))

	vacio := ""
	assert.Error(t, dto.Validate(dto.UpdateClientRequest{Nombre: &vacio}))
}
