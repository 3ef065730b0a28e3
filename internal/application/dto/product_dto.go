package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada de nuevoProducto.
type CreateProductRequest struct {
	Nombre     string          `json:"nombre" validate:"required,max=200"`
	Existencia int             `json:"existencia" validate:"gte=0"`
	Precio     decimal.Decimal `json:"precio"`
}

// UpdateProductRequest entrada de actualizarProducto; solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Nombre     *string          `json:"nombre" validate:"omitnil,min=1,max=200"`
	Existencia *int             `json:"existencia" validate:"omitnil,gte=0"`
	Precio     *decimal.Decimal `json:"precio"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Nombre     string          `json:"nombre"`
	Existencia int             `json:"existencia"`
	Precio     decimal.Decimal `json:"precio"`
	Creado     time.Time       `json:"creado"`
}
