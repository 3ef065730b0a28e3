package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// Existencia solo la descuentan o devuelven los pedidos; nunca es negativa.
type Product struct {
	ID         string
	Nombre     string
	Existencia int
	Precio     decimal.Decimal
	Creado     time.Time
}

// HasStock indica si hay existencia suficiente para la cantidad pedida.
func (p *Product) HasStock(cantidad int) bool {
	return p.Existencia >= cantidad
}
