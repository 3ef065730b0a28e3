package dto

import "github.com/shopspring/decimal"

// TopClientResponse entrada de mejoresClientes. Cliente es una lista (vacía si el
// cliente fue eliminado), igual que el resultado de un $lookup.
type TopClientResponse struct {
	Total   decimal.Decimal  `json:"total"`
	Cliente []ClientResponse `json:"cliente"`
}

// TopSellerResponse entrada de mejoresVendedores.
type TopSellerResponse struct {
	Total    decimal.Decimal `json:"total"`
	Vendedor []UserResponse  `json:"vendedor"`
}
