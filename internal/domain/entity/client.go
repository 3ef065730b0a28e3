package entity

import "time"

// Client representa un cliente de un vendedor. Vendedor se fija al crear y no cambia.
type Client struct {
	ID       string
	Nombre   string
	Apellido string
	Empresa  string
	Email    string
	Telefono string
	Vendedor string
	Creado   time.Time
}

// OwnedBy indica si el cliente pertenece al vendedor dado.
func (c *Client) OwnedBy(sellerID string) bool {
	return sellerID != "" && c.Vendedor == sellerID
}
