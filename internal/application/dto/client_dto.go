package dto

import "time"

// CreateClientRequest entrada de nuevoCliente.
type CreateClientRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Apellido string `json:"apellido" validate:"required,max=100"`
	Empresa  string `json:"empresa" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono" validate:"omitempty,max=30"`
}

// UpdateClientRequest entrada de actualizarCliente; solo se aplican los campos presentes.
type UpdateClientRequest struct {
	Nombre   *string `json:"nombre" validate:"omitnil,min=1,max=100"`
	Apellido *string `json:"apellido" validate:"omitnil,min=1,max=100"`
	Empresa  *string `json:"empresa" validate:"omitnil,min=1,max=200"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Telefono *string `json:"telefono" validate:"omitnil,max=30"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
	Empresa  string    `json:"empresa"`
	Email    string    `json:"email"`
	Telefono string    `json:"telefono"`
	Vendedor string    `json:"vendedor"`
	Creado   time.Time `json:"creado"`
}
