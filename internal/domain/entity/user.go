package entity

import "time"

// User representa un vendedor registrado. Es dueño de los clientes y pedidos que crea.
type User struct {
	ID           string
	Nombre       string
	Apellido     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Creado       time.Time
}
