package domain

import "errors"

// Tipos de error de dominio (sin dependencias externas).
// Se comparan con errors.Is; el mensaje legible para el cliente lo lleva *Error.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnauthorized      = errors.New("credenciales inválidas")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInternal          = errors.New("error interno")
)

// Error asocia un tipo de error de dominio con el mensaje que ve el cliente.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap permite errors.Is(err, domain.ErrNotFound).
func (e *Error) Unwrap() error { return e.Kind }

// NewError construye un error de dominio con mensaje propio.
func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Mensajes usados por más de un caso de uso.
var (
	ErrUserNotFound    = NewError(ErrNotFound, "El usuario no existe")
	ErrProductNotFound = NewError(ErrNotFound, "El producto no existe")
	ErrClientNotFound  = NewError(ErrNotFound, "El cliente no existe")
	ErrOrderNotFound   = NewError(ErrNotFound, "El pedido no existe")
	ErrNoCredentials   = NewError(ErrForbidden, "No tienes las credenciales")
)

// KindOf devuelve el tipo de dominio de err, o ErrInternal si no es un error conocido.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrNotFound, ErrForbidden, ErrConflict, ErrInsufficientStock,
		ErrUnauthorized, ErrInvalidInput,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrInternal
}
