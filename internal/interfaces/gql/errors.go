package gql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/jhoicas/pedidos-api/internal/domain"
)

// Códigos expuestos en extensions.code.
const (
	CodeNotFound          = "NOT_FOUND"
	CodePermissionDenied  = "PERMISSION_DENIED"
	CodeConflict          = "CONFLICT"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidCredential = "INVALID_CREDENTIAL"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInternal          = "INTERNAL"
)

var codes = map[error]string{
	domain.ErrNotFound:          CodeNotFound,
	domain.ErrForbidden:         CodePermissionDenied,
	domain.ErrConflict:          CodeConflict,
	domain.ErrInsufficientStock: CodeInsufficientStock,
	domain.ErrUnauthorized:      CodeInvalidCredential,
	domain.ErrInvalidInput:      CodeInvalidInput,
}

// codedError error de resolver con extensions.code (graphql-go lo detecta por Extensions()).
type codedError struct {
	message string
	code    string
}

func (e *codedError) Error() string { return e.message }

func (e *codedError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// fail traduce un error de dominio al error GraphQL. Los errores no tipados se registran
// y se devuelven como INTERNAL sin detalles.
func (r *Resolver) fail(p graphql.ResolveParams, err error) error {
	code, ok := codes[domain.KindOf(err)]
	if !ok {
		r.log.Error().Err(err).Str("field", p.Info.FieldName).Msg("resolver")
		return &codedError{message: "error interno", code: CodeInternal}
	}
	msg := domain.KindOf(err).Error()
	var de *domain.Error
	if errors.As(err, &de) {
		msg = de.Message
	}
	return &codedError{message: msg, code: code}
}
