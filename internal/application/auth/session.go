package auth

import (
	"context"

	"github.com/jhoicas/pedidos-api/pkg/jwt"
)

// Session identidad del vendedor autenticado, decodificada del token.
type Session = jwt.UserClaims

type sessionKey struct{}

// WithSession devuelve un contexto con la sesión adjunta.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom devuelve la sesión del contexto, o nil si la petición es anónima.
func SessionFrom(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// SellerID devuelve el id del vendedor autenticado, o "" si la petición es anónima.
func SellerID(ctx context.Context) string {
	if s := SessionFrom(ctx); s != nil {
		return s.ID
	}
	return ""
}
