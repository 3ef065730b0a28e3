package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/order"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC  *auth.AuthUseCase
	OrderUC *order.OrderUseCase
	Schema  graphql.Schema
	Metrics *Metrics
	Log     *logger.Logger
	AppName string
}

// Router registra middlewares y rutas.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// La sesión es opcional en /graphql: cada resolver decide si la exige.
	gqlHandler := NewGraphQLHandler(deps.Schema)
	app.Post("/graphql", SessionMiddleware(deps.AuthUC), gqlHandler.Post)
	app.Get("/graphql", SessionMiddleware(deps.AuthUC), gqlHandler.Get)

	// Rutas protegidas (requieren token)
	protected := app.Group("/api", SessionMiddleware(deps.AuthUC), RequireSession())
	receipts := NewReceiptHandler(deps.OrderUC, deps.Log)
	protected.Get("/pedidos/:id/comprobante", receipts.Get)
}
