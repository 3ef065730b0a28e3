package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/order"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/pedidos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pedidos-api/internal/interfaces/gql"
	httpRouter "github.com/jhoicas/pedidos-api/internal/interfaces/http"
	"github.com/jhoicas/pedidos-api/pkg/config"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// storage agrupa los repositorios de un backend (PostgreSQL o memoria).
type storage struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	clients   repository.ClientRepository
	orders    repository.OrderRepository
	analytics repository.AnalyticsRepository
	txRunner  order.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Driver).
		Msg("iniciando aplicación")

	store, err := openStorage(context.Background(), cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer store.close()

	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(store.products)
	clientUC := usecase.NewClientUseCase(store.clients)
	analyticsUC := usecase.NewAnalyticsUseCase(store.analytics)

	// PDF: comprobante del pedido
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orderUC := order.NewOrderUseCase(store.txRunner, store.orders, store.clients, store.users, pdfGenerator)

	schema, err := gql.NewSchema(gql.NewResolver(authUC, productUC, clientUC, orderUC, analyticsUC, log))
	if err != nil {
		log.Fatal().Err(err).Msg("esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:  authUC,
		OrderUC: orderUC,
		Schema:  schema,
		Metrics: httpRouter.NewMetrics("pedidos"),
		Log:     log,
		AppName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("GraphQL disponible en /graphql")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStorage(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*storage, error) {
	if cfg.InMemory() {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		mem := memory.NewStore()
		return &storage{
			users:     mem.Users(),
			products:  mem.Products(),
			clients:   mem.Clients(),
			orders:    mem.Orders(),
			analytics: mem.Analytics(),
			txRunner:  mem.TxRunner(),
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Migrate {
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	return &storage{
		users:     postgres.NewUserRepository(pool),
		products:  postgres.NewProductRepository(pool),
		clients:   postgres.NewClientRepository(pool),
		orders:    postgres.NewOrderRepository(pool),
		analytics: postgres.NewAnalyticsRepository(pool),
		txRunner:  postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}
