package main

import (
	"database/sql"
	"net/http"
	"time"

	"pedidos-be/internal/auth"
	"pedidos-be/internal/client"
	"pedidos-be/internal/config"
	"pedidos-be/internal/db"
	"pedidos-be/internal/graph"
	"pedidos-be/internal/inventory"
	"pedidos-be/internal/logger"
	"pedidos-be/internal/metrics"
	"pedidos-be/internal/middleware"
	"pedidos-be/internal/order"
	"pedidos-be/internal/product"
	"pedidos-be/internal/transport"
	"pedidos-be/internal/user"

	"github.com/99designs/gqlgen/graphql/playground"
	"go.uber.org/zap"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(addr string, handler http.Handler) error {
		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	addr := ":" + cfg.AppPort
	logger.L().Info("GraphQL server running",
		zap.String("addr", addr),
		zap.Bool("playground", !cfg.IsProduction()),
	)
	return startServerFunc(addr, newServer(cfg, database))
}

// newServer wires repositories, services and the middleware chain:
// request id, access log, CORS, HTTP context, auth, rate limit, GraphQL.
func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	tokens := auth.NewTokenService(cfg.JWTSecret)

	productRepo := product.NewRepository(database)
	clientRepo := client.NewRepository(database)

	resolver := &graph.Resolver{
		UserSvc:    user.NewService(user.NewRepository(database), tokens, cfg.TokenTTL),
		ProductSvc: product.NewService(productRepo),
		ClientSvc:  client.NewService(clientRepo),
		OrderSvc: order.NewService(
			order.NewRepository(database),
			clientRepo,
			inventory.NewService(productRepo),
			db.NewTxRunner(database),
		),
		TokenTTL:     cfg.TokenTTL,
		SecureCookie: cfg.IsProduction(),
	}

	gql := graph.NewHandler(graph.NewSchema(resolver), !cfg.IsProduction())
	limiter := middleware.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	query := transport.Middleware(
		middleware.Auth(tokens)(
			limiter.Middleware(gql),
		),
	)

	router := setupRouter(query, !cfg.IsProduction())

	return logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.CORS(cfg.CORSOrigin)(router),
		),
	)
}

func setupRouter(query http.Handler, withPlayground bool) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/query", query)
	mux.Handle("/metrics", metrics.Handler())

	if withPlayground {
		mux.Handle("/", playground.Handler("GraphQL Playground", "/query"))
	}

	return mux
}
