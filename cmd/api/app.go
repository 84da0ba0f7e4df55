package main

import (
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/applenx/shop-api/internal/helpers"
	"github.com/applenx/shop-api/internal/repository"
	"github.com/applenx/shop-api/internal/service"
	"github.com/applenx/shop-api/internal/token"
)

type config struct {
	port            string
	env             string
	shutdownTimeout time.Duration
	allowedOrigins  []string
	jwtSecret       string
	jwtTTL          time.Duration
	db              struct {
		host     string
		port     string
		user     string
		password string
		name     string
	}
}

type application struct {
	config config
	logger *slog.Logger
	db     *sql.DB

	users       *service.UserService
	customers   *service.CustomerService
	categories  *service.CategoryService
	products    *service.ProductService
	orders      *service.OrderService
	redemptions *service.RedemptionService
	tokens      *token.Manager
}

func newApplication() *application {
	cfg := config{}

	cfg.port = helpers.GetEnvAsStr("PORT", "4400")
	cfg.env = helpers.GetEnvAsStr("ENV", "development")
	cfg.shutdownTimeout = helpers.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	cfg.allowedOrigins = strings.Split(
		helpers.GetEnvAsStr("ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	cfg.jwtSecret = helpers.GetEnvAsStr("JWT_SECRET", "")
	cfg.jwtTTL = helpers.GetEnvAsDuration("JWT_TTL", 24*time.Hour)
	cfg.db.host = helpers.GetEnvAsStr("DB_HOST", "postgres")
	cfg.db.port = helpers.GetEnvAsStr("DB_PORT", "5432")
	cfg.db.user = helpers.GetEnvAsStr("DB_USER", "postgres")
	cfg.db.password = helpers.GetEnvAsStr("DB_PASSWORD", "postgres")
	cfg.db.name = helpers.GetEnvAsStr("DB_NAME", "shop")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return &application{
		config: cfg,
		logger: logger,
		tokens: token.NewManager(cfg.jwtSecret, cfg.jwtTTL),
	}
}

// wire attaches the database and builds the service stack over it.
func (app *application) wire(db *sql.DB) {
	app.db = db
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	app.users = service.NewUserService(userRepo, app.tokens)
	app.customers = service.NewCustomerService(repository.NewCustomerRepository(db))
	app.categories = service.NewCategoryService(categoryRepo)
	app.products = service.NewProductService(repository.NewProductRepository(db), categoryRepo)
	app.orders = service.NewOrderService(repository.NewOrderRepository(db))
	app.redemptions = service.NewRedemptionService(repository.NewRedemptionRepository(db))
}
