package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"frontdash/cmd"
	frontdash_http "frontdash/internal/adapters/in/http"
	"frontdash/internal/adapters/out/amqp"
	"frontdash/internal/adapters/out/auth"
	"frontdash/internal/adapters/out/postgres/addressrepo"
	"frontdash/internal/adapters/out/postgres/driverrepo"
	"frontdash/internal/adapters/out/postgres/orderrepo"
	"frontdash/internal/adapters/out/postgres/restaurantrepo"
	"frontdash/internal/jobs"
	"frontdash/internal/pkg/logger"
)

func main() {
	configs := getConfigs()

	zapLogger, err := logger.New(logger.Config{
		Level:       configs.LogLevel,
		Environment: configs.Environment,
		ServiceName: "frontdash",
	})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	notifier, err := amqp.NewNotifier(configs.RabbitMQURL, zapLogger)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer func() {
		_ = notifier.Close()
	}()

	issuer := auth.NewJWTTokenIssuer(configs.JWTSecret, configs.JWTTTL)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		notifier,
		issuer,
		zapLogger,
	)

	jobManager := jobs.NewJobManager(
		app.CreateGetOrdersByStatusQueryHandler(),
		configs.StaleOrderThreshold,
		zapLogger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, zapLogger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),

		JWTSecret: goDotEnvVariable("JWT_SECRET"),
		JWTTTL:    goDotEnvDuration("JWT_TTL", 24*time.Hour),

		StaleOrderThreshold: goDotEnvDuration("STALE_ORDER_THRESHOLD", 45*time.Minute),

		LogLevel:    goDotEnvVariable("LOG_LEVEL"),
		Environment: goDotEnvVariable("APP_ENV"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return d
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.LoginDTO{},
		&restaurantrepo.MenuCategoryDTO{},
		&restaurantrepo.MenuItemDTO{},
		&restaurantrepo.OperatingHourDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&driverrepo.DriverDTO{},
		&addressrepo.AddressDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err = orderrepo.EnsureNumberSequence(gormDB); err != nil {
		log.Fatalf("Error creating order number sequence: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, logger *zap.Logger, port string) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := frontdash_http.NewServer(app.CreateHTTPHandlers())
	server.RegisterRoutes(e, logger, app.TokenIssuer())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
