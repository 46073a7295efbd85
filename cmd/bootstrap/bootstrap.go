package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-booking-api/config"
	deliveryHttp "clinic-booking-api/internal/delivery/http"
	"clinic-booking-api/internal/delivery/http/handler"
	"clinic-booking-api/internal/delivery/http/middleware"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/infrastructure/cache"
	"clinic-booking-api/internal/infrastructure/database"
	"clinic-booking-api/internal/integrations/mailer"
	"clinic-booking-api/internal/integrations/whatsapp"
	"clinic-booking-api/internal/repository"
	"clinic-booking-api/internal/service"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/jwt"
	"clinic-booking-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	clientRepo := repository.NewClientRepository()
	locationRepo := repository.NewLocationRepository()
	procedureRepo := repository.NewProcedureRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	settingRepo := repository.NewSettingRepository()
	templateRepo := repository.NewTemplateRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	settingsSource := repository.NewSettingsSource(db, settingRepo)
	calendarService := service.NewCalendarService(settingsSource, log)
	packageTracker := service.NewPackageTracker(log)
	templateResolver := service.NewTemplateResolver(calendarService)

	// Initialize outbound senders
	whatsappClient := whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.APIToken, cfg.WhatsApp.Timeout, log)
	smtpMailer := mailer.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, log)
	senders := map[entity.MessageChannel]usecase.MessageSender{
		entity.ChannelWhatsApp: whatsappClient,
		entity.ChannelEmail:    smtpMailer,
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, appointmentRepo, templateRepo, templateResolver, senders)
	bookingUsecase := usecase.NewBookingUsecase(db, log, clientRepo, procedureRepo, locationRepo, appointmentRepo, calendarService, notificationUsecase)
	agendaUsecase := usecase.NewAgendaUsecase(db, log, appointmentRepo, calendarService, packageTracker)
	locationUsecase := usecase.NewLocationUsecase(db, log, locationRepo, calendarService)
	settingsUsecase := usecase.NewSettingsUsecase(log, calendarService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	agendaHandler := handler.NewAgendaHandler(agendaUsecase, customValidator)
	locationHandler := handler.NewLocationHandler(locationUsecase, customValidator)
	settingsHandler := handler.NewSettingsHandler(settingsUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, bookingHandler, agendaHandler, locationHandler, settingsHandler, notificationHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
