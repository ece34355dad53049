package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/cancel_booking"
	confirmDeskBookingHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/confirm_desk_booking"
	createBookingHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/create_booking"
	createDeskHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/create_desk"
	createUserHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/create_user"
	getDesksHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/get_desks"
	getNotificationsHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/get_notifications"
	getParkingAvailabilityHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/get_parking_availability"
	getUpcomingBookingsHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/get_upcoming_bookings"
	getUsersHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/get_users"
	getWeekBookingsHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/get_week_bookings"
	healthHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/health"
	markNotificationReadHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/mark_notification_read"
	signinHandler "github.com/inalogystics/DeskBookingService/internal/api/handlers/signin"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	"github.com/inalogystics/DeskBookingService/internal/config"
	deskRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/desk"
	deskBookingRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/deskbooking"
	notificationRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/notification"
	parkingRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/parking"
	userRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/user"
	identityClient "github.com/inalogystics/DeskBookingService/internal/integrations/identity"
	bookingsService "github.com/inalogystics/DeskBookingService/internal/service/bookings"
	desksService "github.com/inalogystics/DeskBookingService/internal/service/desks"
	notificationsService "github.com/inalogystics/DeskBookingService/internal/service/notifications"
	parkingService "github.com/inalogystics/DeskBookingService/internal/service/parking"
	usersService "github.com/inalogystics/DeskBookingService/internal/service/users"
	createBookingUC "github.com/inalogystics/DeskBookingService/internal/usecase/create_booking"
	getDeskAvailabilityUC "github.com/inalogystics/DeskBookingService/internal/usecase/get_desk_availability"
	"github.com/inalogystics/DeskBookingService/pkg/dbmetrics"
	"github.com/inalogystics/DeskBookingService/pkg/logger"
	"github.com/inalogystics/DeskBookingService/pkg/metrics"
	"github.com/inalogystics/DeskBookingService/pkg/simpletxmanager"
	"github.com/inalogystics/DeskBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DeskBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент провайдера идентификации
	identity := identityClient.NewClient(
		cfg.Auth.UserinfoURL,
		time.Duration(cfg.Auth.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (userinfo=%s timeout=%ds)", cfg.Auth.UserinfoURL, cfg.Auth.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		deskRepository         *deskRepo.Repository
		deskBookingRepository  *deskBookingRepo.Repository
		parkingRepository      *parkingRepo.Repository
		userRepository         *userRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		deskRepository = deskRepo.NewRepository(wrappedDB)
		deskBookingRepository = deskBookingRepo.NewRepository(wrappedDB)
		parkingRepository = parkingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		deskRepository = deskRepo.NewRepository(db)
		deskBookingRepository = deskBookingRepo.NewRepository(db)
		parkingRepository = parkingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	deskSvc := desksService.NewService(deskRepository, log)
	parkingSvc := parkingService.NewService(parkingRepository, log)
	userSvc := usersService.NewService(userRepository, notificationRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, userRepository, log)
	bookingSvc := bookingsService.NewService(
		deskBookingRepository,
		parkingRepository,
		deskRepository,
		userRepository,
		notificationRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		deskRepository,
		deskBookingRepository,
		userRepository,
		parkingSvc,
		txMgr,
		log,
	)
	getDeskAvailabilityUseCase := getDeskAvailabilityUC.NewUseCase(
		deskRepository,
		deskBookingRepository,
		log,
	)

	// Инициализируем handlers
	signIn := signinHandler.NewHandler(identity, userSvc,
		[]byte(cfg.Auth.JWTSecret), time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute, log)
	getDesks := getDesksHandler.NewHandler(getDeskAvailabilityUseCase, log)
	createDesk := createDeskHandler.NewHandler(deskSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmDeskBooking := confirmDeskBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getWeekBookings := getWeekBookingsHandler.NewHandler(bookingSvc, log)
	getUpcomingBookings := getUpcomingBookingsHandler.NewHandler(bookingSvc, log)
	getParkingAvailability := getParkingAvailabilityHandler.NewHandler(parkingSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	createUser := createUserHandler.NewHandler(userSvc, log)
	getUsers := getUsersHandler.NewHandler(userSvc, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Обмен токена провайдера на сессию сервиса
	api.HandleFunc("/auth/session", signIn.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret), log))

	// --- Столы ---
	protected.HandleFunc("/desks", getDesks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/desks", createDesk.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/desk", confirmDeskBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/user", getWeekBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/upcoming", getUpcomingBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Парковка ---
	protected.HandleFunc("/parking-availability", getParkingAvailability.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", markNotificationRead.HandleAll).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.HandleOne).Methods(http.MethodPatch)

	// --- Пользователи ---
	protected.HandleFunc("/users", getUsers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
