package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/admin_login"
	bulkCancelHandler "github.com/m04kA/EconLab-ReservationService/internal/api/handlers/bulk_cancel"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/cancel_booking"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/change_pin"
	createBookingHandler "github.com/m04kA/EconLab-ReservationService/internal/api/handlers/create_booking"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/end_study_session"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/export_csv"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/force_cancel_booking"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/get_admin_bookings"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/get_contacts"
	getSeatMapHandler "github.com/m04kA/EconLab-ReservationService/internal/api/handlers/get_seat_map"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/get_settings"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/get_study_rooms"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/get_user_bookings"
	sendNotificationHandler "github.com/m04kA/EconLab-ReservationService/internal/api/handlers/send_notification"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/start_study_session"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/toggle_block"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/update_settings"
	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers/update_study_blocks"
	"github.com/m04kA/EconLab-ReservationService/internal/api/middleware"
	"github.com/m04kA/EconLab-ReservationService/internal/config"
	"github.com/m04kA/EconLab-ReservationService/internal/integrations/webhook"
	"github.com/m04kA/EconLab-ReservationService/internal/jobs"
	bookingsService "github.com/m04kA/EconLab-ReservationService/internal/service/bookings"
	settingsService "github.com/m04kA/EconLab-ReservationService/internal/service/settings"
	studyroomService "github.com/m04kA/EconLab-ReservationService/internal/service/studyroom"
	bulkCancelUC "github.com/m04kA/EconLab-ReservationService/internal/usecase/bulk_cancel"
	createBookingUC "github.com/m04kA/EconLab-ReservationService/internal/usecase/create_booking"
	getSeatMapUC "github.com/m04kA/EconLab-ReservationService/internal/usecase/get_seat_map"
	sendNotificationUC "github.com/m04kA/EconLab-ReservationService/internal/usecase/send_notification"
	"github.com/m04kA/EconLab-ReservationService/pkg/logger"
	"github.com/m04kA/EconLab-ReservationService/pkg/metrics"
)

func main() {
	// .env необязателен, переменные окружения могут прийти из оркестратора
	_ = godotenv.Load()

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

	log.Info("Starting EconLab-ReservationService...")

	location, err := cfg.Lab.Location()
	if err != nil {
		log.Fatal("Invalid lab timezone %q: %v", cfg.Lab.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем хранилище
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	st, err := openStore(startupCtx, cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Backend, err)
	}
	log.Info("Storage backend %s ready", cfg.Storage.Backend)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(st.bookings, metricsCollector, log)
	settingsSvc := settingsService.NewService(st.settings, bookingSvc, cfg.Lab.DefaultPin, log)
	studySvc := studyroomService.NewService(st.sessions, settingsSvc, location, metricsCollector, log)

	// Загружаем состояние
	if err := settingsSvc.Load(startupCtx); err != nil {
		log.Fatal("Failed to load settings: %v", err)
	}
	if err := bookingSvc.Load(startupCtx); err != nil {
		log.Fatal("Failed to load bookings: %v", err)
	}
	if err := studySvc.Load(startupCtx); err != nil {
		log.Fatal("Failed to load study sessions: %v", err)
	}

	// Бронирования могли остаться от старых правил блокировки
	purged, err := bookingSvc.PurgeBlocked(startupCtx, settingsSvc.BookingRules())
	if err != nil {
		log.Error("Startup purge failed: %v", err)
	} else if purged > 0 {
		log.Info("Startup purge removed %d blocked bookings", purged)
	}

	// Фоновая очистка истекших сессий
	sweeper := jobs.NewSessionExpiryJob(studySvc, &jobs.SweeperConfig{
		Interval: time.Duration(cfg.StudyRoom.SweepIntervalSeconds) * time.Second,
	}, log)
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	sweeper.Start(sweeperCtx)

	// Интеграции и use cases
	webhookClient := webhook.NewClient(time.Duration(cfg.Webhook.Timeout)*time.Second, metricsCollector, log)

	createBookingUseCase := createBookingUC.NewUseCase(bookingSvc, settingsSvc, location, log)
	getSeatMapUseCase := getSeatMapUC.NewUseCase(bookingSvc, settingsSvc, location, log)
	bulkCancelUseCase := bulkCancelUC.NewUseCase(bookingSvc, settingsSvc, webhookClient, log)
	sendNotificationUseCase := sendNotificationUC.NewUseCase(bookingSvc, settingsSvc, webhookClient, log)

	// Инициализируем handlers
	getSettings := get_settings.NewHandler(settingsSvc)
	getAdminSettings := get_settings.NewAdminHandler(settingsSvc)
	getSeatMap := getSeatMapHandler.NewHandler(getSeatMapUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := get_user_bookings.NewHandler(bookingSvc, log)
	cancelBooking := cancel_booking.NewHandler(bookingSvc, log)
	getStudyRooms := get_study_rooms.NewHandler(studySvc)
	startStudySession := start_study_session.NewHandler(studySvc, log)
	endStudySession := end_study_session.NewHandler(studySvc, log)

	adminLogin := admin_login.NewHandler(settingsSvc, log)
	changePin := change_pin.NewHandler(settingsSvc, log)
	getAdminBookings := get_admin_bookings.NewHandler(bookingSvc, log)
	forceCancelBooking := force_cancel_booking.NewHandler(bookingSvc, log)
	bulkCancel := bulkCancelHandler.NewHandler(bulkCancelUseCase, log)
	updateSettings := update_settings.NewHandler(settingsSvc, log)
	toggleWeekday := toggle_block.NewWeekdayHandler(settingsSvc, log)
	toggleSlot := toggle_block.NewSlotHandler(settingsSvc, log)
	updateStudyBlocks := update_study_blocks.NewHandler(settingsSvc, log)
	adminEndSession := end_study_session.NewAdminHandler(studySvc, log)
	getContacts := get_contacts.NewHandler(bookingSvc, log)
	sendNotification := sendNotificationHandler.NewHandler(sendNotificationUseCase, log)
	exportCSV := export_csv.NewHandler(bookingSvc, studySvc, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimit.Enabled {
		api.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Limit)
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/seats", getSeatMap.Handle).Methods(http.MethodGet)

	// --- Бронирования лаборатории ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Студии ---
	api.HandleFunc("/study-rooms", getStudyRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/study-rooms/sessions", startStudySession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/study-rooms/sessions/{sessionId}", endStudySession.Handle).Methods(http.MethodDelete)

	// Вход проверяет PIN из тела, остальные admin маршруты из заголовка
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-PIN header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(settingsSvc, log))

	admin.HandleFunc("/pin", changePin.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/settings", getAdminSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/blocks/weekdays/{weekday}", toggleWeekday.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocks/slots/{hour}", toggleSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/study-blocks", updateStudyBlocks.Handle).Methods(http.MethodPut)

	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/bulk-cancel", bulkCancel.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", forceCancelBooking.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/study-rooms/sessions", getStudyRooms.HandleAdmin).Methods(http.MethodGet)
	admin.HandleFunc("/study-rooms/sessions/{sessionId}", adminEndSession.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/contacts", getContacts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/notifications", sendNotification.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/export/bookings.csv", exportCSV.HandleBookings).Methods(http.MethodGet)
	admin.HandleFunc("/export/sessions.csv", exportCSV.HandleSessions).Methods(http.MethodGet)

	// CORS для фронтенда на другом origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.AdminPinHeader},
		ExposedHeaders: []string{"Content-Disposition"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	stopSweeper()
	sweeper.Stop()
	log.Info("Session sweeper stopped")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := st.close(); err != nil {
		log.Error("Failed to close storage: %v", err)
	}

	log.Info("Server stopped gracefully")
}
