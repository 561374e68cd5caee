package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth"

	configs "github.com/mtpdept/idcard-services/configs"
	config "github.com/mtpdept/idcard-services/internal/idcardsvc/config"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/db"
	handlers "github.com/mtpdept/idcard-services/internal/idcardsvc/handlers"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/media"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/service"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "idcard"

func init() {
	configs.Logging(SERVICE_NAME + "_service")
	configs.LoadEnv(SERVICE_NAME)
}

func main() {
	configs.CreateUniqueInstance(SERVICE_NAME)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// pg connection
	dbpool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.Migrate(ctx, dbpool); err != nil {
		cancel()
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	cancel()
	log.Printf("schema checked/created successfully")

	mediaStore, err := media.NewStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("Failed to init media store: %v", err)
	}

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWTSecret), nil)

	adminStore := store.NewAdminStore(dbpool)
	authService := service.NewAuthService(adminStore, tokenAuth, cfg.SuperadminUser, cfg.SuperadminPass)

	cardStore := store.NewCardStore(dbpool)
	cardService := service.NewCardService(cardStore, mediaStore)

	messageStore := store.NewMessageStore(dbpool)
	messageService := service.NewMessageService(messageStore, mediaStore)

	updateStore := store.NewUpdateStore(dbpool)
	updateService := service.NewUpdateService(updateStore)

	// Setup router
	r := chi.NewRouter()
	c := configs.CORS(cfg.AllowedOrigins)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(configs.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(tokenAuth, authService, cardService, messageService, updateService, mediaStore)
	h.SetRoutes(r)

	// Serve uploaded blobs so returned photo URLs resolve
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
