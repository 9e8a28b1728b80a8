package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"couple-space-backend/internal/config"
	"couple-space-backend/internal/db"
	"couple-space-backend/internal/handlers"
	"couple-space-backend/internal/middleware"
	"couple-space-backend/internal/repository"
	"couple-space-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	_ = godotenv.Load() // allow .env for local runs

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Log.Level)

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	if err := db.RunMigrations(context.Background(), pool, cfg.Database.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	coupleRepo := repository.NewCoupleRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	diaryRepo := repository.NewDiaryRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	wishlistRepo := repository.NewWishlistRepository(pool)
	challengeRepo := repository.NewChallengeRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)

	// Initialize services
	userService := services.NewUserService(userRepo, cfg.JWT.Secret)
	pairingService := services.NewPairingService(coupleRepo, userRepo, userService)
	activityService := services.NewActivityService(activityRepo)
	questionService := services.NewQuestionService(questionRepo)

	// Seed global catalogs on first run
	if err := activityService.EnsureDefaultCatalog(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed activity catalog")
	}
	if err := questionService.EnsureDefaultQuestions(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed question catalog")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, pairingService)
	activityHandler := handlers.NewActivityHandler(activityService)
	messageHandler := handlers.NewMessageHandler(messageRepo)
	diaryHandler := handlers.NewDiaryHandler(diaryRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)
	wishlistHandler := handlers.NewWishlistHandler(wishlistRepo)
	challengeHandler := handlers.NewChallengeHandler(challengeRepo)
	galleryHandler := handlers.NewGalleryHandler(galleryRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Setup router
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/join", authHandler.Join)
		r.Post("/auth/signin", authHandler.SignIn)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(userService))
			r.Post("/auth/signout", authHandler.SignOut)
			r.Get("/me", authHandler.Me)
			r.Patch("/me", authHandler.UpdateMe)

			// Couple-scoped routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCouple(userService))
				r.Get("/couple", authHandler.GetCouple)
				r.Patch("/couple", authHandler.UpdateCouple)

				r.Get("/activities", activityHandler.ListActivities)
				r.Get("/activities/random", activityHandler.RandomActivity)
				r.Get("/couple/activities", activityHandler.ListCoupleActivities)
				r.Post("/couple/activities", activityHandler.AddCoupleActivity)
				r.Patch("/couple/activities/{id}", activityHandler.UpdateCoupleActivity)

				r.Get("/messages", messageHandler.ListMessages)
				r.Post("/messages", messageHandler.SendMessage)

				r.Get("/diary", diaryHandler.ListEntries)
				r.Post("/diary", diaryHandler.CreateEntry)

				r.Get("/events", eventHandler.ListEvents)
				r.Post("/events", eventHandler.CreateEvent)
				r.Delete("/events/{id}", eventHandler.DeleteEvent)

				r.Get("/wishlist", wishlistHandler.ListItems)
				r.Post("/wishlist", wishlistHandler.CreateItem)
				r.Patch("/wishlist/{id}", wishlistHandler.CompleteItem)
				r.Delete("/wishlist/{id}", wishlistHandler.DeleteItem)

				r.Get("/challenges", challengeHandler.ListChallenges)
				r.Post("/challenges", challengeHandler.CreateChallenge)
				r.Patch("/challenges/{id}", challengeHandler.UpdateChallenge)

				r.Get("/gallery", galleryHandler.ListItems)
				r.Post("/gallery", galleryHandler.CreateItem)
				r.Patch("/gallery/{id}", galleryHandler.SetFavorite)
				r.Delete("/gallery/{id}", galleryHandler.DeleteItem)

				r.Get("/daily-question", questionHandler.GetDailyQuestion)
				r.Post("/daily-question", questionHandler.AnswerDailyQuestion)
			})
		})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
