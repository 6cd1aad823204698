package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/justjelku/wordle-clone/internal/ai"
	"github.com/justjelku/wordle-clone/internal/config"
	"github.com/justjelku/wordle-clone/internal/database"
	"github.com/justjelku/wordle-clone/internal/game"
	"github.com/justjelku/wordle-clone/internal/handlers"
	"github.com/justjelku/wordle-clone/internal/repository"
	"github.com/justjelku/wordle-clone/internal/scheduler"
	"github.com/justjelku/wordle-clone/internal/security"
	"github.com/justjelku/wordle-clone/internal/service"
	"github.com/justjelku/wordle-clone/internal/words"
)

func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg := config.Load()

	users, dailyWords, gameRecords, cleanup, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	var wordGen service.WordGenerator
	var nameGen service.UsernameGenerator
	if cfg.GeminiAPIKey != "" {
		client := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		wordGen = client
		nameGen = client
	} else {
		log.Println("Warning: GEMINI_API_KEY not set, word generation disabled")
	}

	dictionary := words.NewDictionary()
	tokens := security.NewTokenManager(cfg.TokenSecret, cfg.TokenDuration)
	rateLimiter := security.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	wordService := service.NewWordService(dailyWords, wordGen)
	gameService := service.NewGameService(gameRecords, wordService, dictionary, game.ScorerFor(cfg.StrictScoring))
	statsService := service.NewStatsService(users, gameRecords)
	userService := service.NewUserService(users, nameGen, tokens)

	middleware := handlers.NewMiddleware(rateLimiter, tokens)
	wordHandler := handlers.NewWordHandler(wordService, gameService, dictionary)
	userHandler := handlers.NewUserHandler(userService, gameService, statsService)
	gameHandler := handlers.NewGameHandler(gameService)
	statsHandler := handlers.NewStatsHandler(statsService)

	mux := http.NewServeMux()

	// Word routes
	mux.HandleFunc("GET /api/daily-word", middleware.WithPlayer(wordHandler.GetDailyWord))
	mux.HandleFunc("POST /api/generate-word", middleware.RateLimit(wordHandler.GenerateWord))
	mux.HandleFunc("POST /api/validate-word", wordHandler.ValidateWord)

	// User routes
	mux.HandleFunc("POST /api/users", middleware.RateLimit(userHandler.Signup))
	mux.HandleFunc("GET /api/users/by-username/{username}", userHandler.GetByUsername)
	mux.HandleFunc("GET /api/users/{userId}/stats", userHandler.GetStats)
	mux.HandleFunc("GET /api/users/{userId}/completion", userHandler.GetCompletion)
	mux.HandleFunc("POST /api/users/generate-username", middleware.RateLimit(userHandler.SuggestUsername))

	// Game routes
	mux.HandleFunc("POST /api/game/guess", middleware.RateLimit(middleware.WithPlayer(gameHandler.SubmitGuess)))
	mux.HandleFunc("GET /api/game/state", middleware.WithPlayer(gameHandler.GetState))

	// Stats routes
	mux.HandleFunc("GET /api/leaderboard", statsHandler.GetLeaderboard)
	mux.HandleFunc("GET /api/top-patterns/{date}", statsHandler.GetTopPatterns)

	handler := middleware.Logging(mux)

	// Pre-generate the daily word at midnight UTC
	var sched *scheduler.Scheduler
	if wordGen != nil {
		sched = scheduler.New(wordService)
		sched.Start()
		defer sched.Stop()
	}

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// buildStores selects the storage backend. DB_TYPE=memory runs without a
// database; anything else opens a SQL connection and runs migrations.
func buildStores(cfg *config.Config) (repository.UserStore, repository.DailyWordStore, repository.GameRecordStore, func(), error) {
	if cfg.DatabaseType == "memory" {
		log.Println("Using in-memory storage (data is lost on restart)")
		store := repository.NewMemoryStore()
		return store, store, store, func() {}, nil
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, nil, nil, nil, err
	}
	log.Println("Migrations completed successfully")

	cleanup := func() { db.Close() }
	return repository.NewUserRepository(db), repository.NewDailyWordRepository(db), repository.NewGameRecordRepository(db), cleanup, nil
}
