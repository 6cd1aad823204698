// Command wordgen manages daily words from the command line: generate a word
// for a date, or list everything generated so far.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/justjelku/wordle-clone/internal/ai"
	"github.com/justjelku/wordle-clone/internal/config"
	"github.com/justjelku/wordle-clone/internal/database"
	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/repository"
	"github.com/justjelku/wordle-clone/internal/service"
	"github.com/justjelku/wordle-clone/internal/validation"
)

func main() {
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	generateDate := generateCmd.String("date", "", "Date to generate for, YYYY-MM-DD (default: today)")
	generateCategory := generateCmd.String("category", "", "Word category (default: random)")

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	wordRepo := repository.NewDailyWordRepository(db)

	switch os.Args[1] {
	case "generate":
		generateCmd.Parse(os.Args[2:])
		handleGenerate(cfg, wordRepo, *generateDate, *generateCategory)

	case "list":
		listCmd.Parse(os.Args[2:])
		handleList(wordRepo)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleGenerate(cfg *config.Config, wordRepo *repository.DailyWordRepository, date, category string) {
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required for word generation")
	}

	if date == "" {
		date = models.Today()
	} else if err := validation.ValidateDate(date); err != nil {
		log.Fatalf("Invalid date: %v", err)
	}

	cat := models.Category(category)
	if category == "" {
		cat = models.Categories[rand.Intn(len(models.Categories))]
	} else if !models.IsValidCategory(cat) {
		log.Fatalf("Unknown category %q; valid categories: %v", category, models.Categories)
	}

	client := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	wordService := service.NewWordService(wordRepo, client)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	word, err := wordService.GenerateForDate(ctx, date, cat)
	if err != nil {
		log.Fatalf("Failed to generate word: %v", err)
	}
	fmt.Printf("%s  %s  (%s)\n", word.Date, word.Word, word.Category)
}

func handleList(wordRepo *repository.DailyWordRepository) {
	words, err := wordRepo.ListUsedWords()
	if err != nil {
		log.Fatalf("Failed to list words: %v", err)
	}
	if len(words) == 0 {
		fmt.Println("No words generated yet")
		return
	}
	for _, w := range words {
		fmt.Println(w)
	}
}

func printUsage() {
	fmt.Println("Usage: wordgen <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate   Generate and store a daily word")
	fmt.Println("             -date YYYY-MM-DD   target date (default: today)")
	fmt.Println("             -category NAME     word category (default: random)")
	fmt.Println("  list       List every word generated so far")
}
