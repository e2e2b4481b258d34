package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/taper/internal/cli"
	"github.com/alexanderramin/taper/internal/db"
	"github.com/alexanderramin/taper/internal/intelligence"
	"github.com/alexanderramin/taper/internal/llm"
	"github.com/alexanderramin/taper/internal/repository"
	"github.com/alexanderramin/taper/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best effort; the API key usually lives in a local .env during
	// development.
	_ = godotenv.Load()

	// Plain output when piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Determine DB path: env var or default ~/.taper/taper.db
	dbPath := os.Getenv("TAPER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".taper", "taper.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	stateRepo := repository.NewSQLiteStateRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewAnthropicClient(llmCfg, llmObserver)
	generator := intelligence.NewWeekGenerator(client)

	var svcObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if llmCfg.LogCalls {
		svcObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Plans: service.NewPlanService(stateRepo, uow, generator, svcObserver),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
