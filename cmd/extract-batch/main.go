package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biasharaledger/docextract/gen/ent"
	"github.com/biasharaledger/docextract/internal/batch"
	"github.com/biasharaledger/docextract/internal/common"
	"github.com/biasharaledger/docextract/internal/export"
	"github.com/biasharaledger/docextract/internal/extraction"
	"github.com/biasharaledger/docextract/internal/ingest"
	"github.com/biasharaledger/docextract/internal/llm"
	repo "github.com/biasharaledger/docextract/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem       = flag.Bool("inmem", false, "use in-memory SQLite database")
		companyStr  = flag.String("company", "", "company UUID to process")
		companyName = flag.String("company-name", "", "company name to create or reuse (alternative to --company)")
		configPath  = flag.String("config", "", "extraction rules YAML (defaults to built-ins)")
		dir         = flag.String("dir", "", "directory of extracted-text files to load before processing")
		workers     = flag.Int("workers", 0, "worker pool size override")
		reprocess   = flag.Bool("reprocess", false, "flag completed documents on a stale pattern set for re-extraction")
		out         = flag.String("out", "", "output XLSX file path (optional)")
		fromStr     = flag.String("from", "", "export from date YYYY-MM-DD")
		toStr       = flag.String("to", "", "export to date YYYY-MM-DD")
	)
	flag.Parse()

	if *companyStr == "" && *companyName == "" {
		printError("Error: one of --company or --company-name is required\n")
		os.Exit(1)
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	// Extraction rules: YAML file when given, built-ins otherwise
	path := *configPath
	if path == "" {
		path = cfg.Extraction.ConfigPath
	}
	var (
		rules *extraction.Config
		err   error
	)
	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			rules, err = extraction.LoadConfig(path)
			if err != nil {
				logger.Error("failed to load extraction rules", "path", path, "error", err)
				os.Exit(1)
			}
			logger.Info("extraction rules loaded", "path", path, "pattern_set_version", rules.PatternSetVersion)
		}
	}
	if rules == nil {
		rules = extraction.DefaultConfig()
		logger.Info("using built-in extraction rules", "pattern_set_version", rules.PatternSetVersion)
	}

	// Database: Postgres by default, in-memory SQLite for local runs
	var (
		entc *ent.Client
		pool *pgxpool.Pool
	)
	if *inmem {
		entc, err = repo.OpenSQLiteInMemory(ctx, logger)
	} else {
		if verr := cfg.Validate(); verr != nil {
			logger.Error("invalid configuration", "error", verr)
			os.Exit(1)
		}
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	companiesRepo := repo.NewCompanyRepository(entc, logger)
	store := repo.NewStore(entc, logger)

	var companyID uuid.UUID
	if *companyStr != "" {
		companyID, err = uuid.Parse(*companyStr)
		if err != nil {
			printError("Error: --company must be a UUID: %v\n", err)
			os.Exit(1)
		}
		if _, err := companiesRepo.GetByID(ctx, companyID); err != nil {
			logger.Error("company not found", "company_id", companyID, "error", err)
			os.Exit(1)
		}
	} else {
		company, err := companiesRepo.GetOrCreateByName(ctx, *companyName)
		if err != nil {
			logger.Error("failed to get or create company", "name", *companyName, "error", err)
			os.Exit(1)
		}
		companyID = company.ID
	}
	logger.Info("using company", "company_id", companyID)

	// Optional enrichment client (graceful if not configured)
	var enricher llm.Enricher
	if cfg.LLM.BaseURL != "" {
		enricher = llm.NewClient(llm.Config{
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("enrichment client initialized", "model", cfg.LLM.Model)
	} else {
		logger.Warn("enrichment endpoint not configured, running pattern-only")
	}

	builder := extraction.NewBuilder(rules, enricher, logger)

	if *dir != "" {
		loader := ingest.NewFSLoader(store.DocumentRepository, logger)
		_, stats, err := loader.LoadDirectory(ctx, companyID, *dir)
		if err != nil {
			logger.Error("failed to load directory", "dir", *dir, "error", err)
			os.Exit(1)
		}
		logger.Info("documents loaded",
			"dir", *dir,
			"scanned", stats.Scanned,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"skipped", stats.Skipped,
		)
	}

	if *reprocess {
		n, err := store.FlagForReprocess(ctx, companyID, rules.PatternSetVersion)
		if err != nil {
			logger.Error("failed to flag documents for reprocess", "error", err)
			os.Exit(1)
		}
		logger.Info("stale documents flagged", "count", n)
	}

	opts := batch.Options{
		Workers:         cfg.Batch.Workers,
		PageSize:        cfg.Batch.PageSize,
		MaxAttempts:     cfg.Batch.MaxAttempts,
		BackoffBase:     cfg.Batch.BackoffBase,
		DocumentTimeout: cfg.Batch.DocumentTimeout,
	}
	if *workers > 0 {
		opts.Workers = *workers
	}

	orch := batch.NewOrchestrator(store, builder, rules.PatternSetVersion, opts, logger)
	summary, err := orch.Run(ctx, companyID)
	if err != nil {
		logger.Error("batch run aborted", "error", err)
		os.Exit(1)
	}

	if *out != "" {
		exportService := export.NewService(store.ExtractedDataRepository, logger)
		xlsxBytes, err := exportService.ExportRecordsXLSX(ctx, companyID, from, to)
		if err != nil {
			logger.Error("failed to export records", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("records written", "output_file", *out)
	}

	fmt.Printf("Batch run complete!\n")
	fmt.Printf("- Processed: %d\n", summary.Processed)
	fmt.Printf("- Succeeded: %d\n", summary.Succeeded)
	fmt.Printf("- Failed: %d\n", summary.Failed)
	fmt.Printf("- Dead-lettered: %d\n", summary.DeadLettered)
	fmt.Printf("- Average confidence: %.2f\n", summary.AverageConfidence)
	fmt.Printf("- Elapsed: %s\n", summary.Duration.Round(time.Millisecond))
}
