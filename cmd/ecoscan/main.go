package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ecoscan-ai/ecoscan/config"
	"github.com/ecoscan-ai/ecoscan/internal/llm"
	"github.com/ecoscan-ai/ecoscan/internal/pipeline"
	"github.com/ecoscan-ai/ecoscan/internal/scoring"
	"github.com/ecoscan-ai/ecoscan/internal/storage"
)

// maxConcurrentAnalyses bounds parallel pipeline runs in batch mode.
const maxConcurrentAnalyses = 2

const setupInstructions = `
	OLLAMA SETUP REQUIRED
	====================

	The reasoning stage requires Ollama (local LLM service).

	Steps to install and run:
	1. Download from: https://ollama.ai
	2. Install and run Ollama:
	   ollama serve

	3. In another terminal, pull the reasoning model:
	   ollama pull mistral

	4. Ollama will run on http://localhost:11434
`

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	transformFlag := flag.Bool("transform", false, "generate transformation procedure and market price")
	jsonFlag := flag.Bool("json", false, "print results as JSON instead of a report")
	dbFlag := flag.String("db", "", "path to SQLite cache/history database (optional)")
	historyFlag := flag.Int("history", 0, "print the last N analyses from the database and exit")
	verboseFlag := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verboseFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *historyFlag > 0 {
		if *dbFlag == "" {
			fmt.Fprintln(os.Stderr, "-history requires -db")
			os.Exit(2)
		}
		if err := printHistory(*dbFlag, *historyFlag); err != nil {
			log.Fatal().Err(err).Msg("failed to read history")
		}
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ecoscan [-transform] [-json] [-db path] [-history n] image [image ...]")
		os.Exit(2)
	}

	config.LoadEnvFile()

	if missing := config.CheckRequiredConfig(); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("missing required config")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	if *dbFlag != "" {
		s, err := storage.NewSQLiteStore(*dbFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open store")
		}
		defer s.Close()
		store = s
	}

	runner, err := pipeline.NewFromCredentials(ctx, config.Credentials{}, store)
	if err != nil {
		reportSetupError(err)
		os.Exit(1)
	}

	results := make([]*pipeline.Result, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)
	for i, path := range paths {
		g.Go(func() error {
			results[i], errs[i] = analyzeFile(gctx, runner, path, *transformFlag)
			return nil
		})
	}
	_ = g.Wait()

	failed := false
	for i, path := range paths {
		if errs[i] != nil {
			failed = true
			printError(path, errs[i], *jsonFlag)
			continue
		}
		printResult(path, results[i], *jsonFlag)
	}

	if failed {
		os.Exit(1)
	}
}

func analyzeFile(ctx context.Context, runner *pipeline.Runner, path string, withTransform bool) (*pipeline.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	result, err := runner.RunBasicAnalysis(ctx, data, http.DetectContentType(data))
	if err != nil {
		return nil, err
	}

	if withTransform {
		result = runner.RunTransformationAnalysis(ctx, result)
	}

	return result, nil
}

func printResult(path string, result *pipeline.Result, asJSON bool) {
	if asJSON {
		blob, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to marshal result")
			return
		}
		fmt.Println(string(blob))
		return
	}

	fmt.Printf("\n%s\n", path)
	fmt.Println(scoring.GenerateSummaryReport(result.Output))

	if result.Transformation != nil {
		printTransformation(result)
	}
}

func printTransformation(result *pipeline.Result) {
	t := result.Transformation

	fmt.Printf("\nTRANSFORMATION TARGET: %s\n", t.TargetSelection.TargetProduct)
	fmt.Printf("Reason: %s\n", t.TargetSelection.ReasonForSelection)

	fmt.Println("\nPROCEDURE:")
	for i, step := range t.Procedure.ProcedureSteps {
		fmt.Printf("%d. %s\n", i+1, step)
	}
	fmt.Printf("Tools: %s\n", strings.Join(t.Procedure.RequiredTools, ", "))
	fmt.Printf("Time: %d minutes, difficulty: %s\n", t.Procedure.EstimatedTimeMinutes, t.Procedure.DifficultyLevel)

	fmt.Printf("\nEXPECTED LIFESPAN: %d months (%s stability)\n",
		t.QualityAssessment.ExpectedLifespanMonths, t.QualityAssessment.StructuralStability)

	fmt.Printf("\nSUGGESTED PRICE: ₹%d-₹%d (%s confidence)\n",
		t.Pricing.SuggestedPriceRange.Min, t.Pricing.SuggestedPriceRange.Max, t.Pricing.PricingConfidence)
	for _, reason := range t.Pricing.PricingReasoning {
		fmt.Printf("- %s\n", reason)
	}

	fmt.Printf("\n%s\n", t.DecisionTrace.TransparencyNote)
}

func printError(path string, err error, asJSON bool) {
	if asJSON {
		blob, _ := json.MarshalIndent(pipeline.AsErrorResult(err), "", "  ")
		fmt.Println(string(blob))
		return
	}
	fmt.Fprintf(os.Stderr, "%s: analysis failed: %v\n", path, err)
}

func printHistory(dbPath string, limit int) error {
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.RecentAnalyses(limit)
	if err != nil {
		return err
	}

	for _, rec := range records {
		fmt.Printf("%s  %-25s score=%-3d %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.ObjectType, rec.Score, rec.Verdict)
	}
	return nil
}

func reportSetupError(err error) {
	log.Error().Err(err).Msg("pipeline setup failed")
	if llm.KindOf(err) == llm.KindConfiguration {
		fmt.Fprintln(os.Stderr, dedent.Dedent(setupInstructions))
	}
}
