package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/api"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/categorizer"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/config"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/extractor"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/logger"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/parser"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/writer"
)

var (
	outputPath    string
	includeHeader bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statement",
		Short: "Bank statement analyzer",
		Long:  `Reconstructs, categorizes and summarizes transactions from bank statement PDFs.`,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze <statement.pdf> [more.pdf ...]",
		Short: "Analyze statement PDFs and export transactions to CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := analyzeFile(cmd.Context(), path); err != nil {
					return fmt.Errorf("processing %s: %w", path, err)
				}
			}
			return nil
		},
	}
	analyzeCmd.Flags().StringVar(&outputPath, "output", "", "Output CSV path (defaults to input filename with .csv extension)")
	analyzeCmd.Flags().BoolVar(&includeHeader, "header", true, "Include summary header rows in CSV")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the statement analysis HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(analyzeCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyzeFile(ctx context.Context, inputPath string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	text, err := extractor.ExtractText(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	engine := parser.New(parser.DefaultLayout(), buildClassifier(ctx, cfg, log), log)
	result, err := engine.Parse(ctx, text)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	fmt.Printf("  Found %d transaction(s)\n", len(result.Transactions))
	if len(result.Transactions) == 0 {
		fmt.Println("  Warning: no transactions recognized. The statement layout may not match.")
		return nil
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
	}

	w := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := w.WriteToFile(outPath, result); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	if result.BankName != "" {
		fmt.Printf("  Bank: %s\n", result.BankName)
	}
	fmt.Printf("  Spent: %s  Income: %s  Savings: %s\n",
		result.Summary.TotalSpent.StringFixed(2),
		result.Summary.TotalIncome.StringFixed(2),
		result.Summary.Savings.StringFixed(2))
	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()
	engine := parser.New(parser.DefaultLayout(), buildClassifier(ctx, cfg, log), log)
	handler := api.NewHandler(engine, cfg.MaxUploadBytes, log)
	router := api.NewRouter(handler, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// buildClassifier wires the configured categorization strategy. The
// remote strategy always embeds the rule-based fallback; if its client
// cannot be built, the fallback alone is used.
func buildClassifier(ctx context.Context, cfg *config.Config, log zerolog.Logger) categorizer.Classifier {
	ruleBased := categorizer.NewRuleBased(nil)
	if !cfg.RemoteCategorizer {
		return ruleBased
	}

	labeler, err := categorizer.NewGeminiLabeler(ctx, cfg.GeminiModel, ruleBased.Categories())
	if err != nil {
		log.Warn().Err(err).Msg("remote categorizer unavailable, using rule-based classification")
		return ruleBased
	}

	remote, err := categorizer.NewRemote(labeler, ruleBased, cfg.RemoteTimeout, log)
	if err != nil {
		log.Warn().Err(err).Msg("remote categorizer misconfigured, using rule-based classification")
		return ruleBased
	}
	return remote
}
