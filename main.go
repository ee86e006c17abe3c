package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deal-checker/analyzer"
	"deal-checker/config"
	"deal-checker/handlers"
	"deal-checker/i18n"
	"deal-checker/services"
	"deal-checker/storage"
	"deal-checker/utils"
)

const version = "0.3.0"

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s serve              start the web UI\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s check [-lang en] <listing-url>\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	logger := utils.NewLogger(utils.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	if err := utils.InitSentry(cfg.SentryDSN, cfg.Environment, "deal-checker@"+version); err != nil {
		logger.Warn("Sentry disabled: %v", err)
	}
	defer utils.FlushSentry()

	switch os.Args[1] {
	case "serve":
		if err := serve(cfg, logger); err != nil {
			logger.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	case "check":
		os.Exit(check(cfg, logger, os.Args[2:]))
	default:
		usage()
		os.Exit(2)
	}
}

func serve(cfg *config.Config, logger *utils.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("=== Deal Checker starting ===")
	logger.Info("Config: analyzer %s | listen %s | timeout %v | archive %s",
		cfg.AnalyzerURL, cfg.ListenAddr, cfg.RequestTimeout, cfg.ArchiveBackend)

	archive, err := storage.Open(ctx, cfg, logger.With("archive"))
	if err != nil {
		logger.Error("Scan archive unavailable, continuing without it: %v", err)
	}
	defer func() {
		if err := archive.Close(); err != nil {
			logger.Error("Closing scan archive: %v", err)
		}
	}()

	srv := handlers.NewServer(handlers.Options{
		Analyzer:    analyzer.New(cfg.AnalyzerURL, cfg.RequestTimeout),
		Sessions:    services.NewSessionStore(cfg.SessionTTL),
		Archive:     archive,
		Limiter:     handlers.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:      logger.With("http"),
		DefaultLang: cfg.DefaultLang,
	})

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening on %s", cfg.ListenAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// check runs one analysis from the terminal and returns the exit code.
func check(cfg *config.Config, logger *utils.Logger, args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	lang := fs.String("lang", cfg.DefaultLang, "report language (de, en)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		usage()
		return 2
	}
	ref := fs.Arg(0)
	ui := i18n.Lookup(*lang)

	submit, err := services.ValidateListing(ref)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.InvalidDomain)
		return 2
	}
	if !submit {
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	fmt.Fprintln(os.Stderr, ui.Loading)
	raw, err := analyzer.New(cfg.AnalyzerURL, cfg.RequestTimeout).Analyze(ctx, ref)
	if err != nil {
		logger.Error("Analysis failed: %v", err)
		fmt.Fprintln(os.Stderr, ui.AnalysisFailed)
		return 1
	}

	builder := services.NewReportBuilder(logger)
	report := builder.Build(raw, *lang)
	if report == nil {
		fmt.Fprintln(os.Stderr, ui.NoAnalysis)
		return 0
	}
	builder.Print(os.Stdout, report)
	return 0
}
