// catalogd is the catalog ingestion service: it scrapes URLs into
// structured content, optionally classifies them with an AI model, and
// persists components into the catalog tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tmplhub/catalogd/internal/analyzer"
	"github.com/tmplhub/catalogd/internal/api"
	"github.com/tmplhub/catalogd/internal/catalog"
	"github.com/tmplhub/catalogd/internal/config"
	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/extractor"
	"github.com/tmplhub/catalogd/internal/fetcher"
	"github.com/tmplhub/catalogd/internal/generator"
	"github.com/tmplhub/catalogd/internal/github"
	"github.com/tmplhub/catalogd/internal/llm"
	"github.com/tmplhub/catalogd/internal/scraper"
	"github.com/tmplhub/catalogd/internal/utils"
	"github.com/tmplhub/catalogd/pkg/version"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogd",
		Short: "Catalog ingestion service",
		Long: `catalogd scrapes URLs into structured content, optionally analyzes
them with an AI model, and manages components in the catalog tree.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("catalogd %s\n", version.String())
		},
	}
}

func runServe() error {
	// .env is optional and never overrides the real environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	fetchClient, err := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:      cfg.Fetch.Timeout,
		MaxRedirects: cfg.Fetch.MaxRedirects,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		UserAgent:    cfg.Fetch.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to create fetch client: %w", err)
	}
	defer fetchClient.Close()

	provider, err := llm.NewProviderFromConfig(&cfg.LLM)
	if err != nil {
		if !errors.Is(err, domain.ErrLLMNotConfigured) {
			return fmt.Errorf("failed to create AI provider: %w", err)
		}
		log.Warn().
			Str("credential", config.CredentialEnvVar).
			Msg("no AI credential configured, analysis and generation disabled")
		provider = nil
	}
	if provider != nil {
		defer provider.Close()
	}

	ext := extractor.New(log)
	normalizer := github.NewNormalizer(fetchClient, cfg.Fetch.RawFallbackTimeout, log)
	anl := analyzer.New(provider, cfg.LLM.Model, log)
	scrapeService := scraper.NewService(fetchClient, ext, normalizer, anl, log)

	writer := catalog.NewWriter(cfg.Catalog.Directory, log)
	gen := generator.New(provider, cfg.Catalog.Directory, cfg.LLM.Model, log)
	regen := catalog.NewRegenerator(cfg.Catalog.GenerateScript, cfg.Catalog.ScriptTimeout, nil, log)

	handlers := api.NewHandlers(scrapeService, gen, writer, regen, log)
	server := api.NewServer(cfg.Server, handlers, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
