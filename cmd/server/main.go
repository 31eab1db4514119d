package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kiliankoe/storybranch/internal/ai"
	"github.com/kiliankoe/storybranch/internal/ai/ollama"
	"github.com/kiliankoe/storybranch/internal/ai/openai"
	"github.com/kiliankoe/storybranch/internal/config"
	"github.com/kiliankoe/storybranch/internal/game"
	"github.com/kiliankoe/storybranch/internal/logger"
	"github.com/kiliankoe/storybranch/internal/server"
	"github.com/spf13/cobra"
)

const version = "v1.0.0-dev"

var portFlag string

var rootCmd = &cobra.Command{
	Use:     "storybranch",
	Short:   "Narrative backend for branching text adventures",
	Version: version,
	Long: `storybranch turns short game parameters into opening scenes, outcome hooks
and follow-up scenes by calling a hosted chat model.

Environment Variables:
  PORT               Port to listen on (default: 8080)
  LLM_PROVIDER       "openai" or "ollama" (default: openai)
  OPENAI_MODEL       Model to use (default: gpt-4o-mini)
  OPENAI_API_KEY     OpenAI API key (required for the openai provider)
  OPENAI_BASE_URL    Custom OpenAI-compatible base URL (optional)
  OLLAMA_HOST        Ollama host URL (default: http://localhost:11434)
  OLLAMA_MODEL       Model to use with ollama (default: llama3)
  LLM_TIMEOUT        Per-attempt timeout (default: 60s)
  LLM_MAX_RETRIES    Retries after the first failed attempt (default: 2)
  LLM_RATE_LIMIT     Outbound model calls per second, 0 = unlimited (default: 0)
  LOG_LEVEL          debug, info, warn, error (default: info)
  LOG_FORMAT         console or json (default: console)

A .env file in the working directory is loaded first if present.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&portFlag, "port", "", "Port to listen on (overrides PORT env var)")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	if cfg.Provider == "openai" && cfg.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set; generation requests will fail")
	}

	retry := ai.DefaultRetry()
	retry.MaxRetries = cfg.MaxRetries
	client := ai.NewClient(provider, cfg.ActiveModel(),
		ai.WithRetry(retry),
		ai.WithRateLimit(cfg.RateLimit),
		ai.WithLogger(log),
	)

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(server.NewHandler(game.NewGenerator(client), log), log)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("provider", provider.Name()).
			Str("model", cfg.ActiveModel()).
			Int("max_retries", cfg.MaxRetries).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func newProvider(cfg config.Config) (ai.Provider, error) {
	switch cfg.Provider {
	case "ollama":
		return ollama.New(cfg.OllamaHost, cfg.Timeout)
	default:
		return openai.New(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.Timeout), nil
	}
}
