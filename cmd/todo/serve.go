package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jacksmith/todo/internal/logging"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/jacksmith/todo/internal/server"
	"github.com/jacksmith/todo/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the to-do server",
	Long: `Run the HTTP server: the browser UI at / and the JSON API at /api/todos.

Tasks live in memory and are lost when the server stops. A seed file
(.yaml, .yml or .toml) can preload tasks at startup; "todo dump" writes
one from a running server.

Examples:
  todo serve
  todo serve --addr :8080
  todo serve --seed tasks.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr      string
	serveSeed      string
	serveLogLevel  string
	serveLogFormat string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :3000)")
	serveCmd.Flags().StringVar(&serveSeed, "seed", "", "seed file to load at startup")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "", "log format: text, json, logfmt")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveSeed != "" {
		cfg.Seed = serveSeed
	}
	if serveLogLevel != "" {
		cfg.Log.Level = serveLogLevel
	}
	if serveLogFormat != "" {
		cfg.Log.Format = serveLogFormat
	}

	opts := logging.DefaultOptions()
	opts.Level = cfg.Log.Level
	opts.Format = cfg.Log.Format
	logger, err := logging.New(os.Stderr, opts)
	if err != nil {
		return err
	}

	st := storage.NewMemory()
	if cfg.Seed != "" {
		seed, err := model.LoadSeed(cfg.Seed)
		if err != nil {
			return err
		}
		created, err := ops.SeedTasks(st, seed.Tasks)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", cfg.Seed, err)
		}
		logger.Info("seeded", "file", cfg.Seed, "tasks", len(created))
	}

	gin.SetMode(gin.ReleaseMode)
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(st, server.WithLogger(logger)).ListenAndServe(ctx, cfg.Addr)
}
