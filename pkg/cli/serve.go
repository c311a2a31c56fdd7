package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qazaqnlp/qural/pkg/auth"
	"github.com/qazaqnlp/qural/pkg/config"
	"github.com/qazaqnlp/qural/pkg/server"
	"github.com/qazaqnlp/qural/pkg/storage"
	"github.com/qazaqnlp/qural/pkg/tools"
	"github.com/qazaqnlp/qural/pkg/tools/catalogtool"
	"github.com/qazaqnlp/qural/pkg/tools/dataset"
	"github.com/qazaqnlp/qural/pkg/web"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the annotation web UI and the MCP endpoint",
		Long:  "Starts the browser UI for the annotation team and a read-only MCP endpoint at /mcp on the same address.",
		Run:   runServe,
	}

	cmd.Flags().String("bind", "", "Bind address (host:port, overrides the config file)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
		cfg.BindAddr = bind
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if debug {
		cfg.Debug = true
	}

	store, err := storage.NewSQLiteStorage(storage.Config{
		DatabasePath: cfg.DatabasePath,
		Debug:        cfg.Debug,
	})
	if err != nil {
		exitErr("open database", err)
	}
	logger.Info().Str("path", cfg.DatabasePath).Msg("database initialized")

	if err := store.SeedAdmin(signalCtx, cfg.Seed.Username, auth.HashPassword(cfg.Seed.Password)); err != nil {
		exitErr("seed admin account", err)
	}

	authSvc := auth.NewService(store, logger)
	webSrv, err := web.NewServer(store, authSvc, logger, cfg.Seed.Username)
	if err != nil {
		exitErr("build web server", err)
	}

	impl := &mcp.Implementation{
		Name:    "qural",
		Version: version,
	}
	srv := server.NewServer(impl, store)

	toolList := []tools.Tool{
		catalogtool.New(logger),
		dataset.New(logger),
	}
	for _, tool := range toolList {
		if err := tool.Register(srv); err != nil {
			logger.Error().Msgf("Failed to register tool: %v", err)
		}
	}

	// Stateless mode avoids "session not found" errors after server restart
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return &srv.Server
	}, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHandler)
	mux.Handle("/", webSrv.Handler())

	httpSrv := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info().Msgf("qural starting on address %s", cfg.BindAddr)
	logger.Info().Msgf("MCP endpoint available at: http://%s/mcp", cfg.BindAddr)

	go func() {
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Msgf("qural failed to start: %v", err)
		}
	}()

	<-signalCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error().Msgf("http shutdown error: %v", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Msgf("shutdown error: %v", err)
	} else {
		logger.Info().Msg("shutdown complete")
	}
}
