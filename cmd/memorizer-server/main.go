package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/memorizer/internal/bootstrap"
	"github.com/at-ishikawa/memorizer/internal/config"
	"github.com/at-ishikawa/memorizer/internal/database"
	"github.com/at-ishikawa/memorizer/internal/server"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "memorizer-server",
		Short:         "Memorizer repository service HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(debugMode)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return run(cmd.Context(), logger)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(debugMode bool) (*zap.Logger, error) {
	if debugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, logger *zap.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	auth, err := server.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		return fmt.Errorf("server.NewAuthenticator() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	services := bootstrap.NewServices(db, cfg, logger)
	mux := newMux(auth, services.Memorizer, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.CORSMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	app := bootstrap.New(bootstrap.WithLogger(logger.Named("bootstrap")))
	app.AddShutdownHook("database", func(ctx context.Context) error {
		return db.Close()
	})
	app.AddShutdownHook("http", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("Starting server", zap.String("addr", srv.Addr), zap.Bool("tls", cfg.Server.TLSCertFile != ""))
		var err error
		if cfg.Server.TLSCertFile != "" {
			err = srv.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

// newMux mounts the repository service behind the bearer token interceptor.
func newMux(auth *server.Authenticator, core server.Core, logger *zap.Logger) *http.ServeMux {
	path, handler := server.NewRepositoryServiceHandler(
		server.NewRepositoryHandler(core, logger.Named("server")),
		connect.WithInterceptors(auth.Interceptor()),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	return mux
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
