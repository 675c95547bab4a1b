package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/casesim/internal/platform/cache"
	"github.com/abhisek/casesim/internal/platform/config"
	"github.com/abhisek/casesim/internal/platform/logging"
	"github.com/abhisek/casesim/internal/session"
	"github.com/abhisek/casesim/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger := logging.New(cfg.Log, os.Stdout)
		gin.SetMode(gin.ReleaseMode)

		// Graceful shutdown on SIGTERM/SIGINT.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		opts := web.Options{
			CookieName: cfg.Session.CookieName,
			CookieTTL:  cfg.Session.TTL,
			Logger:     logger,
		}

		var store session.Store
		switch cfg.Session.Store {
		case config.StoreRedis:
			c, err := cache.New(ctx, cfg.Cache.URL)
			if err != nil {
				return fmt.Errorf("connect session store: %w", err)
			}
			defer c.Close()
			store = session.NewRedisStore(c.Client, cfg.Session.TTL)
			opts.Ready = c
		default:
			store = session.NewMemoryStore(cfg.Session.TTL)
		}
		logger.Info("session store ready", "backend", cfg.Session.Store, "ttl", cfg.Session.TTL)

		manager := session.NewManager(store, pickerFromFlags(cmd), logger)
		srv, err := web.NewServer(manager, opts)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Server.Addr()
		}
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides CASESIM_SERVER_HOST/PORT)")
}
