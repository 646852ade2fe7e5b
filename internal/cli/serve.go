package cli

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"codereview/internal/analyzer"
	"codereview/internal/logging"
	"codereview/internal/server"
	"codereview/internal/session"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser analysis form",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	ttl, err := cfg.SessionTTL()
	if err != nil {
		return err
	}

	if !cfg.Logging.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(ttl)
	go store.Run(ctx, ttl/2)

	srv, err := server.New(analyzer.NewAnalyzer(cfg, logging.Logger), store, logging.Logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx, cfg.Server.Addr)
}
