package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sellonet/sellonet-web/internal/server"
	"github.com/sellonet/sellonet-web/internal/views"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the landing page server",
	Long:  `Starts the HTTP server that renders the landing page and applies navigation commands for each page view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		reg, renderer, err := newRenderer()
		if err != nil {
			return err
		}

		viewRegistry := views.NewRegistry(reg, views.Options{
			TTL:      cfg.ViewTTL,
			MaxViews: cfg.MaxViews,
		})

		srv := server.New(server.Config{
			Port:        cfg.Port,
			AllowAll:    cfg.AllowAllOrigins,
			Title:       cfg.Title,
			Description: cfg.Description,
		}, reg, viewRegistry, renderer)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go viewRegistry.Run(ctx, cfg.SweepInterval)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "sellonet server %s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  View TTL: %s (max %d views)\n", cfg.ViewTTL, cfg.MaxViews)
		fmt.Fprintf(os.Stderr, "  Technologies: %d\n", len(reg.Keys()))

		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
