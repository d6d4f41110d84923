package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/quickref/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cheatsheet page over HTTP",
	Long:  `Starts an HTTP server that serves the cheatsheet at / and a health probe at /healthz.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, renderer, err := loadRenderer()
		if err != nil {
			return err
		}

		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv, err := server.New(server.Config{
			Port:     port,
			AllowAll: cfg.CORS.AllowAll,
		}, renderer)
		if err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdown(srv, 5*time.Second, os.Stderr)
		}()

		fmt.Fprintf(os.Stderr, "quickref server v%s starting on port %d\n", Version, port)
		logVerbose("  Highlight style: %s", cfg.HighlightStyle)
		logVerbose("  CORS allow all: %t", cfg.CORS.AllowAll)

		return srv.Start()
	},
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdown stops srv within timeout and reports a failure on errOut.
func shutdown(srv shutdowner, timeout time.Duration, errOut io.Writer) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(errOut, "Warning: shutdown: %v\n", err)
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
