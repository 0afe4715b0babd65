package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/readmanual/internal/config"
	"github.com/ziadkadry99/readmanual/internal/progress"
	"github.com/ziadkadry99/readmanual/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [patterns...]",
	Short: "Build the manual and serve it locally",
	Long:  `Generates the manual like the root command, then serves it over HTTP for preview.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringP("language", "l", "en", "document language code")
	serveCmd.Flags().StringP("output", "o", "manual.html", "output file")
	serveCmd.Flags().StringP("name", "n", "Manual", "manual name")
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the manual in a browser")
	serveCmd.Flags().Bool("cors-allow-all", false, "allow cross-origin requests from any origin")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	preview := previewConfig(cmd, cfg)

	logger := newLogger()
	if _, err := generate(cfg, logger, progress.NewReporter()); err != nil {
		return err
	}

	srv := server.New(preview, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if cfg.Serve.Open {
		go openBrowser(srv.URL())
	}

	fmt.Printf("Serving %s at %s\n", cfg.Output, srv.URL())
	fmt.Println("Press Ctrl+C to stop.")

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// previewConfig applies the serve flags to cfg and returns the preview
// server settings.
func previewConfig(cmd *cobra.Command, cfg *config.Config) server.Config {
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Serve.Port = port
	}
	if cmd.Flags().Changed("open") {
		cfg.Serve.Open, _ = cmd.Flags().GetBool("open")
	}
	allowAll, _ := cmd.Flags().GetBool("cors-allow-all")
	return server.Config{
		Port:     cfg.Serve.Port,
		File:     cfg.Output,
		AllowAll: allowAll,
	}
}
