package recipebook

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/recipebook/internal/fakeapi"
)

const shutdownTimeout = 5 * time.Second

var (
	mockAddr    string
	mockCount   int
	mockOrigins string
)

var mockAPICmd = &cobra.Command{
	Use:   "mock-api",
	Short: "Serve an in-memory recipe catalog for offline use",
	Long: "Serve a DummyJSON compatible recipe catalog seeded with sample recipes. " +
		"Point the app at it with --api-url http://<addr>/recipes.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mockCount < 0 {
			return fmt.Errorf("--count must be >= 0")
		}
		_, logger, err := loadOptions()
		if err != nil {
			return err
		}

		listener, err := net.Listen("tcp", mockAddr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", mockAddr, err)
		}

		srv := fakeapi.New(fakeapi.Sample(mockCount)...)
		server := &http.Server{
			Handler:           srv.CORSHandler(splitOrigins(mockOrigins)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Serving %d recipes at http://%s%s\n", mockCount, listener.Addr(), fakeapi.PathPrefix)
		logger.Info("mock api started", "addr", listener.Addr().String(), "recipes", mockCount)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

// splitOrigins parses the comma separated --origins value
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func init() {
	mockAPICmd.Flags().StringVar(&mockAddr, "addr", "127.0.0.1:8080", "Listen address")
	mockAPICmd.Flags().IntVar(&mockCount, "count", 50, "Number of sample recipes")
	mockAPICmd.Flags().StringVar(&mockOrigins, "origins", "*", "Comma separated CORS origins")
	rootCmd.AddCommand(mockAPICmd)
}
