package cli

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/httpserve"
	"github.com/mrz1836/rcli/internal/signal"
)

// maxPort is the largest TCP port.
const maxPort = 65535

// AddHTTPCommand adds the http command group to the root command.
func AddHTTPCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve files over HTTP",
	}
	cmd.AddCommand(newHTTPServeCmd())
	root.AddCommand(cmd)
}

func newHTTPServeCmd() *cobra.Command {
	var (
		dir  string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory until interrupted",
		Long: `Serve a directory over HTTP until Ctrl+C.

Routes:
  GET /<path>    the file at <path> under the directory
  GET /fs/       directory listings
  GET /metrics   Prometheus metrics

Examples:
  rcli http serve
  rcli http serve -d ./public -p 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHTTPServe(cmd.Context(), cmd, dir, port)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to serve, defaults to http.dir")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on, defaults to http.port")
	return cmd
}

func runHTTPServe(ctx context.Context, cmd *cobra.Command, dir string, port int) error {
	cfg := configFromContext(ctx).HTTP
	logger := zerolog.Ctx(ctx)

	port = intFlag(cmd, "port", port, cfg.Port)
	if port < 1 || port > maxPort {
		return errors.NewExitCode2Error(errors.Wrapf(errors.ErrValueOutOfRange,
			"port must be between 1 and %d, got %d", maxPort, port))
	}

	srv, err := httpserve.New(httpserve.Config{
		Dir:               stringFlag(cmd, "dir", dir, cfg.Dir),
		Addr:              net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		ReadHeaderTimeout: cfg.ReadTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
	}, httpserve.WithLogger(*logger))
	if err != nil {
		return err
	}

	h := signal.NewHandler(ctx)
	defer h.Stop()

	out := newOutput(cmd)
	if !out.IsJSON() {
		out.Info(fmt.Sprintf("Serving %s on http://localhost:%d (Ctrl+C to stop)", srv.Root(), port))
	}

	if err := srv.ListenAndServe(h.Context()); err != nil {
		return err
	}

	if sig := h.Signal(); sig != nil {
		logger.Debug().Str("signal", sig.String()).Msg("shutdown requested")
	}
	if out.IsJSON() {
		return out.JSON(map[string]string{"status": "stopped", "dir": srv.Root()})
	}
	out.Success("server stopped")
	return nil
}
