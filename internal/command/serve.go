package command

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/clouch"
	"github.com/dmitrymomot/clouch/pkg/httpserver"
	"github.com/dmitrymomot/clouch/pkg/logger"
)

func serveCommand() *cobra.Command {
	var dir, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve static HTML pages, rewritten for mobile visitors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			if _, err := os.Stat(dir); err != nil {
				return fmt.Errorf("invalid site directory: %w", err)
			}

			log := slog.Default()
			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			mw, err := clouch.NewFromConfig(cfg.Clouch,
				clouch.WithLogger(log.With(logger.Component("middleware"))),
				clouch.WithMetrics(clouch.NewMetrics(reg)),
			)
			if err != nil {
				return err
			}

			log.InfoContext(cmd.Context(), "serving site", slog.String("dir", dir))
			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), newRouter(dir, mw, reg, log))
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory with the site to serve")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

func newRouter(dir string, mw func(http.Handler) http.Handler, reg *prometheus.Registry, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, dirCheck(dir)))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(requestLogger(log), mw)
		r.Handle("/*", http.FileServer(http.Dir(dir)))
	})
	return r
}

func dirCheck(dir string) func(context.Context) error {
	return func(context.Context) error {
		info, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
		return nil
	}
}

// requestLogger logs one line per request. It runs outside the clouch
// middleware, so the status and size are those sent to the client.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request served",
				slog.String("method", r.Method),
				logger.Path(r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Bytes(ww.BytesWritten()),
				logger.Duration(time.Since(start)),
				logger.UserAgent(r.UserAgent()),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
