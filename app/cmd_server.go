package app

import (
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"

	"github.com/rda-dmp-common/madmp/version"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewCmdServer(logger logrus.FieldLogger, config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the validation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.WithField("v", version.VERSION).Info("Starting server...")
			return doServer(logger, config)
		},
	}
}

func doServer(logger logrus.FieldLogger, config *Config) error {
	svc, err := newService(logger, config, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	var g run.Group
	{
		ln, err := net.Listen("tcp", config.Server.Listen)
		if err != nil {
			return err
		}
		logger.WithField("addr", ln.Addr().String()).Info("HTTP server listening")

		g.Add(func() error {
			mux := http.NewServeMux()

			// Validation API.
			mux.Handle("/v1/", svc)

			// Health check.
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprintln(w, "OK")
			})

			// Prometheus metrics.
			mux.Handle("/metrics", promhttp.Handler())

			// Profiling data.
			mux.HandleFunc("/debug/pprof/", pprof.Index)
			mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
			mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
			mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
			mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
			mux.Handle("/debug/pprof/block", pprof.Handler("block"))
			mux.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
			mux.Handle("/debug/pprof/heap", pprof.Handler("heap"))
			mux.Handle("/debug/pprof/threadcreate", pprof.Handler("threadcreate"))

			return http.Serve(ln, mux)
		}, func(error) {
			ln.Close()
		})
	}
	{
		cancel := make(chan struct{})

		g.Add(func() error {
			err := interrupt(cancel, svc)
			logger.Warn("Shutting down...")
			return err
		}, func(error) {
			close(cancel)
		})
	}

	return g.Run()
}
