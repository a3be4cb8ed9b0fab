package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocivil/internal/engine"
	"github.com/alexiusacademia/gocivil/internal/logging"
	"github.com/alexiusacademia/gocivil/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the design engine over HTTP",
	Long: `Start an HTTP server exposing the design engine.

Routes:
  GET  /healthz             liveness check
  GET  /api/tables          reference table keys
  POST /api/design          design request JSON → result JSON
  POST /api/report/{fmt}    design request JSON → md, html or pdf report
  POST /api/batch           multipart "file" workbook → results workbook

Settings come from GOCIVIL_* environment variables or a .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.NewJSON(logLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		c := *cfg
		c.Server.Addr = serveAddr

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(&c, engine.New(log), log)
		if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", cfg.Server.Addr, "Listen address")
}
