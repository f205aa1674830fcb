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

	"showdown-teambuilder/logger"
	"showdown-teambuilder/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, live scouting page and MCP endpoint",
	Long: `Serves the JSON API under /api, the scouting page at / with its /connect event
stream, and the MCP tools over streamable HTTP at the configured mcp_path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
			settings.Listen = listen
		}
		svc, closeFn, err := openService()
		if err != nil {
			return err
		}
		defer closeFn()

		srv := server.New(svc, settings, Version).HTTPServer()
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			logger.Info("server started", "addr", srv.Addr, "generation", svc.DefaultGen, "mcp", settings.MCPPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://localhost%s\n", srv.Addr)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "address to listen on (overrides the listen config key)")
	rootCmd.AddCommand(serveCmd)
}
