package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kalambet/mindset/internal/api"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the coaching page and JSON API (foreground)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		withMCP, _ := cmd.Flags().GetBool("mcp")
		return runServer(cmd.Context(), withMCP)
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the coach as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newCoach(false)
		if err != nil {
			return err
		}
		return serveMCPStdio(cmd.Context(), c)
	},
}

func init() {
	serveCmd.Flags().Bool("mcp", false, "also serve MCP tools over stdio")
}

func runServer(ctx context.Context, withMCP bool) error {
	c, cfg, err := newCoach(false)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewHandler(c),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("mindset listening", "addr", "http://"+addr, "version", version, "inference_url", cfg.Inference.URL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	if withMCP {
		g.Go(func() error {
			return serveMCPStdio(gctx, c)
		})
		slog.Info("MCP server started (stdio transport)")
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func serveMCPStdio(ctx context.Context, c api.Coach) error {
	stdio := server.NewStdioServer(api.NewMCPServer(c, version))
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("MCP stdio server: %w", err)
	}
	return nil
}
