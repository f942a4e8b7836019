// Package cmd implements the examplelsp command-line interface: a thin
// cobra wrapper that loads an optional YAML config, builds a zap logger,
// and runs an lspgo server over stdio or a TCP socket.
package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akhenakh/lspgo/server"
)

var (
	configPath string
	tcpAddr    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "examplelsp",
	Short: "A reference language server built on lspgo",
	Long: `examplelsp is a minimal language server demonstrating lspgo's
handler surface: it tracks open documents and answers textDocument/hover
with what it knows about the document under the cursor.

By default it serves over stdio, the transport an editor expects when it
launches the server as a subprocess. Pass --tcp-addr to listen on a TCP
socket instead, which is convenient for manual testing with netcat or a
debugging proxy.`,
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&tcpAddr, "tcp-addr", "", "listen on this TCP address instead of stdio (e.g. 127.0.0.1:7777)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, or error (default info)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command; main's only job is to call this and
// translate a returned error into a process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func runServe(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}
	if tcpAddr == "" {
		tcpAddr = fileCfg.TCPAddr
	}
	if logLevel == "" {
		logLevel = fileCfg.LogLevel
	}

	logger, err := newLogger(logLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("signal received, cancelling handler context")
		cancel()
	}()

	handler := newHandler(logger)

	if tcpAddr != "" {
		return serveTCP(ctx, logger, handler, tcpAddr)
	}
	return serveStdio(ctx, logger, handler)
}

func serveStdio(ctx context.Context, logger *zap.Logger, h *exampleHandler) error {
	srv := server.NewStdioServer(h, logger)
	h.client = srv.Client
	logger.Info("serving over stdio")
	return srv.Run(ctx)
}

func serveTCP(ctx context.Context, logger *zap.Logger, h *exampleHandler, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	defer ln.Close()

	logger.Info("waiting for a client connection", zap.String("addr", addr))
	srv, err := server.NewTCPServer(ln, h, logger)
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	h.client = srv.Client
	logger.Info("client connected, serving")
	return srv.Run(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
