package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	https_server "TextAnalyzer/api/http"
	"TextAnalyzer/internal/config"
	"TextAnalyzer/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides mainConfig.port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. 加载配置
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		conf.Port = servePort
		if err := conf.Validate(); err != nil {
			return err
		}
	}
	if err := zlog.Init(conf.LogConfig); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              conf.Addr(),
		Handler:           https_server.NewEngine(conf),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 2. 启动 HTTP 服务
	serverErr := make(chan error, 1)
	go func() {
		zlog.Info("server starting", zap.String("addr", srv.Addr), zap.Bool("tls", conf.TLSEnabled()))
		var err error
		if conf.TLSEnabled() {
			err = srv.ListenAndServeTLS(conf.CertFile, conf.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// 3. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	zlog.Info("server stopped")
	return nil
}
