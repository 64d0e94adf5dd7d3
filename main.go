package main

import (
	"fmt"
	"masterpos_server/api"
	"masterpos_server/config"
	"masterpos_server/store"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger

// init loads environment variables and initializes logger and record store
func init() {
	envErr := godotenv.Load()

	config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	store.Initialize()
}

func main() {
	// Setup graceful shutdown BEFORE starting the server
	setupGracefulShutdown(logger)

	r := api.App()
	serverCfg := config.GetConfig().Server

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", serverCfg.AppName, serverCfg.Port))

	server := &http.Server{
		Addr:           serverCfg.Port,
		Handler:        r,
		ReadTimeout:    serverCfg.ReadTimeout,
		WriteTimeout:   serverCfg.WriteTimeout,
		IdleTimeout:    serverCfg.IdleTimeout,
		MaxHeaderBytes: serverCfg.MaxHeaderBytes,
	}

	if err := server.ListenAndServe(); err != nil {
		logger.Error("Failed to start server", gecho.Field("error", err))
	}
}

// setupGracefulShutdown sets up signal handling for graceful application shutdown
func setupGracefulShutdown(logger *gecho.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		sig := <-c
		logger.Info("Received shutdown signal", gecho.Field("signal", sig))
		os.Exit(0)
	}()
}
