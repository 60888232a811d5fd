package main

import (
	"os"

	"github.com/thws/management/internal/pkg/logger"
	"github.com/thws/management/internal/server"
)

// @title Partner University Management API
// @version 1.0
// @description REST API for managing partner universities and their exchange modules

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
