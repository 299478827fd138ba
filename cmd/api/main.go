package main

import (
	"os"

	"github.com/yigit/researchdesk/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/researchdesk/internal/server"
)

// @title Research Department API
// @version 1.0
// @description Administrative data service for professors, graduate students, projects and publications

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http

func main() {
	// NewServer loads config, connects, migrates, seeds and builds the router
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
