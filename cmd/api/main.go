package main

import (
	"os"

	"github.com/yigit/alumnet/internal/pkg/logger"
	"github.com/yigit/alumnet/internal/server"
)

// @title AlumNet API
// @version 1.0
// @description Student and alumni profile directory
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@alumnet.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name alumnet_session
// @description Signed session cookie issued by /api/auth/login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup functions log the details
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
