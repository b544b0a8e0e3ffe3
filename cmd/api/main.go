package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"crowdfund-backoffice/internal/config"
	"crowdfund-backoffice/pkg/logger"
)

func main() {
	// .env cho local; production dùng system env
	envErr := godotenv.Load()

	app := config.LoadApp()
	logger.Init(app.Environment, app.LogLevel)

	if envErr != nil {
		logger.Warn("No .env file found, using system environment variables", nil)
	}
	if app.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}
