package main

import (
	"github.com/joho/godotenv"

	"freelancehub_backend/internal/app"
	"freelancehub_backend/internal/logger"
)

func main() {
	// .env опционален: в контейнере конфигурация приходит из окружения
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found, relying on environment")
	}

	app.Run()
}
