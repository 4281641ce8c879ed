package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Astemirdum/bookstore-storefront/storefront/app"
	"github.com/Astemirdum/bookstore-storefront/storefront/config"
)

func main() {
	// a missing .env is fine, the environment may already be set
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env:", err)
	}
	cfg := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
