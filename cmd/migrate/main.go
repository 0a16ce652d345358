package main

import (
	"context"
	"log"
	"os"

	"cakeshop/internal/config"
	"cakeshop/internal/infra/db"
)

func main() {
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if err := db.Migrate(context.Background(), cfg.Database.DSN()); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
