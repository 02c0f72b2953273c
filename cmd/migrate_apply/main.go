package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"family_tasks/internal/db"
	"family_tasks/internal/logger"
	"family_tasks/internal/migrations"

	"github.com/joho/godotenv"
)

// Lists the embedded migrations, or applies them with -apply.
func main() {
	apply := flag.Bool("apply", false, "apply migrations")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("LOG_LEVEL"), false)

	all, err := migrations.All()
	if err != nil {
		logger.Fatal("load migrations", "error", err)
	}
	if !*apply {
		for _, m := range all {
			fmt.Println(m.Name)
		}
		return
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		logger.Fatal("migrate failed", "error", err)
	}
	for _, m := range all {
		fmt.Printf("applied %s\n", m.Name)
	}
}
