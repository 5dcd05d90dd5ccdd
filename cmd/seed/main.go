// seed applies db/schema.sql and db/seed.sql to the configured database.
//
// Usage: go run ./cmd/seed [file.sql ...]
// Without arguments it applies the schema followed by the sample data.
package main

import (
	"context"
	"os"

	"github.com/biztime/api/internal/infrastructure/postgres"
	"github.com/biztime/api/pkg/config"
	"github.com/biztime/api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	files := os.Args[1:]
	if len(files) == 0 {
		files = []string{"db/schema.sql", "db/seed.sql"}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	for _, path := range files {
		sql, err := os.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("read SQL file")
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("apply SQL file")
		}
		log.Info().Str("file", path).Msg("applied")
	}
}
