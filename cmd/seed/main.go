// Command seed loads the starter catalog and badge definitions. It is
// idempotent, so redeploys can run it unconditionally after migrations.
package main

import (
	"context"

	"ai-tutor-service/internal/adapters/secondary/postgres"
	"ai-tutor-service/internal/config"
	"ai-tutor-service/internal/seed"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	seeder := seed.New(
		postgres.NewCourseRepository(pool),
		postgres.NewTopicRepository(pool),
		postgres.NewAchievementRepository(pool),
		postgres.NewChallengeRepository(pool),
	)

	if err := seeder.Run(ctx); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Info("seed complete")
}
