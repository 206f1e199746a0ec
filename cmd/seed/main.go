package main

import (
	"context"
	"flag"
	"time"

	"nutriscan/config"
	"nutriscan/services"

	"github.com/sirupsen/logrus"
)

func main() {
	history := flag.Bool("history", false, "also generate demo logs and metrics for existing users")
	days := flag.Int("days", services.DefaultHistoryDays, "days of history to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := config.NewLogger(cfg)

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx := context.Background()
	seeder := services.NewSeeder(db, time.Now().UnixNano(), log)

	foods, err := seeder.SeedCatalog(ctx)
	if err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	if rdb := config.NewRedis(cfg, log); rdb != nil {
		services.NewRedisFoodCache(rdb, cfg.FoodCacheTTL, log).InvalidatePublic(ctx)
		_ = rdb.Close()
	}

	if *history {
		if err := seeder.SeedHistory(ctx, foods, *days); err != nil {
			log.Fatalf("seed history: %v", err)
		}
	}
	log.Info("seed complete")
}
