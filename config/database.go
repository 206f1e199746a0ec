package config

import (
	"time"

	"nutriscan/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB connects to Postgres with retries and migrates the schema.
func InitDB(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.IsDevelopment() {
		level = logger.Info
	}

	var (
		db  *gorm.DB
		err error
	)
	for attempt := 1; attempt <= 10; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger:         logger.Default.LogMode(level),
			TranslateError: true,
		})
		if err == nil {
			break
		}
		wait := time.Duration(1<<uint(attempt-1)) * time.Second
		if wait > 10*time.Second {
			wait = 10 * time.Second
		}
		log.WithError(err).Warnf("database not ready (attempt %d), retrying in %v", attempt, wait)
		time.Sleep(wait)
	}
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database connected and migrated")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}
