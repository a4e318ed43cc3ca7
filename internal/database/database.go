package database

import (
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) *gorm.DB {
	gormCfg := &gorm.Config{}
	if cfg.Env == config.EnvProduction {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

// AutoMigrate creates the questions and categories tables if they are
// missing. Existing columns are left alone.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return err
	}
	log.Println("database migrated")
	return nil
}
