package database

import (
	"fmt"
	"time"

	"mdent-api/config"
	"mdent-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresConnection dials the database with a bounded retry loop so the
// process can come up before the database does. Traffic is only accepted
// after this returns.
func NewPostgresConnection(cfg config.DBConfig, log *logrus.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= cfg.ConnAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		log.Warnf("Database connection attempt %d/%d failed: %v", attempt, cfg.ConnAttempts, err)
		if attempt < cfg.ConnAttempts {
			time.Sleep(cfg.ConnRetryWait)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.ConnAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := db.AutoMigrate(&entity.User{}, &entity.Patient{}, &entity.Appointment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
