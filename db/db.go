package db

import (
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"onboarding_backend/config"
)

var DB *gorm.DB

const reconnectDelay = 5 * time.Second

// Init connects to PostgreSQL, retrying with a fixed delay until the database
// is reachable. Blocks until connected.
func Init(cfg *config.Config) {
	gormLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	for {
		conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormLogger,
		})
		if err != nil {
			logrus.WithError(err).Errorf("DB connection failed, retrying in %s", reconnectDelay)
			time.Sleep(reconnectDelay)
			continue
		}
		DB = conn
		break
	}

	tunePool()
	logrus.Infof("Connected to PostgreSQL at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// tunePool sizes the database/sql pool underneath gorm. The same pool serves
// the write path and the listing reads.
func tunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		logrus.WithError(err).Warn("Failed to tune connection pool")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}
