package database

import (
	"errors"
	"log"
	"time"

	"github.com/pushp314/stenpan-backend/internal/config"
	"github.com/pushp314/stenpan-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ErrSnapshotNotFound is returned by LoadSnapshot for keys never written.
var ErrSnapshotNotFound = errors.New("database: snapshot not found")

func Connect() {
	dsn := config.AppConfig.DatabaseURL
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	DB = db
	log.Println("Connected to PostgreSQL with connection pooling (max: 25, idle: 10)")
}

// LoadSnapshot reads the JSON value stored under key.
func LoadSnapshot(key string) (string, error) {
	var snap models.Snapshot
	if err := DB.First(&snap, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSnapshotNotFound
		}
		return "", err
	}
	return snap.Value, nil
}

// SaveSnapshot overwrites the value under key. Whole-object, last-write-wins.
func SaveSnapshot(key, value string) error {
	snap := models.Snapshot{Key: key, Value: value, UpdatedAt: time.Now()}
	return DB.Save(&snap).Error
}
