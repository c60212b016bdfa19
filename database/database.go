package database

import (
	"fmt"
	"os"

	"github.com/gridironhub/chat_backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Connect opens the Postgres database described by the DB_* environment
// variables.
func Connect() (*gorm.DB, error) {
	host := envOr("DB_HOST", "localhost")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASS", "postgres")
	dbname := envOr("DB_NAME", "fanhub")
	port := envOr("DB_PORT", "5432")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host, user, password, dbname, port)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate automatically migrates the database schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.ChatMessage{}, &models.Game{})
}
