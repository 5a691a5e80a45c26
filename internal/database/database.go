package database

import (
	"fmt"
	"log"

	"github.com/delbyte/codeolympics/internal/config"
	"github.com/delbyte/codeolympics/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	// TranslateError maps the unique-index violation on participants.email to
	// gorm.ErrDuplicatedKey, which the store turns into the already-played
	// outcome.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.Participant{},
		&models.Organizer{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}
