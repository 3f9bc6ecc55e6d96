package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard-api/internal/models"
)

func Connect(dsn string) *gorm.DB {
	// TranslateError turns the driver's unique-index violations into
	// gorm.ErrDuplicatedKey, which the application service relies on to
	// reject duplicate registrations atomically.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: this creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.Experience{},
		&models.Education{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
