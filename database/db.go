package database

import (
	"fmt"
	"os"

	"pintureria-backend/logger"
	"pintureria-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(); err != nil {
		logger.Get().Warn("no .env file found, relying on environment")
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), port)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Get().WithError(err).Fatal("could not connect to database")
	}
	DB = db
}

func AutoMigrate() {
	if err := Migrate(DB); err != nil {
		logger.Get().WithError(err).Fatal("migration failed")
	}
	if err := models.SeedPaymentMethods(DB); err != nil {
		logger.Get().WithError(err).Fatal("payment method seed failed")
	}
}
