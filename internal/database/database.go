package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gcs-tracker/internal/config"
	"gcs-tracker/internal/models"
)

// Connect opens the postgres connection and migrates the schema. The handle
// is returned to the caller instead of being held as a package global so the
// stores own their dependencies explicitly.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Patient{}, &models.Assessment{}); err != nil {
		return nil, err
	}
	return db, nil
}
