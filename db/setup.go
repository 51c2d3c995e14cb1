package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/patrykkrzal/skirent/internal/models"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.RentalInfo{},
		&models.User{},
		&models.Worker{},
		&models.Equipment{},
		&models.Order{},
		&models.OrderedItem{},
		&models.Warehouse{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
