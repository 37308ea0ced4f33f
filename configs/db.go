package configs

import (
	"github.com/longkovipb52/TaloFood-App-sub000/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store selected by DB_DRIVER. TranslateError is on
// so duplicate-key violations surface as gorm.ErrDuplicatedKey, which the
// review upsert relies on.
func ConnectionDB(cfg *Config) {
	gormCfg := &gorm.Config{TranslateError: true}

	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), gormCfg)
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	}
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	db = database
}

func SetupDatabase() {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Food{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Review{},
	)
	if err != nil {
		panic("failed to migrate database: " + err.Error())
	}
}
