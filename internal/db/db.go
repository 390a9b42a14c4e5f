package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"uidgen/internal/config"
	"uidgen/internal/model"
)

// Init подключается к базе выбранным драйвером и выполняет автомиграцию схемы.
func Init(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.Postgres.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DB.SQLitePath)
	default:
		return nil, fmt.Errorf("бд: неизвестный драйвер %q", cfg.DB.Driver)
	}
	return Open(dialector)
}

// Open открывает соединение и мигрирует worker_node.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("бд: ошибка подключения: %w", err)
	}

	if err := db.AutoMigrate(&model.WorkerNode{}); err != nil {
		return nil, fmt.Errorf("бд: ошибка миграции: %w", err)
	}

	return db, nil
}
