package infrastructure

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/iclubstoree/iclub-financeiro/config"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/catalog"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/preferences"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/rule"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

// NewDatabase abre a conexão com o Postgres, configura o pool e roda as
// migrações automáticas.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogLevel := gormlogger.Silent
	if cfg.App.Environment != "production" {
		gormLogLevel = gormlogger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("abrindo conexão com o banco: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtendo pool de conexões: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.AutoMigrate(
		&expense.Expense{},
		&catalog.Store{},
		&catalog.Category{},
		&catalog.CostCenter{},
		&catalog.ExpenseType{},
		&catalog.Member{},
		&rule.AiRule{},
		&preferences.Preferences{},
	); err != nil {
		return nil, fmt.Errorf("executando migrações: %w", err)
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DBName).
		Msg("conexão com o banco estabelecida")
	return db, nil
}
