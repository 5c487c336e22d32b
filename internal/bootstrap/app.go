package bootstrap

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dino-explorer/internal/config"
	"dino-explorer/internal/model"
	mysqlClient "dino-explorer/internal/platform/mysql"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	db, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Era{},
		&model.Location{},
		&model.Dinosaur{},
		&model.Researcher{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	return &App{
		Config:    cfg,
		DB:        db,
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
