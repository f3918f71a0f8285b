package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/assets"
	"github.com/aliskhannn/sunhwa-master/internal/config"
	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
	"github.com/aliskhannn/sunhwa-master/internal/repository"
	"github.com/aliskhannn/sunhwa-master/internal/service"
)

// app holds the dependencies shared by every command.
type app struct {
	cfg      *config.Config
	words    *repository.WordRepository
	sessions *service.SessionService
}

func newApp(logger *zap.Logger) (*app, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	return newAppWithConfig(cfg, logger)
}

func newAppWithConfig(cfg *config.Config, logger *zap.Logger) (*app, error) {
	words, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	counts := words.CountByCategory(context.Background())
	logger.Info("catalog loaded",
		zap.Int(string(entities.CategorySinoKorean), counts[entities.CategorySinoKorean]),
		zap.Int(string(entities.CategoryLoanword), counts[entities.CategoryLoanword]),
		zap.Int(string(entities.CategoryRecent), counts[entities.CategoryRecent]),
	)

	sessions := service.NewSessionService(words, service.NewShuffler(), cfg.Session.TestLength, logger)

	return &app{
		cfg:      cfg,
		words:    words,
		sessions: sessions,
	}, nil
}

func loadCatalog(cfg *config.Config) (*repository.WordRepository, error) {
	if cfg.Catalog.Path != "" {
		words, err := repository.NewWordRepositoryFromFile(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		return words, nil
	}

	words, err := repository.NewWordRepository(assets.Words)
	if err != nil {
		return nil, fmt.Errorf("load built-in catalog: %w", err)
	}
	return words, nil
}
