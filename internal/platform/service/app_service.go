package service

import (
	"log/slog"

	"github.com/jackdo69/photo-sharing-server/internal/config"
)

// AppService 持有各业务模块共享的运行时依赖。
type AppService struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewAppService(cfg *config.Config, logger *slog.Logger) *AppService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AppService{cfg: cfg, logger: logger}
}

func (s *AppService) Config() *config.Config {
	return s.cfg
}

func (s *AppService) Logger() *slog.Logger {
	return s.logger
}
