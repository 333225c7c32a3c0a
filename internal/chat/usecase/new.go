package usecase

import (
	"support-chat-backend/internal/chat"
	"support-chat-backend/internal/chat/repository"
	"support-chat-backend/pkg/log"
)

const (
	DefaultHistoryLimit     = 10
	DefaultMaxMessageLength = 1000
)

type Config struct {
	HistoryLimit     int
	MaxMessageLength int
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	repo      repository.Repository
	responder chat.Responder
	cfg       Config
	l         log.Logger
}

// New creates a chat UseCase. Zero config values fall back to the defaults.
func New(repo repository.Repository, responder chat.Responder, cfg Config, l log.Logger) chat.UseCase {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = DefaultMaxMessageLength
	}
	return &implUseCase{
		repo:      repo,
		responder: responder,
		cfg:       cfg,
		l:         l,
	}
}
