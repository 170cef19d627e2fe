package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/bnema/fishpi-cli/internal/logging"
	"github.com/bnema/fishpi-cli/internal/ports"
	"go.uber.org/zap"
)

// RuntimeState is the process-wide configuration handle. It is created once at
// startup and passed explicitly to everything that reads or mutates it.
type RuntimeState struct {
	mu     sync.RWMutex
	saveMu sync.Mutex
	cfg    domain.RuntimeConfig
	repo   ports.ConfigRepository
	logger *zap.SugaredLogger
}

func NewRuntimeState(cfg domain.RuntimeConfig, repo ports.ConfigRepository, logger *zap.SugaredLogger) *RuntimeState {
	return &RuntimeState{
		cfg:    cfg.Clone(),
		repo:   repo,
		logger: logging.OrDiscard(logger),
	}
}

func LoadRuntimeState(ctx context.Context, repo ports.ConfigRepository, logger *zap.SugaredLogger) (*RuntimeState, error) {
	cfg, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load runtime config: %w", err)
	}

	return NewRuntimeState(cfg, repo, logger), nil
}

func (s *RuntimeState) Snapshot() domain.RuntimeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg.Clone()
}

func (s *RuntimeState) AnswerMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg.Chat.AnswerMode
}

// ToggleAnswerMode flips answer mode and returns the new value.
func (s *RuntimeState) ToggleAnswerMode(ctx context.Context) bool {
	var enabled bool
	s.update(ctx, func(cfg *domain.RuntimeConfig) {
		cfg.Chat.AnswerMode = !cfg.Chat.AnswerMode
		enabled = cfg.Chat.AnswerMode
	})
	return enabled
}

func (s *RuntimeState) RedPacket() domain.RedPacketConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg.RedPacket
}

func (s *RuntimeState) SetRPSLimit(ctx context.Context, limit int) {
	s.update(ctx, func(cfg *domain.RuntimeConfig) {
		cfg.RedPacket.RPSLimit = limit
	})
}

func (s *RuntimeState) SetRedPacketRate(ctx context.Context, seconds int) {
	s.update(ctx, func(cfg *domain.RuntimeConfig) {
		cfg.RedPacket.Rate = seconds
	})
}

// RememberAccount records ref and makes it the default login. Unlike the other
// mutators it is undone when it cannot be persisted.
func (s *RuntimeState) RememberAccount(ctx context.Context, ref domain.AccountRef) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	previous := s.cfg.Clone()
	s.cfg.UpsertAccount(ref)
	s.cfg.Auth = domain.AuthConfig{Username: ref.Name, SecretRef: ref.SecretRef}
	snapshot := s.cfg.Clone()
	s.mu.Unlock()

	if err := s.save(ctx, snapshot); err != nil {
		s.mu.Lock()
		s.cfg = previous
		s.mu.Unlock()
		return err
	}

	return nil
}

func (s *RuntimeState) update(ctx context.Context, mutate func(cfg *domain.RuntimeConfig)) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	mutate(&s.cfg)
	snapshot := s.cfg.Clone()
	s.mu.Unlock()

	if err := s.save(ctx, snapshot); err != nil {
		s.logger.Warnw("persist runtime config", "error", err)
	}
}

func (s *RuntimeState) save(ctx context.Context, cfg domain.RuntimeConfig) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save runtime config: %w", err)
	}
	return nil
}
