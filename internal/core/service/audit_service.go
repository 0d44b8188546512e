package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
)

// AuditService persists audit events delivered by the dispatcher workers.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if event.Subject == "" || event.Action == "" {
		return domain.ErrInvalidInput
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		s.logger.Error().Err(err).Str("action", event.Action).Msg("audit event insert failed")
		return err
	}
	return nil
}
