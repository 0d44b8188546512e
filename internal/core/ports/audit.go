package ports

import (
	"context"

	"github.com/staffhub/hrms/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}

// AuditService validates and persists a single audit event. Called by the
// dispatcher workers, never directly from request handlers.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink is what request-path code sees: a non-blocking enqueue.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}

// NopAuditSink discards events; used in tests and when auditing is
// disabled.
type NopAuditSink struct{}

func (NopAuditSink) Enqueue(domain.AuditEvent) {}
