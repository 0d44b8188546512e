package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffhub/hrms/internal/core/domain"
)

type recordingService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (s *recordingService) Process(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingService) snapshot() []domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(domain.AuditEvent{
			Subject: "alice@example.com",
			Action:  domain.AuditActionLogin,
			Outcome: domain.AuditOutcomeSuccess,
		})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == 10 })
}

func TestDispatcher_SameSubjectOrdered(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	outcomes := []string{
		domain.AuditOutcomeRejected,
		domain.AuditOutcomeRejected,
		domain.AuditOutcomeSuccess,
	}
	for _, o := range outcomes {
		d.Enqueue(domain.AuditEvent{
			Subject: "bob@example.com",
			Action:  domain.AuditActionLogin,
			Outcome: o,
		})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == 3 })

	got := svc.snapshot()
	for i, o := range outcomes {
		if got[i].Outcome != o {
			t.Fatalf("event %d out of order: got %q, want %q", i, got[i].Outcome, o)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())

	first := d.shardIndex("carol@example.com")
	for i := 0; i < 100; i++ {
		if d.shardIndex("carol@example.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
