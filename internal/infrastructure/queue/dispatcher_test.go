package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

type stubAuditRepo struct {
	mu      sync.Mutex
	events  []domain.AccountEvent
	err     error
	release chan struct{} // when set, InsertEvent blocks until closed
}

func (r *stubAuditRepo) InsertEvent(_ context.Context, e *domain.AccountEvent) error {
	if r.release != nil {
		<-r.release
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *stubAuditRepo) snapshot() []domain.AccountEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AccountEvent(nil), r.events...)
}

func TestDispatcher_WritesAllEventsBeforeStop(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(3, repo, zerolog.Nop())
	d.Start()

	for i := int64(1); i <= 30; i++ {
		d.Record(domain.AccountEvent{AccountID: i, Action: domain.ActionAccountCreated})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}

	if got := len(repo.snapshot()); got != 30 {
		t.Fatalf("expected 30 written events, got %d", got)
	}
}

func TestDispatcher_PreservesPerAccountOrder(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())
	d.Start()

	actions := []domain.AccountAction{
		domain.ActionAccountCreated,
		domain.ActionAccountUpdated,
		domain.ActionAccountDeleted,
	}
	for _, a := range actions {
		d.Record(domain.AccountEvent{AccountID: 42, Action: a})
	}
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}

	events := repo.snapshot()
	if len(events) != len(actions) {
		t.Fatalf("expected %d events, got %d", len(actions), len(events))
	}
	for i, a := range actions {
		if events[i].Action != a {
			t.Fatalf("event %d: expected %s, got %s", i, a, events[i].Action)
		}
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	repo := &stubAuditRepo{release: make(chan struct{})}
	d := NewDispatcher(1, repo, zerolog.Nop())
	d.Start()

	// One event is held by the blocked worker, channelBuffer more fill the
	// queue, the rest are dropped without blocking.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+50; i++ {
			d.Record(domain.AccountEvent{AccountID: 1})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full queue")
	}

	close(repo.release)
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if got := len(repo.snapshot()); got > channelBuffer+1 {
		t.Fatalf("expected at most %d written events, got %d", channelBuffer+1, got)
	}
}

func TestDispatcher_RecordAfterStopIsDropped(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())
	d.Start()
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}

	d.Record(domain.AccountEvent{AccountID: 1})

	if len(repo.snapshot()) != 0 {
		t.Fatalf("expected no events after stop")
	}
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("second Stop returned error: %v", err)
	}
}

func TestDispatcher_WriteFailureDoesNotStopWorker(t *testing.T) {
	repo := &stubAuditRepo{err: errors.New("mongo unavailable")}
	d := NewDispatcher(1, repo, zerolog.Nop())
	d.Start()

	d.Record(domain.AccountEvent{AccountID: 1})
	d.Record(domain.AccountEvent{AccountID: 1})

	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
}

func TestDispatcher_StopTimesOut(t *testing.T) {
	repo := &stubAuditRepo{release: make(chan struct{})}
	d := NewDispatcher(1, repo, zerolog.Nop())
	d.Start()
	d.Record(domain.AccountEvent{AccountID: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := d.Stop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	close(repo.release)
}

func TestShardIndex(t *testing.T) {
	d := NewDispatcher(4, &stubAuditRepo{}, zerolog.Nop())

	if d.shardIndex(5) != d.shardIndex(5) {
		t.Fatalf("shard index must be deterministic")
	}
	for _, id := range []int64{0, 1, 7, -3, 1 << 40} {
		if idx := d.shardIndex(id); idx < 0 || idx >= 4 {
			t.Fatalf("shard index %d out of range for id %d", idx, id)
		}
	}
}
