// Package sync keeps a named set of remote resources fresh by re-invoking
// their fetch functions on fixed intervals. Tasks are independent: one
// task's failure never affects another, and a slow fetch never overlaps
// with the next tick of the same task.
package sync

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stadtwache/patrol/internal/logging"
)

// Task is one named periodic refresh job. Fn talks to the backend and
// updates local state; it must honor ctx cancellation.
type Task struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Snapshot is the observable state of a registered task.
type Snapshot struct {
	LastRun   time.Time
	LastError error
	Runs      int
	Skipped   int
}

type task struct {
	Task

	cancel  context.CancelFunc
	done    chan struct{}
	running atomic.Bool

	mu   sync.Mutex
	snap Snapshot
}

// Poller owns all registered tasks. The zero value is not usable; use New.
type Poller struct {
	mu    sync.Mutex
	tasks map[string]*task
	log   logging.Logger
}

func New(log logging.Logger) *Poller {
	if log == nil {
		log = logging.Nop()
	}
	return &Poller{tasks: make(map[string]*task), log: log}
}

// Register schedules t; its first tick fires after t.Interval. Registering
// a name that is already present replaces the old task (its timer is
// cancelled first) — registration is idempotent per name, never additive.
func (p *Poller) Register(t Task) {
	p.mu.Lock()
	old := p.tasks[t.Name]
	ctx, cancel := context.WithCancel(context.Background())
	nt := &task{Task: t, cancel: cancel, done: make(chan struct{})}
	p.tasks[t.Name] = nt
	p.mu.Unlock()

	if old != nil {
		old.stop()
	}

	p.log.Debug(ctx, "task registered", "name", t.Name, "interval", t.Interval)
	go p.run(ctx, nt)
}

// Unregister cancels the task's timer. An in-flight fetch is allowed to
// finish; its result is discarded. No-op for unknown names.
func (p *Poller) Unregister(name string) {
	p.mu.Lock()
	t := p.tasks[name]
	delete(p.tasks, name)
	p.mu.Unlock()

	if t != nil {
		t.stop()
	}
}

// UnregisterAll cancels every task. Invoked by the session manager on
// logout.
func (p *Poller) UnregisterAll() {
	p.mu.Lock()
	all := p.tasks
	p.tasks = make(map[string]*task)
	p.mu.Unlock()

	for _, t := range all {
		t.stop()
	}
}

// Names returns the names of the currently registered tasks.
func (p *Poller) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.tasks))
	for name := range p.tasks {
		names = append(names, name)
	}
	return names
}

// Status returns the snapshot for a task, false for unknown names.
func (p *Poller) Status(name string) (Snapshot, bool) {
	p.mu.Lock()
	t := p.tasks[name]
	p.mu.Unlock()

	if t == nil {
		return Snapshot{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap, true
}

func (t *task) stop() {
	t.cancel()
	<-t.done
}

func (p *Poller) run(ctx context.Context, t *task) {
	defer close(t.done)

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx, t)
		}
	}
}

// tick launches one execution unless the previous one is still running, in
// which case the tick is skipped entirely: no queueing, no overlap.
func (p *Poller) tick(ctx context.Context, t *task) {
	if !t.running.CompareAndSwap(false, true) {
		t.mu.Lock()
		t.snap.Skipped++
		t.mu.Unlock()
		p.log.Debug(ctx, "tick skipped, previous run still active", "name", t.Name)
		return
	}

	go func() {
		defer t.running.Store(false)

		err := t.Fn(ctx)

		t.mu.Lock()
		t.snap.LastRun = time.Now()
		t.snap.Runs++
		t.snap.LastError = err
		t.mu.Unlock()

		if err != nil && ctx.Err() == nil {
			p.log.Warn(ctx, "refresh failed", "name", t.Name, "error", err)
		}
	}()
}
