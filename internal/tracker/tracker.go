package tracker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/1M4nt0/solidtime-tracker/internal/api"
	"github.com/1M4nt0/solidtime-tracker/internal/notify"
	"github.com/1M4nt0/solidtime-tracker/internal/timeutil"
)

const defaultDescription = "Coding time from solidtime-tracker"

// EntryStore is the remote time-entry surface the tracker consumes.
type EntryStore interface {
	ListTimeEntries(ctx context.Context, orgID string, start, end time.Time) ([]api.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, orgID string, body api.CreateTimeEntryBody) (api.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, orgID, entryID string, body api.UpdateTimeEntryBody) (api.TimeEntry, error)
}

// Config is immutable for the tracker's lifetime.
type Config struct {
	OrgID            string
	MemberID         string
	ProjectID        string
	MaxOpenSliceSpan time.Duration
	BeatTimeout      time.Duration
}

// Tracker owns the session slice state machine: it turns activity
// notifications into slices and periodically reconciles them with the
// remote store. All state is guarded by mu; the mutex is held across
// remote calls, which serializes overlapping beats.
type Tracker struct {
	cfg          Config
	store        EntryStore
	notification notify.Spend

	mu           sync.Mutex
	current      *TimeSlice
	lastActivity time.Time
	lastSynced   time.Time
	paused       bool
	stopBeat     chan struct{}
	observers    []func(Event)

	now func() time.Time
}

func New(cfg Config, store EntryStore, notification notify.Spend) *Tracker {
	return &Tracker{
		cfg:          cfg,
		store:        store,
		notification: notification,
		now:          time.Now,
	}
}

// Active reports whether the beat timer is running.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopBeat != nil
}

// Paused reports whether tracking is intentionally suspended.
func (t *Tracker) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// TimeSpent reports the working time covered by the current slice.
func (t *Tracker) TimeSpent() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timeSpentLocked()
}

// Resume (re)initializes the tracker: runtime state is reset, the
// remote store is consulted for a resumable entry, and the beat timer
// starts. Emits init then resume.
func (t *Tracker) Resume(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.initLocked(ctx)
	t.paused = false
	t.notification.Enable()
	t.emitLocked(EventResume)
}

// Pause flushes the open slice with a final beat, stops the timer and
// suspends tracking until Resume.
func (t *Tracker) Pause(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deactivateLocked(ctx)
	t.paused = true
	t.notification.Disable()
	t.emitLocked(EventPause)
}

// Stop flushes and stops the timer without marking the tracker paused.
func (t *Tracker) Stop(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deactivateLocked(ctx)
	t.emitLocked(EventStop)
}

// Dispose stops the tracker and releases the notification sink.
// Terminal.
func (t *Tracker) Dispose(ctx context.Context) {
	t.Stop(ctx)
	t.notification.Dispose()
}

// OnActivity records observed activity. Ignored while paused. Starts a
// fresh slice when none is open; a repeated notification never replaces
// the current slice.
func (t *Tracker) OnActivity(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused {
		return
	}
	if t.stopBeat == nil {
		t.initLocked(ctx)
	}
	t.lastActivity = t.now()
	if t.current == nil {
		t.beginSliceLocked()
	}
	t.emitLocked(EventActivity)
}

func (t *Tracker) initLocked(ctx context.Context) {
	t.resetLocked()
	if err := t.reconcileLocked(ctx); err != nil {
		log.Printf("reconciliation failed for project %s, starting fresh: %v", t.cfg.ProjectID, err)
	}
	t.startBeatLocked(ctx)
	t.emitLocked(EventInit)
}

func (t *Tracker) resetLocked() {
	t.current = nil
	t.lastActivity = t.now()
	t.lastSynced = time.Time{}
}

// reconcileLocked restores the current slice from the latest remote
// entry recorded today, when that entry may be continued.
func (t *Tracker) reconcileLocked(ctx context.Context) error {
	now := t.now()
	entries, err := t.store.ListTimeEntries(ctx, t.cfg.OrgID, timeutil.StartOfDay(now), timeutil.EndOfDay(now))
	if err != nil {
		return err
	}

	entry := resumableEntry(entries, t.cfg.ProjectID, now, t.cfg.MaxOpenSliceSpan)
	if entry == nil {
		return nil
	}
	start, err := timeutil.ParseUTC(entry.Start)
	if err != nil {
		return err
	}

	slice := TimeSlice{StartedAt: start, RemoteID: entry.ID}
	t.setSliceLocked(&slice)
	return nil
}

func (t *Tracker) startBeatLocked(ctx context.Context) {
	if t.stopBeat != nil {
		return
	}
	stop := make(chan struct{})
	t.stopBeat = stop
	go t.beatLoop(ctx, stop)
}

func (t *Tracker) beatLoop(ctx context.Context, stop chan struct{}) {
	ticker := time.NewTicker(t.cfg.BeatTimeout)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

// tick runs one timer-driven beat, skipping entirely while idle: stale
// activity means the slice stays open and unsynced until work resumes.
func (t *Tracker) tick(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.now().Sub(t.lastActivity) > t.cfg.BeatTimeout {
		return
	}
	t.beatLocked(ctx)
}

// deactivateLocked stops the beat timer and performs one final flush.
// Calling it while already stopped is a logged no-op.
func (t *Tracker) deactivateLocked(ctx context.Context) {
	if t.stopBeat == nil {
		log.Printf("tracker already stopped for project %s", t.cfg.ProjectID)
		return
	}
	close(t.stopBeat)
	t.stopBeat = nil
	t.beatLocked(ctx)
}

func (t *Tracker) beginSliceLocked() {
	if t.current != nil {
		return
	}
	slice := TimeSlice{StartedAt: t.now()}
	t.setSliceLocked(&slice)
}

func (t *Tracker) setSliceLocked(slice *TimeSlice) {
	t.current = slice
	t.notification.Update(t.timeSpentLocked())
}

func (t *Tracker) endSliceLocked(end time.Time) {
	if t.current == nil {
		return
	}
	closed := t.current.WithEnd(end)
	t.setSliceLocked(&closed)
}

func (t *Tracker) timeSpentLocked() time.Duration {
	if t.current == nil {
		return 0
	}
	return t.current.TimeSpent(t.now())
}

// beatLocked is the sync beat protocol: close the slice, then extend
// the linked remote entry or create a new one. Remote failures are
// logged and never rolled back; the closed slice is retried on the next
// beat.
func (t *Tracker) beatLocked(ctx context.Context) {
	if t.current == nil {
		return
	}
	// Already synced and nothing happened since: no write to make.
	if t.current.RemoteID != "" && !t.lastSynced.IsZero() && !t.lastActivity.After(t.lastSynced) {
		return
	}

	now := t.now()
	t.endSliceLocked(now)

	if t.current.RemoteID != "" {
		t.emitLocked(EventUpdateTimeEntry)
		_, err := t.store.UpdateTimeEntry(ctx, t.cfg.OrgID, t.current.RemoteID, api.UpdateTimeEntryBody{
			End:         t.current.EndedAt,
			Description: defaultDescription,
		})
		if err != nil {
			log.Printf("beat: failed to update entry %s for project %s: %v", t.current.RemoteID, t.cfg.ProjectID, err)
			return
		}
	} else {
		t.emitLocked(EventCreateTimeEntry)
		created, err := t.store.CreateTimeEntry(ctx, t.cfg.OrgID, api.CreateTimeEntryBody{
			MemberID:    t.cfg.MemberID,
			ProjectID:   t.cfg.ProjectID,
			Start:       t.current.StartedAt,
			End:         t.current.EndedAt,
			Billable:    true,
			Description: defaultDescription,
		})
		if err != nil {
			log.Printf("beat: failed to create entry for project %s: %v", t.cfg.ProjectID, err)
			return
		}
		linked := t.current.WithRemoteID(created.ID)
		t.setSliceLocked(&linked)
	}
	t.lastSynced = now
}
