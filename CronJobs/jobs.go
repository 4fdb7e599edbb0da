package CronJobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"TaskBoard/Models"
)

// SnapshotSweeper periodically removes snapshots whose session cookie has
// expired. Such snapshots can no longer be reached by any client.
type SnapshotSweeper struct {
	cronScheduler *cron.Cron
	store         Models.SnapshotStore
	sessionTTL    time.Duration
	now           func() time.Time
	jobID         cron.EntryID
}

// NewSnapshotSweeper creates a sweeper for store. Snapshots loaded more than
// sessionTTL ago are removed.
func NewSnapshotSweeper(store Models.SnapshotStore, sessionTTL time.Duration) *SnapshotSweeper {
	return &SnapshotSweeper{
		cronScheduler: cron.New(cron.WithSeconds()),
		store:         store,
		sessionTTL:    sessionTTL,
		now:           time.Now,
	}
}

// Start schedules the sweep. Format: "0 0 * * * *" = every hour on the hour
func (s *SnapshotSweeper) Start(schedule string) error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, func() {
		s.RunSweep(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error scheduling snapshot sweep: %w", err)
	}

	s.cronScheduler.Start()
	log.Printf("Snapshot sweeper started with schedule %q\n", schedule)
	return nil
}

// Stop terminates the scheduler and waits for a running sweep to finish.
func (s *SnapshotSweeper) Stop() {
	if s.cronScheduler != nil {
		<-s.cronScheduler.Stop().Done()
		log.Println("Snapshot sweeper stopped")
	}
}

// UpdateSchedule replaces the current schedule.
func (s *SnapshotSweeper) UpdateSchedule(schedule string) error {
	jobID, err := s.cronScheduler.AddFunc(schedule, func() {
		s.RunSweep(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	s.cronScheduler.Remove(s.jobID)
	s.jobID = jobID
	log.Printf("Snapshot sweep schedule updated to: %s\n", schedule)
	return nil
}

// RunSweep removes expired snapshots once and returns how many were removed.
func (s *SnapshotSweeper) RunSweep(ctx context.Context) int64 {
	cutoff := s.now().Add(-s.sessionTTL)
	removed, err := s.store.ClearOlderThan(ctx, cutoff)
	if err != nil {
		log.Printf("Error in snapshot sweep: %v\n", err)
		return 0
	}
	if removed > 0 {
		log.Printf("Removed %d expired snapshots\n", removed)
	}
	return removed
}
