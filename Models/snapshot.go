package Models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"TaskBoard/Tasks"
)

// ErrNoSnapshot means the session has not loaded a spreadsheet yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Snapshot is the last dataset a session loaded, with the file it came from.
type Snapshot struct {
	ID         uint           `json:"-" gorm:"primaryKey"`
	SessionKey string         `json:"-" gorm:"not null;uniqueIndex;size:64"`
	FileName   string         `json:"fileName"`
	FileSize   int64          `json:"fileSize"`
	LoadedAt   time.Time      `json:"loadedAt" gorm:"not null;index"`
	Headers    datatypes.JSON `json:"headers"`
	Tasks      datatypes.JSON `json:"tasks"`
	Summary    datatypes.JSON `json:"summary"`
}

// NewSnapshot encodes dataset for storage.
func NewSnapshot(fileName string, fileSize int64, dataset Tasks.Dataset) (Snapshot, error) {
	headers := dataset.Headers
	if headers == nil {
		headers = []string{}
	}
	tasks := dataset.Tasks
	if tasks == nil {
		tasks = []Tasks.Record{}
	}

	headersJSON, err := json.Marshal(headers)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encoding headers: %w", err)
	}
	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encoding tasks: %w", err)
	}
	summaryJSON, err := json.Marshal(dataset.Summary)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encoding summary: %w", err)
	}

	return Snapshot{
		FileName: fileName,
		FileSize: fileSize,
		Headers:  datatypes.JSON(headersJSON),
		Tasks:    datatypes.JSON(tasksJSON),
		Summary:  datatypes.JSON(summaryJSON),
	}, nil
}

// Dataset decodes the stored dataset. The summary is recomputed from the
// stored tasks rather than trusted.
func (s Snapshot) Dataset() (Tasks.Dataset, error) {
	var dataset Tasks.Dataset
	if err := json.Unmarshal(s.Headers, &dataset.Headers); err != nil {
		return Tasks.Dataset{}, fmt.Errorf("decoding headers: %w", err)
	}
	if err := json.Unmarshal(s.Tasks, &dataset.Tasks); err != nil {
		return Tasks.Dataset{}, fmt.Errorf("decoding tasks: %w", err)
	}
	dataset.Summary = Tasks.Summarize(dataset.Tasks)
	return dataset, nil
}

// SnapshotStore keeps one snapshot per session key.
type SnapshotStore interface {
	// Load returns ErrNoSnapshot when key has nothing stored.
	Load(ctx context.Context, key string) (Snapshot, error)
	// Save replaces whatever key had stored before.
	Save(ctx context.Context, key string, snapshot Snapshot) error
	Clear(ctx context.Context, key string) error
	// ClearOlderThan removes snapshots loaded before cutoff and reports how
	// many were removed.
	ClearOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type snapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore returns a SnapshotStore backed by db.
func NewSnapshotStore(db *gorm.DB) SnapshotStore {
	return &snapshotStore{db: db}
}

func (s *snapshotStore) Load(ctx context.Context, key string) (Snapshot, error) {
	var snapshot Snapshot
	err := s.db.WithContext(ctx).Where("session_key = ?", key).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *snapshotStore) Save(ctx context.Context, key string, snapshot Snapshot) error {
	snapshot.ID = 0
	snapshot.SessionKey = key
	if snapshot.LoadedAt.IsZero() {
		snapshot.LoadedAt = time.Now()
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_key = ?", key).Delete(&Snapshot{}).Error; err != nil {
			return err
		}
		return tx.Create(&snapshot).Error
	})
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Clear(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("session_key = ?", key).Delete(&Snapshot{}).Error; err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) ClearOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("loaded_at < ?", cutoff).Delete(&Snapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("clearing expired snapshots: %w", result.Error)
	}
	return result.RowsAffected, nil
}
