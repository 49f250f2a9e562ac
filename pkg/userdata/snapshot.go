package userdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/finsight/finsight/internal/event_bus"
	"github.com/finsight/finsight/pkg/prediction"
	log "github.com/sirupsen/logrus"
)

// SnapshotStore keeps a last-known-good user data document on disk, one JSON
// file per user, in the same shape the data endpoint serves. It is the
// tertiary source of the resolution chain and survives restarts of both this
// service and the model service.
type SnapshotStore struct {
	dir string
	mu  sync.Mutex
}

func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

// Load reads a user's snapshot. A missing file means the user has no
// snapshot yet and is not an error.
func (s *SnapshotStore) Load(userUid string) (prediction.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath(userUid))
	if err != nil {
		if os.IsNotExist(err) {
			return prediction.Bundle{}, nil
		}
		return prediction.Bundle{}, fmt.Errorf("could not read snapshot: %w", err)
	}

	var dto prediction.BundleDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return prediction.Bundle{}, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return prediction.BundleFromDTO(dto)
}

// Save overwrites a user's snapshot with the latest record. The write goes
// through a temp file and a rename so a crash cannot leave a half-written
// document behind.
func (s *SnapshotStore) Save(userUid string, record prediction.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("could not create snapshot directory: %w", err)
	}

	dto := prediction.BundleToDTO(prediction.Bundle{Records: []prediction.Record{record}})
	data, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}

	path := s.filePath(userUid)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("could not replace snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) filePath(userUid string) string {
	return filepath.Join(s.dir, userUid+".json")
}

// RegisterSnapshotWriter refreshes a user's snapshot whenever a prediction is
// recorded, and drops that user's cached bundle so the next read sees the
// new record.
func RegisterSnapshotWriter(bus *event_bus.EventBus, store *SnapshotStore, resolver *CachingResolver) {
	event_bus.SubscribeTyped(bus, event_bus.PredictionRecorded, func(e event_bus.EventT[prediction.RecordedEvent]) error {
		if err := store.Save(e.Data.UserUid, e.Data.Record); err != nil {
			log.Errorf("could not update snapshot for user %s: %v", e.Data.UserUid, err)
			return err
		}
		resolver.Invalidate(e.Data.UserUid)
		return nil
	})
}
