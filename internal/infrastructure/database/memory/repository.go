// Package memory provides an in-process detection store.  It backs the CLI
// and tests, and serves as the reference implementation of the application
// layer's DetectionStore port.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/portfolio"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/errors"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// DetectionStore keeps priced detections in memory, ordered by DetectedAt.
// Safe for concurrent use.
type DetectionStore struct {
	mu    sync.RWMutex
	items map[common.ID]portfolio.EnhancedDetection
}

// NewDetectionStore constructs an empty store.
func NewDetectionStore() *DetectionStore {
	return &DetectionStore{
		items: make(map[common.ID]portfolio.EnhancedDetection),
	}
}

// Save stores item keyed by its detection ID.  Saving an item with an
// existing ID overwrites the previous record.
func (s *DetectionStore) Save(_ context.Context, item portfolio.EnhancedDetection) error {
	if item.Detection.ID == "" {
		return errors.InvalidParam("detection must carry an ID before persistence")
	}
	s.mu.Lock()
	s.items[item.Detection.ID] = item
	s.mu.Unlock()
	return nil
}

// Get retrieves one detection by ID.
func (s *DetectionStore) Get(_ context.Context, id common.ID) (portfolio.EnhancedDetection, error) {
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return portfolio.EnhancedDetection{}, errors.New(errors.ErrCodeDetectionNotFound, "detection not found").
			WithDetail(string(id))
	}
	return item, nil
}

// List returns all detections within the half-open interval [r.From, r.To),
// ordered by DetectedAt ascending with ID as the tie-break.  A zero-valued
// range returns everything.
func (s *DetectionStore) List(_ context.Context, r common.DateRange) ([]portfolio.EnhancedDetection, error) {
	if err := r.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "invalid listing range")
	}
	unbounded := r.From.IsZero() && r.To.IsZero()

	s.mu.RLock()
	out := make([]portfolio.EnhancedDetection, 0, len(s.items))
	for _, item := range s.items {
		if unbounded || inRange(time.Time(item.Detection.DetectedAt), r) {
			out = append(out, item)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ti := time.Time(out[i].Detection.DetectedAt)
		tj := time.Time(out[j].Detection.DetectedAt)
		if ti.Equal(tj) {
			return out[i].Detection.ID < out[j].Detection.ID
		}
		return ti.Before(tj)
	})
	return out, nil
}

// Len returns the number of stored detections.
func (s *DetectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func inRange(t time.Time, r common.DateRange) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

//Personal.AI order the ending
