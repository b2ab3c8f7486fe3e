package store

import (
	"context"
	"sync"
	"time"

	"github.com/crisvieira/satisfaction-server/models"
	"github.com/crisvieira/satisfaction-server/services"
)

// MemoryStore keeps responses in process memory, insertion-ordered.
// Used by tests and as the fallback when no database is configured.
// All methods return copies, so callers can never mutate stored state.
type MemoryStore struct {
	mu        sync.RWMutex
	responses []models.SurveyResponse
	nextID    uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Append(ctx context.Context, sub services.ValidSubmission) (models.SurveyResponse, error) {
	if err := ctx.Err(); err != nil {
		return models.SurveyResponse{}, ErrPersistence
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.SurveyResponse{
		ID:              s.nextID,
		Instrument:      sub.Instrument,
		Score:           sub.Score,
		Category:        sub.Category,
		ContextTag:      sub.ContextTag,
		ContextResolved: sub.ContextResolved,
		Comment:         sub.Comment,
		ContactName:     sub.ContactName,
		ContactEmail:    sub.ContactEmail,
		ContactPhone:    sub.ContactPhone,
		ContactTaxID:    sub.ContactTaxID,
		SubmittedAt:     time.Now().UTC(),
	}
	s.nextID++
	s.responses = append(s.responses, rec)
	return rec, nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.SurveyResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SurveyResponse, len(s.responses))
	copy(out, s.responses)
	return out, nil
}

func (s *MemoryStore) ListByInstrument(ctx context.Context, instrument models.Instrument) ([]models.SurveyResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.SurveyResponse{}
	for _, r := range s.responses {
		if r.Instrument == instrument {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id uint) (models.SurveyResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.responses {
		if r.ID == id {
			return r, nil
		}
	}
	return models.SurveyResponse{}, ErrNotFound
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
