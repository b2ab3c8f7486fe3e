package store

import (
	"context"
	"errors"

	"github.com/crisvieira/satisfaction-server/models"
	"github.com/crisvieira/satisfaction-server/services"
)

var (
	// ErrNotFound is returned by GetByID for an unknown id.
	ErrNotFound = errors.New("response not found")
	// ErrPersistence wraps any backing-medium failure. Callers must not
	// assume the record was stored.
	ErrPersistence = errors.New("persistence failure")
)

// ResponseStore is the append-only record store. Records are immutable
// once appended; there is no update or delete path. Append assigns the
// id and timestamp atomically: an id returned to a caller always refers
// to a fully written record.
type ResponseStore interface {
	Append(ctx context.Context, sub services.ValidSubmission) (models.SurveyResponse, error)
	ListAll(ctx context.Context) ([]models.SurveyResponse, error)
	ListByInstrument(ctx context.Context, instrument models.Instrument) ([]models.SurveyResponse, error)
	GetByID(ctx context.Context, id uint) (models.SurveyResponse, error)
	Ping(ctx context.Context) error
}
