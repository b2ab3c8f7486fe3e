package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/crisvieira/satisfaction-server/models"
	"github.com/crisvieira/satisfaction-server/services"
)

const defaultTimeout = 5 * time.Second

// GormStore persists responses in PostgreSQL. Id assignment rides on
// the primary key sequence, so concurrent appends never collide. Every
// call runs under a bounded timeout; a slow database surfaces as
// ErrPersistence instead of hanging the request.
type GormStore struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, timeout: defaultTimeout}
}

func (s *GormStore) Append(ctx context.Context, sub services.ValidSubmission) (models.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rec := models.SurveyResponse{
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
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.SurveyResponse{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return rec, nil
}

func (s *GormStore) ListAll(ctx context.Context) ([]models.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var records []models.SurveyResponse
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return records, nil
}

func (s *GormStore) ListByInstrument(ctx context.Context, instrument models.Instrument) ([]models.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var records []models.SurveyResponse
	if err := s.db.WithContext(ctx).
		Where("instrument = ?", instrument).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return records, nil
}

func (s *GormStore) GetByID(ctx context.Context, id uint) (models.SurveyResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rec models.SurveyResponse
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SurveyResponse{}, ErrNotFound
		}
		return models.SurveyResponse{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return rec, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
