package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crisvieira/satisfaction-server/models"
	"github.com/crisvieira/satisfaction-server/services"
)

func npsSubmission(score int) services.ValidSubmission {
	return services.ValidSubmission{
		Instrument:      models.InstrumentNPS,
		Score:           score,
		Category:        services.ClassifyNPS(score),
		ContextTag:      "itajai",
		ContextResolved: true,
	}
}

func TestMemoryStoreAppendAssignsIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.Append(ctx, npsSubmission(9))
	require.NoError(t, err)
	second, err := s.Append(ctx, npsSubmission(3))
	require.NoError(t, err)

	require.Equal(t, uint(1), first.ID)
	require.Equal(t, uint(2), second.ID)
	require.False(t, first.SubmittedAt.IsZero())
	require.Equal(t, models.CategoryPromoter, first.Category)
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	const workers = 50

	var wg sync.WaitGroup
	ids := make(chan uint, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			rec, err := s.Append(ctx, npsSubmission(score%11))
			require.NoError(t, err)
			ids <- rec.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[uint]bool{}
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, workers)

	records, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, workers)

	// insertion order == ascending id order
	for i := 1; i < len(records); i++ {
		require.Greater(t, records[i].ID, records[i-1].ID)
	}
}

func TestMemoryStoreGetByID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	rec, err := s.Append(ctx, npsSubmission(7))
	require.NoError(t, err)

	got, err := s.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec, got)

	_, err = s.GetByID(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListByInstrument(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Append(ctx, npsSubmission(9))
	require.NoError(t, err)
	_, err = s.Append(ctx, services.ValidSubmission{
		Instrument: models.InstrumentCSAT,
		Score:      4,
		Category:   services.ClassifyCSAT(4),
		ContextTag: "purchase",
	})
	require.NoError(t, err)

	nps, err := s.ListByInstrument(ctx, models.InstrumentNPS)
	require.NoError(t, err)
	require.Len(t, nps, 1)
	require.Equal(t, models.InstrumentNPS, nps[0].Instrument)
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Append(ctx, npsSubmission(5))
	require.NoError(t, err)

	records, err := s.ListAll(ctx)
	require.NoError(t, err)
	records[0].Score = 0
	records[0].Comment = "mutated"

	fresh, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, fresh[0].Score)
	require.Empty(t, fresh[0].Comment)
}
