package community

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/frabecrazy/digital-footprint/internal/footprint"
)

// Medians maps metric column names to their median across all stored
// records. Columns with no numeric samples are absent from the map.
type Medians map[string]float64

// Service saves completed results and answers median queries. Store
// failures are descriptive errors for the caller to downgrade into
// user-visible warnings; they are never retried here and must never abort
// the surrounding flow.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService creates a statistics service over the given store.
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Save appends one result with the given submission time.
func (s *Service) Save(ctx context.Context, result footprint.EmissionResult, at time.Time) error {
	rec := Record{
		Timestamp:  at.UTC(),
		Total:      result.Total,
		Devices:    result.Devices + result.EWaste,
		Activities: result.DigitalActivities,
		AITools:    result.AITools,
	}
	if err := s.store.Append(ctx, rec); err != nil {
		s.log.Warn().Err(err).Msg("failed to save community record")
		return fmt.Errorf("save community record: %w", err)
	}
	s.log.Debug().Float64("total", rec.Total).Msg("community record saved")
	return nil
}

// Medians computes the per-column median over every stored record. Returns
// ErrNoData when the store holds no records. Non-numeric cells were marked
// NaN by the store and are excluded per column, not treated as zero; a
// column with no numeric samples is simply absent from the result.
func (s *Service) Medians(ctx context.Context) (Medians, error) {
	records, err := s.store.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load community records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	columns := map[string][]float64{}
	for _, rec := range records {
		appendSample(columns, ColTotal, rec.Total)
		appendSample(columns, ColDevices, rec.Devices)
		appendSample(columns, ColActivities, rec.Activities)
		appendSample(columns, ColAITools, rec.AITools)
	}

	medians := Medians{}
	for col, samples := range columns {
		if len(samples) == 0 {
			continue
		}
		medians[col] = median(samples)
	}
	if len(medians) == 0 {
		return nil, ErrNoData
	}
	return medians, nil
}

func appendSample(columns map[string][]float64, col string, v float64) {
	if math.IsNaN(v) {
		return
	}
	columns[col] = append(columns[col], v)
}

// median returns the midpoint of the samples: the middle value for an odd
// count, the mean of the two middle values for an even count.
func median(samples []float64) float64 {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
