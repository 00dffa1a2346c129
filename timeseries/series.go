package timeseries

import (
	"fmt"
	"time"
)

// Series represents a single regularly indexed time series. When Timestamps
// is empty the series is indexed by 1-based position.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a positional time series from values.
func New(values []float64) *Series {
	return &Series{
		Values: values,
	}
}

// NewRegular creates a time series whose timestamps start at start and
// advance by step per observation.
func NewRegular(start time.Time, step time.Duration, values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = start.Add(time.Duration(i) * step)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps for %d values",
			ErrShapeMismatch, len(timestamps), len(values))
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Named returns a shallow copy of the series carrying name.
func (s *Series) Named(name string) *Series {
	return &Series{
		Timestamps: s.Timestamps,
		Values:     s.Values,
		Name:       name,
	}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Validate checks that the timestamp axis, if any, matches the values.
func (s *Series) Validate() error {
	if len(s.Timestamps) != 0 && len(s.Timestamps) != len(s.Values) {
		return fmt.Errorf("%w: %d timestamps for %d values",
			ErrShapeMismatch, len(s.Timestamps), len(s.Values))
	}
	return nil
}

// IndexAt returns the index of observation i: its timestamp when the series
// has a time axis, otherwise the position i+1.
func (s *Series) IndexAt(i int) Index {
	if len(s.Timestamps) == len(s.Values) && len(s.Timestamps) > 0 {
		return TimeIndex(s.Timestamps[i])
	}
	return PositionIndex(i + 1)
}
