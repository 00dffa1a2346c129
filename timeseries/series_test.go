package timeseries

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
	if len(s.Timestamps) != 0 {
		t.Errorf("Expected no timestamps, got %d", len(s.Timestamps))
	}

	for i := range values {
		idx := s.IndexAt(i)
		if idx.Kind() != Number || idx.Number() != float64(i+1) {
			t.Errorf("Expected position %d at index %d, got %v", i+1, i, idx)
		}
	}
}

func TestNewRegular(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewRegular(start, 24*time.Hour, []float64{10, 20, 30})

	expected := []string{"2020-01-01", "2020-01-02", "2020-01-03"}
	for i, want := range expected {
		idx := s.IndexAt(i)
		if idx.Kind() != Time {
			t.Fatalf("Expected time index at %d, got %s", i, idx.Kind())
		}
		if idx.String() != want {
			t.Errorf("Expected %s at index %d, got %s", want, i, idx)
		}
	}
}

func TestNewWithTimestamps(t *testing.T) {
	ts := []time.Time{
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	s, err := NewWithTimestamps(ts, []float64{1, 2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.IndexAt(1).Time().Equal(ts[1]) {
		t.Errorf("Expected %v, got %v", ts[1], s.IndexAt(1).Time())
	}

	_, err = NewWithTimestamps(ts, []float64{1, 2, 3})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}
}

func TestSeriesValidate(t *testing.T) {
	tests := []struct {
		name    string
		series  *Series
		wantErr error
	}{
		{"positional", New([]float64{1, 2}), nil},
		{"empty", New(nil), nil},
		{"aligned", &Series{Timestamps: make([]time.Time, 2), Values: []float64{1, 2}}, nil},
		{"short axis", &Series{Timestamps: make([]time.Time, 1), Values: []float64{1, 2}}, ErrShapeMismatch},
		{"long axis", &Series{Timestamps: make([]time.Time, 3), Values: []float64{1, 2}}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNamed(t *testing.T) {
	s := New([]float64{1, 2, 3})
	named := s.Named("pop")

	if named.Name != "pop" {
		t.Errorf("Expected name pop, got %q", named.Name)
	}
	if s.Name != "" {
		t.Errorf("Named modified the receiver: %q", s.Name)
	}
	if named.Len() != s.Len() {
		t.Errorf("Expected length %d, got %d", s.Len(), named.Len())
	}
}

func TestMissing(t *testing.T) {
	if !IsMissing(Missing()) {
		t.Error("Missing() should be reported as missing")
	}
	if IsMissing(0) {
		t.Error("0 should not be reported as missing")
	}
}
