// Package timeseries provides the time series shapes understood by package
// tidy.
//
// This package includes the Series type for a single regularly indexed
// series, the Frame type for one or more series sharing an explicit index,
// and the Index type for the shared axis.
//
// # Creating a Series
//
// Create a positional series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values).Named("sales")
//
// Or attach a regular time axis:
//
//	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
//	series := timeseries.NewRegular(start, 24*time.Hour, values)
//
// # Creating a Frame
//
// An irregular, multi-column dataset:
//
//	frame, err := timeseries.NewFrame(
//	    []timeseries.Index{
//	        timeseries.LabelIndex("2003-02-02"),
//	        timeseries.LabelIndex("2003-02-04"),
//	    },
//	    timeseries.Column{Name: "A", Values: []float64{1, 2}},
//	    timeseries.Column{Name: "B", Values: []float64{3, 4}},
//	)
//
// # Missing Values
//
// Missing observations are stored as NaN. Use Missing to produce the marker
// and IsMissing to test for it.
//
// # Validation
//
// Series.Validate and Frame.Validate report ErrShapeMismatch,
// ErrUnnamedColumn and ErrDuplicateColumn; match them with errors.Is.
package timeseries
