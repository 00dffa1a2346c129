// Package tidy reshapes wide time series data into long format.
//
// A wide dataset has one column per series and one row per index position.
// Tidy turns it into one row per (index, series) pair:
//
//	index       series  value
//	2003-02-02  A       1
//	2003-02-02  B       3
//	2003-02-04  A       2
//	2003-02-04  B       4
//
// # Inputs
//
// Tidy dispatches on the dynamic type of its argument:
//
//   - nil, typed nil and empty inputs yield an empty *Table.
//   - *timeseries.Series and []float64 yield one row per observation. The
//     series name is used when set, DefaultSeriesName otherwise.
//   - *timeseries.Frame and any Framer yield one row per index position and
//     column, in index order, columns in declaration order.
//   - Anything else is logged as a warning and coerced into *Records.
//
// TidySeries and TidyFrame skip the dispatch when the input type is known.
//
// # Guarantees
//
// For recognized inputs with n index positions and k series the result has
// exactly n*k rows. Within each series, rows follow the input index order.
// Values and index values are copied unchanged; missing values stay NaN.
// Misaligned inputs fail with an error wrapping timeseries.ErrShapeMismatch.
//
// # Fallback
//
// Unrecognized values are interpreted as a record sequence: slices of
// structs or maps become one record per element, maps of equal-length slices
// become columns, and scalars become a single record. The schema of
// *Records is unspecified and should be treated as input-dependent.
//
// # Options
//
//	logger := zap.NewExample()
//	tab, err := tidy.Tidy(input,
//	    tidy.WithLogger(logger),
//	    tidy.WithDefaultName("y"),
//	)
package tidy
