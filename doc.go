// Package tidyts reshapes time series data from wide to long format.
//
// Wide data keeps one column per series; long (tidy) data keeps one row per
// (index, series, value) observation, which is what plotting, joining and
// most tabular tools expect.
//
// # Quick Start
//
// Tidy a single series:
//
//	series := timeseries.New([]float64{10, 20, 30}).Named("pop")
//	tab, err := tidy.Tidy(series)
//
// Tidy an irregular, multi-column frame:
//
//	frame, err := timeseries.NewFrame(index,
//	    timeseries.Column{Name: "A", Values: a},
//	    timeseries.Column{Name: "B", Values: b},
//	)
//	table, err := tidy.TidyFrame(frame)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Series, Frame and Index input types
//   - tidy: the reshaper, its Table output and the Records fallback
package tidyts
