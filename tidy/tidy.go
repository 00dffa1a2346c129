package tidy

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/sartorproj/tidyts/timeseries"
)

// Framer is implemented by values that can present themselves as a frame.
// Tidy pivots any Framer like a *timeseries.Frame.
type Framer interface {
	Frame() (*timeseries.Frame, error)
}

// Tidy reshapes input into long format.
//
// Recognized inputs are *timeseries.Series, *timeseries.Frame (and their
// values), []float64 and Framer; they produce a *Table. nil and empty inputs
// produce an empty *Table. Any other input is logged as a warning and
// coerced into *Records, whose columns depend on the input.
//
// Malformed inputs return an error wrapping timeseries.ErrShapeMismatch,
// ErrUnnamedColumn or ErrDuplicateColumn.
func Tidy(input any, opts ...Option) (Tabular, error) {
	o := gatherOptions(opts)

	switch v := input.(type) {
	case nil:
		return &Table{}, nil
	case *timeseries.Series:
		if v == nil {
			return &Table{}, nil
		}
		return tabular(tidySeries(v, o))
	case timeseries.Series:
		return tabular(tidySeries(&v, o))
	case []float64:
		return tabular(tidySeries(timeseries.New(v), o))
	case *timeseries.Frame:
		if v == nil {
			return &Table{}, nil
		}
		return tabular(tidyFrame(v))
	case timeseries.Frame:
		return tabular(tidyFrame(&v))
	case Framer:
		if isNil(v) {
			return &Table{}, nil
		}
		f, err := v.Frame()
		if err != nil {
			return nil, fmt.Errorf("tidy: %T: %w", input, err)
		}
		if f == nil {
			return &Table{}, nil
		}
		return tabular(tidyFrame(f))
	}

	if isNil(input) {
		return &Table{}, nil
	}
	o.warnLogger().Warn("unrecognized input type, coercing to records",
		zap.String("type", fmt.Sprintf("%T", input)),
		zap.String("fallback", "records"))
	return coerce(input), nil
}

// TidySeries reshapes a single series. An unnamed series is labeled with the
// default series name.
func TidySeries(s *timeseries.Series, opts ...Option) (*Table, error) {
	if s == nil {
		return &Table{}, nil
	}
	return tidySeries(s, gatherOptions(opts))
}

// TidyFrame pivots every column of f into long format. No option currently
// affects frames; the parameter mirrors TidySeries.
func TidyFrame(f *timeseries.Frame, _ ...Option) (*Table, error) {
	if f == nil {
		return &Table{}, nil
	}
	return tidyFrame(f)
}

func tidySeries(s *timeseries.Series, o options) (*Table, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("tidy: series %q: %w", s.Name, err)
	}
	name := s.Name
	if name == "" {
		name = o.defaultName
	}

	rows := make([]Row, s.Len())
	for i, v := range s.Values {
		rows[i] = Row{Index: s.IndexAt(i), Series: name, Value: v}
	}
	return &Table{Rows: rows}, nil
}

// tidyFrame emits rows index-major: every column at index 0, then index 1.
func tidyFrame(f *timeseries.Frame) (*Table, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("tidy: frame: %w", err)
	}

	rows := make([]Row, 0, f.Len()*f.Width())
	for i, idx := range f.Index {
		for _, c := range f.Columns {
			rows = append(rows, Row{Index: idx, Series: c.Name, Value: c.Values[i]})
		}
	}
	return &Table{Rows: rows}, nil
}

// tabular keeps a failed reshape from returning a non-nil interface around a
// nil *Table.
func tabular(t *Table, err error) (Tabular, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
