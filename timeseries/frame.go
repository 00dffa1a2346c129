package timeseries

import "fmt"

// Column is one named series of a Frame.
type Column struct {
	Name   string
	Values []float64
}

// Frame holds one or more series sharing an explicit, possibly irregular
// index. Columns keep their declaration order.
type Frame struct {
	Index   []Index
	Columns []Column
}

// NewFrame builds a frame and validates its shape.
func NewFrame(index []Index, columns ...Column) (*Frame, error) {
	f := &Frame{Index: index, Columns: columns}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// FrameOf lifts a series into a single-column frame named after the series.
// The series must be named: an unnamed series fails with ErrUnnamedColumn.
// Use Series.Named to label it first.
func FrameOf(s *Series) (*Frame, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	index := make([]Index, s.Len())
	for i := range index {
		index[i] = s.IndexAt(i)
	}
	return NewFrame(index, Column{Name: s.Name, Values: s.Values})
}

// Len returns the number of index positions.
func (f *Frame) Len() int {
	return len(f.Index)
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.Columns)
}

// ColumnNames returns the column names in declaration order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks that every column is named, unique, and aligned with the
// index.
func (f *Frame) Validate() error {
	seen := make(map[string]struct{}, len(f.Columns))
	for i, c := range f.Columns {
		if c.Name == "" {
			return fmt.Errorf("%w: column %d", ErrUnnamedColumn, i)
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		seen[c.Name] = struct{}{}
		if len(c.Values) != len(f.Index) {
			return fmt.Errorf("%w: column %q has %d values for %d index positions",
				ErrShapeMismatch, c.Name, len(c.Values), len(f.Index))
		}
	}
	return nil
}
