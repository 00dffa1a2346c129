package timeseries

import (
	"math"
	"strconv"
	"time"
)

// IndexKind identifies which field of an Index carries its value.
type IndexKind uint8

const (
	// Number is a numeric or positional index.
	Number IndexKind = iota
	// Time is a date or timestamp index.
	Time
	// Label is an opaque ordinal label.
	Label
)

// String returns the kind name.
func (k IndexKind) String() string {
	switch k {
	case Number:
		return "number"
	case Time:
		return "time"
	case Label:
		return "label"
	default:
		return "unknown"
	}
}

// Index is one position on the axis shared by all series of a dataset.
// The zero value is the numeric index 0.
type Index struct {
	kind  IndexKind
	num   float64
	ts    time.Time
	label string
}

// NumberIndex returns a numeric index.
func NumberIndex(v float64) Index {
	return Index{kind: Number, num: v}
}

// PositionIndex returns a numeric index for an integer position.
func PositionIndex(i int) Index {
	return Index{kind: Number, num: float64(i)}
}

// TimeIndex returns a time index.
func TimeIndex(t time.Time) Index {
	return Index{kind: Time, ts: t}
}

// LabelIndex returns a label index.
func LabelIndex(s string) Index {
	return Index{kind: Label, label: s}
}

// Kind reports which kind of value the index holds.
func (x Index) Kind() IndexKind { return x.kind }

// Number returns the numeric value, or NaN for other kinds.
func (x Index) Number() float64 {
	if x.kind != Number {
		return math.NaN()
	}
	return x.num
}

// Time returns the time value, or the zero time for other kinds.
func (x Index) Time() time.Time {
	if x.kind != Time {
		return time.Time{}
	}
	return x.ts
}

// Label returns the label, or "" for other kinds.
func (x Index) Label() string {
	if x.kind != Label {
		return ""
	}
	return x.label
}

// Value returns the underlying value as float64, time.Time or string.
func (x Index) Value() any {
	switch x.kind {
	case Time:
		return x.ts
	case Label:
		return x.label
	default:
		return x.num
	}
}

// Equal reports whether two indexes have the same kind and value.
// Times are compared with time.Time.Equal.
func (x Index) Equal(o Index) bool {
	if x.kind != o.kind {
		return false
	}
	switch x.kind {
	case Time:
		return x.ts.Equal(o.ts)
	case Label:
		return x.label == o.label
	default:
		return x.num == o.num || (math.IsNaN(x.num) && math.IsNaN(o.num))
	}
}

// String formats the index. Dates at UTC midnight print as 2006-01-02.
func (x Index) String() string {
	switch x.kind {
	case Time:
		if x.ts.Location() == time.UTC && x.ts.Equal(x.ts.Truncate(24*time.Hour)) {
			return x.ts.Format(time.DateOnly)
		}
		return x.ts.Format(time.RFC3339Nano)
	case Label:
		return x.label
	default:
		return strconv.FormatFloat(x.num, 'f', -1, 64)
	}
}

// Missing returns the marker used for missing observations.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether v is the missing marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
