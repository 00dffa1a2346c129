package tidy

import (
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// valueColumn names the single column of records built from scalars and
// non-record sequences.
const valueColumn = "value"

// Records is the best-effort table produced for unrecognized inputs. Its
// columns depend entirely on the input and carry no (index, series, value)
// guarantees.
type Records struct {
	Names  []string
	Values [][]any
}

// Columns returns the column names.
func (r *Records) Columns() []string {
	return append([]string(nil), r.Names...)
}

// Len returns the number of records.
func (r *Records) Len() int {
	return len(r.Values)
}

// Record returns record i.
func (r *Records) Record(i int) []any {
	return r.Values[i]
}

// String renders the records with aligned columns. Absent cells print as NA.
func (r *Records) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	w.Write([]byte(strings.Join(r.Names, "\t") + "\n"))
	for _, rec := range r.Values {
		cells := make([]string, len(rec))
		for i, v := range rec {
			if v == nil {
				cells[i] = "NA"
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		w.Write([]byte(strings.Join(cells, "\t") + "\n"))
	}
	w.Flush()
	return b.String()
}

// coerce interprets an arbitrary value as a record sequence by round-tripping
// it through YAML, which preserves field and key order. It never fails and
// always returns at least one record: values YAML cannot represent, or that
// yield no records, become a single stringified record. Cyclic values are
// recorded by type name only, since both YAML and fmt would recurse forever.
func coerce(input any) *Records {
	if cyclic(reflect.ValueOf(input), make(map[ref]struct{}), 0) {
		return singleRecord(fmt.Sprintf("%T", input))
	}
	recs, err := coerceYAML(input)
	if err != nil || len(recs.Names) == 0 || len(recs.Values) == 0 {
		return singleRecord(fmt.Sprint(input))
	}
	return recs
}

func singleRecord(v any) *Records {
	return &Records{
		Names:  []string{valueColumn},
		Values: [][]any{{v}},
	}
}

// maxCoerceDepth bounds the structural walk; deeper values count as cyclic.
const maxCoerceDepth = 1000

// ref identifies a pointer, map or slice on the walk path. The type is part
// of the key because a struct and its first field share an address.
type ref struct {
	addr uintptr
	typ  reflect.Type
}

// cyclic reports whether v refers back to a pointer, map or slice already on
// the current path.
func cyclic(v reflect.Value, path map[ref]struct{}, depth int) bool {
	if depth > maxCoerceDepth {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		key := ref{addr: v.Pointer(), typ: v.Type()}
		if _, ok := path[key]; ok {
			return true
		}
		path[key] = struct{}{}
		defer delete(path, key)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return cyclic(v.Elem(), path, depth+1)
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if cyclic(iter.Key(), path, depth+1) || cyclic(iter.Value(), path, depth+1) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if cyclic(v.Index(i), path, depth+1) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if cyclic(v.Field(i), path, depth+1) {
				return true
			}
		}
	}
	return false
}

func coerceYAML(input any) (recs *Records, err error) {
	// yaml.Marshal panics on channels and funcs instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			recs, err = nil, fmt.Errorf("tidy: cannot coerce %T: %v", input, r)
		}
	}()

	out, err := yaml.Marshal(input)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(out, &doc); err != nil {
		return nil, err
	}
	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return &Records{}, nil
		}
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		return sequenceRecords(node)
	case yaml.MappingNode:
		return mappingRecords(node)
	default:
		v, err := decodeNode(node)
		if err != nil {
			return nil, err
		}
		return &Records{Names: []string{valueColumn}, Values: [][]any{{v}}}, nil
	}
}

// sequenceRecords turns a sequence of mappings into one record per element,
// and any other sequence into a single value column.
func sequenceRecords(seq *yaml.Node) (*Records, error) {
	allMappings := len(seq.Content) > 0
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			allMappings = false
			break
		}
	}

	if !allMappings {
		recs := &Records{Names: []string{valueColumn}}
		for _, item := range seq.Content {
			v, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			recs.Values = append(recs.Values, []any{v})
		}
		return recs, nil
	}

	recs := &Records{}
	pos := make(map[string]int)
	rows := make([]map[string]any, 0, len(seq.Content))
	for _, item := range seq.Content {
		row := make(map[string]any, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := item.Content[i].Value
			if _, ok := pos[key]; !ok {
				pos[key] = len(recs.Names)
				recs.Names = append(recs.Names, key)
			}
			v, err := decodeNode(item.Content[i+1])
			if err != nil {
				return nil, err
			}
			row[key] = v
		}
		rows = append(rows, row)
	}
	for _, row := range rows {
		rec := make([]any, len(recs.Names))
		for key, v := range row {
			rec[pos[key]] = v
		}
		recs.Values = append(recs.Values, rec)
	}
	return recs, nil
}

// mappingRecords treats a mapping of equal-length sequences as columns and
// any other mapping as a single record.
func mappingRecords(m *yaml.Node) (*Records, error) {
	recs := &Records{}
	columnar := len(m.Content) > 0
	height := -1
	for i := 0; i+1 < len(m.Content); i += 2 {
		recs.Names = append(recs.Names, m.Content[i].Value)
		v := m.Content[i+1]
		if v.Kind != yaml.SequenceNode || (height >= 0 && len(v.Content) != height) {
			columnar = false
			continue
		}
		height = len(v.Content)
	}

	if !columnar {
		rec := make([]any, 0, len(recs.Names))
		for i := 0; i+1 < len(m.Content); i += 2 {
			v, err := decodeNode(m.Content[i+1])
			if err != nil {
				return nil, err
			}
			rec = append(rec, v)
		}
		recs.Values = [][]any{rec}
		return recs, nil
	}

	recs.Values = make([][]any, height)
	for r := range recs.Values {
		recs.Values[r] = make([]any, len(recs.Names))
	}
	for c := 0; c < len(recs.Names); c++ {
		col := m.Content[2*c+1]
		for r, cell := range col.Content {
			v, err := decodeNode(cell)
			if err != nil {
				return nil, err
			}
			recs.Values[r][c] = v
		}
	}
	return recs, nil
}

func decodeNode(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
