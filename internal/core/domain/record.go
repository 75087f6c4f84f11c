package domain

import (
	"encoding/json"
	"fmt"
)

// RecordIDKey is the column carrying a record's stable identifier.
const RecordIDKey = "id"

// Record is one sheet row as an ordered column→value mapping.
// Key order is first-appearance order, so a written sheet keeps a
// predictable column layout and two writes of the same collection
// produce the same grid.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{values: make(map[string]string)}
}

// Set stores value under key, appending the key on first use.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// SetAny stores an arbitrary value under key, serialised the way the
// sheet stores it. See CellValue.
func (r *Record) SetAny(key string, value any) {
	r.Set(key, CellValue(value))
}

// Get returns the value stored under key, or "" when absent.
func (r Record) Get(key string) string {
	return r.values[key]
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the column names in first-appearance order.
// The returned slice must not be mutated.
func (r Record) Keys() []string {
	return r.keys
}

// Len returns the number of columns.
func (r Record) Len() int {
	return len(r.keys)
}

// ID returns the record's identifier, or "" when unset.
func (r Record) ID() string {
	return r.values[RecordIDKey]
}

// SetID stores the record's identifier.
func (r *Record) SetID(id string) {
	r.Set(RecordIDKey, id)
}

// CellValue renders an arbitrary value as a sheet cell.
// nil becomes the empty string, strings pass through, booleans and
// numbers use their plain form, and anything non-scalar is embedded
// as JSON text.
func CellValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// RecordsFromGrid converts a rectangular cell grid into records.
// Row 0 is the header; each further row is zipped header→cell. Rows
// shorter than the header pad with empty strings, cells beyond the
// header are dropped and unnamed columns are skipped. A grid with no
// data rows yields no records.
func RecordsFromGrid(grid [][]string) []Record {
	if len(grid) < 2 {
		return nil
	}
	header := grid[0]
	records := make([]Record, 0, len(grid)-1)
	for _, row := range grid[1:] {
		rec := NewRecord()
		for i, key := range header {
			if key == "" {
				continue
			}
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			rec.Set(key, cell)
		}
		records = append(records, rec)
	}
	return records
}

// UnionKeys returns the union of keys across records in
// first-appearance order.
func UnionKeys(records []Record) []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, k := range rec.keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// GridFromRecords converts records into a grid: one header row with
// the union of keys, then one row per record with missing values as
// empty cells. An empty collection yields a nil grid; the write path
// then clears the range and writes nothing, not even headers.
func GridFromRecords(records []Record) [][]string {
	if len(records) == 0 {
		return nil
	}
	header := UnionKeys(records)
	grid := make([][]string, 0, len(records)+1)
	grid = append(grid, header)
	for _, rec := range records {
		row := make([]string, len(header))
		for i, key := range header {
			row[i] = rec.Get(key)
		}
		grid = append(grid, row)
	}
	return grid
}
