package roster

import (
	"sort"
	"strings"
	"time"
)

// RawGrid is the untyped rectangular cell grid exactly as read from the
// source spreadsheet, rows by columns. Rows may be ragged.
type RawGrid [][]string

// GridLayout describes where the roster metadata lives inside a grid.
// All indexes are zero-based.
type GridLayout struct {
	HeaderRow    int // header labels (name placeholder + per-column labels)
	DateRow      int // authoritative date-token row, immediately above the data block
	DataStartRow int // first row of staff data
	NameColumn   int // column holding staff names in every data row
}

// DefaultGridLayout matches the roster export format this service was
// built for: header on row 1, date tokens on row 2, data from row 3,
// names in column 0.
func DefaultGridLayout() GridLayout {
	return GridLayout{
		HeaderRow:    1,
		DateRow:      2,
		DataStartRow: 3,
		NameColumn:   0,
	}
}

// DateToken is one parsed date cell, e.g. "Mon 02-Dec". The source never
// carries a year; it is resolved later by the normalizer.
type DateToken struct {
	Weekday string
	Day     int
	Month   time.Month
}

// ShiftRecord is the normalized unit: one staff member working one shift
// on one fully resolved calendar date.
type ShiftRecord struct {
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Shift string    `json:"shift"`
}

// RecordSet is one roster's worth of records. It is created once per
// upload, read immutably afterwards and replaced wholesale on re-upload.
type RecordSet []ShiftRecord

// Shifts returns the distinct shift codes present in the set, sorted.
func (rs RecordSet) Shifts() []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, r := range rs {
		if _, ok := seen[r.Shift]; !ok {
			seen[r.Shift] = struct{}{}
			codes = append(codes, r.Shift)
		}
	}
	sort.Strings(codes)
	return codes
}

// Names returns the distinct staff names present in the set, sorted.
func (rs RecordSet) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range rs {
		if _, ok := seen[r.Name]; !ok {
			seen[r.Name] = struct{}{}
			names = append(names, r.Name)
		}
	}
	sort.Strings(names)
	return names
}

// DateRange returns the earliest and latest record dates. The second
// return value is false for an empty set.
func (rs RecordSet) DateRange() (time.Time, time.Time, bool) {
	if len(rs) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max := rs[0].Date, rs[0].Date
	for _, r := range rs[1:] {
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return min, max, true
}

// ExcludedShifts are the non-working codes that never become records.
// Matching is case-sensitive; both OFF spellings seen in the wild are
// listed.
var ExcludedShifts = []string{"OFF", "Off", "RL SMO", "FL SMO", "SL", "PDL SMO"}

var excludedShiftSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(ExcludedShifts))
	for _, s := range ExcludedShifts {
		m[s] = struct{}{}
	}
	return m
}()

// IsExcludedShift reports whether a shift code is in the exclusion set.
func IsExcludedShift(code string) bool {
	_, ok := excludedShiftSet[code]
	return ok
}

// IsJunior reports whether a staff name belongs to a junior roster line
// (contains "JNR", case-insensitive). Juniors stay in the record set;
// this predicate is applied by staff-selection views only.
func IsJunior(name string) bool {
	return strings.Contains(strings.ToUpper(name), "JNR")
}
