package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/validator"
)

// Result is the output of one normalization pass. Staff holds every
// named data row in grid order, including staff whose every cell was
// blank or excluded; they carry zero records but still count for
// zero-filled population statistics.
type Result struct {
	Records roster.RecordSet
	Staff   []string
}

// Normalizer turns a raw grid into a record set. It owns the two pieces
// of real logic in the pipeline: per-column year inference and the
// shift-code exclusion set.
type Normalizer struct {
	layout     roster.GridLayout
	anchorYear int // 0 anchors on the clock instead
	now        func() time.Time
}

// NewNormalizer builds a normalizer for one grid layout. anchorYear 0
// selects the current-date anchor strategy; any other value pins the
// first column to that year.
func NewNormalizer(layout roster.GridLayout, anchorYear int) *Normalizer {
	return &Normalizer{
		layout:     layout,
		anchorYear: anchorYear,
		now:        time.Now,
	}
}

// Normalize reshapes the grid into one record per (named row, dated
// column, non-blank cell). Nothing is partially applied: any layout or
// date-token violation fails the whole grid.
func (n *Normalizer) Normalize(grid roster.RawGrid) (Result, error) {
	if len(grid) <= n.layout.DataStartRow {
		return Result{}, fmt.Errorf("%w: need more than %d rows, got %d",
			roster.ErrMalformedGrid, n.layout.DataStartRow, len(grid))
	}

	dateRow := grid[n.layout.DateRow]

	// Columns whose date cell is blank are dropped before reshaping.
	var columns []int
	var tokens []roster.DateToken
	for i, cell := range dateRow {
		if i == n.layout.NameColumn {
			continue
		}
		if strings.TrimSpace(cell) == "" {
			continue
		}
		token, err := ParseDateToken(cell)
		if err != nil {
			return Result{}, err
		}
		columns = append(columns, i)
		tokens = append(tokens, token)
	}
	if len(columns) == 0 {
		return Result{}, roster.ErrEmptyDateRow
	}

	dates := n.resolveYears(tokens)

	var records roster.RecordSet
	var staff []string
	for r := n.layout.DataStartRow; r < len(grid); r++ {
		row := grid[r]
		if n.layout.NameColumn >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[n.layout.NameColumn])
		if name == "" {
			// A fully blank row is dropped, never emitted as empty records.
			continue
		}
		staff = append(staff, name)

		for j, col := range columns {
			if col >= len(row) {
				continue
			}
			shift := strings.TrimSpace(row[col])
			if shift == "" {
				// Blank cells are absent, not zero-hour records.
				continue
			}
			if roster.IsExcludedShift(shift) {
				continue
			}
			records = append(records, roster.ShiftRecord{
				Name:  name,
				Date:  dates[j],
				Shift: shift,
			})
		}
	}

	return Result{Records: records, Staff: staff}, nil
}

// resolveYears attaches a year to each parsed token. The anchor year is
// either fixed, or derived from the clock: a first column whose month is
// ahead of the current month means the roster began last year. The year
// then rolls forward by one every time a column's month decreases
// relative to the previous column, which handles exactly one Dec→Jan
// wraparound; rosters spanning more than ~12 months are out of scope.
func (n *Normalizer) resolveYears(tokens []roster.DateToken) []time.Time {
	year := n.anchorYear
	if year == 0 {
		now := n.now()
		year = now.Year()
		if tokens[0].Month > now.Month() {
			year--
		}
	}

	dates := make([]time.Time, len(tokens))
	prev := tokens[0].Month
	for i, t := range tokens {
		if t.Month < prev {
			year++
		}
		prev = t.Month
		dates[i] = time.Date(year, t.Month, t.Day, 0, 0, 0, 0, time.UTC)
	}
	return dates
}

// ParseDateToken parses one date cell of the form
// "<weekday> <day>-<month>", e.g. "Mon 02-Dec". A trailing year segment
// ("Mon 02-Dec-24") is ignored; years are always inferred from column
// order.
func ParseDateToken(cell string) (roster.DateToken, error) {
	fields := strings.Fields(strings.TrimSpace(cell))
	if len(fields) != 2 {
		return roster.DateToken{}, fmt.Errorf("%w: %q", roster.ErrUnparseableDateToken, cell)
	}
	if !validator.IsWeekdayAbbrev(fields[0]) {
		return roster.DateToken{}, fmt.Errorf("%w: %q has no weekday abbreviation", roster.ErrUnparseableDateToken, cell)
	}

	parts := strings.Split(fields[1], "-")
	if len(parts) < 2 {
		return roster.DateToken{}, fmt.Errorf("%w: %q", roster.ErrUnparseableDateToken, cell)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return roster.DateToken{}, fmt.Errorf("%w: %q has no valid day", roster.ErrUnparseableDateToken, cell)
	}
	month, ok := validator.ParseMonthAbbrev(parts[1])
	if !ok {
		return roster.DateToken{}, fmt.Errorf("%w: %q has no valid month", roster.ErrUnparseableDateToken, cell)
	}

	return roster.DateToken{
		Weekday: fields[0],
		Day:     day,
		Month:   month,
	}, nil
}
