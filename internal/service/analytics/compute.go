package analytics

import (
	"sort"
	"time"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/adminconfig"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/analytics"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
)

// Every ratio in this domain defines 0/0 := 0. Degenerate denominators
// yield zero values, never errors or NaN.

// FilterByDateRange keeps records whose date lies in [start, end],
// bounds inclusive. A nil bound is open.
func FilterByDateRange(records roster.RecordSet, start, end *time.Time) roster.RecordSet {
	out := make(roster.RecordSet, 0, len(records))
	for _, r := range records {
		if start != nil && r.Date.Before(*start) {
			continue
		}
		if end != nil && r.Date.After(*end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterByNames keeps records for the given staff names. A nil subset
// keeps everything.
func FilterByNames(records roster.RecordSet, names []string) roster.RecordSet {
	if names == nil {
		return records
	}
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}
	out := make(roster.RecordSet, 0, len(records))
	for _, r := range records {
		if _, ok := keep[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// FilterByShifts keeps records with the given shift codes. A nil subset
// keeps everything.
func FilterByShifts(records roster.RecordSet, shifts []string) roster.RecordSet {
	if shifts == nil {
		return records
	}
	keep := make(map[string]struct{}, len(shifts))
	for _, s := range shifts {
		keep[s] = struct{}{}
	}
	out := make(roster.RecordSet, 0, len(records))
	for _, r := range records {
		if _, ok := keep[r.Shift]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ShiftDistribution counts records per shift code. Percent mode reports
// each count as a percentage of the filtered total; the toggle applies
// uniformly after counting.
func ShiftDistribution(records roster.RecordSet, mode analytics.Mode) map[string]float64 {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Shift]++
	}

	out := make(map[string]float64, len(counts))
	total := len(records)
	for code, count := range counts {
		if mode == analytics.ModePercent {
			out[code] = percent(count, total)
		} else {
			out[code] = float64(count)
		}
	}
	return out
}

// MedianAcrossStaff builds a per-staff shift count table and takes the
// column-wise median over the given staff population, restricted to
// shiftSet. Staff with no records for a shift count as zero before the
// median is taken; omitting them would skew the population baseline.
func MedianAcrossStaff(records roster.RecordSet, staff []string, shiftSet []string) map[string]float64 {
	counts := make(map[string]map[string]int, len(staff))
	for _, name := range staff {
		counts[name] = make(map[string]int)
	}
	for _, r := range records {
		perShift, ok := counts[r.Name]
		if !ok {
			continue // record for staff outside the population
		}
		perShift[r.Shift]++
	}

	out := make(map[string]float64, len(shiftSet))
	for _, shift := range shiftSet {
		values := make([]float64, 0, len(staff))
		for _, name := range staff {
			values = append(values, float64(counts[name][shift]))
		}
		out[shift] = median(values)
	}
	return out
}

// WeekdayWeekendSplit counts weekday versus weekend records. Weekend is
// Saturday or Sunday by the record date's day of week. Percent mode
// divides each side by their sum, not by the total record count, so
// already-filtered inputs are not double-discounted.
func WeekdayWeekendSplit(records roster.RecordSet, mode analytics.Mode) (float64, float64) {
	var weekday, weekend int
	for _, r := range records {
		if isWeekend(r.Date) {
			weekend++
		} else {
			weekday++
		}
	}

	if mode == analytics.ModePercent {
		total := weekday + weekend
		return percent(weekday, total), percent(weekend, total)
	}
	return float64(weekday), float64(weekend)
}

// AdminHoursFor returns one record's administrative-hours contribution:
// the configured hours for its shift, zeroed out for weekday-gated
// shifts falling on a Saturday or Sunday.
func AdminHoursFor(record roster.ShiftRecord, config adminconfig.HourConfig) int {
	if adminconfig.IsWeekdayGated(record.Shift) && isWeekend(record.Date) {
		return 0
	}
	return config.Hours(record.Shift)
}

// AdminPercentage computes each staff member's administrative time as a
// percentage of their maximum possible hours. The denominator values
// every shift at the fixed 10-hour ceiling regardless of its configured
// admin hours: staff working fewer shifts are measured against fewer
// max-possible hours, which is the intended normalization baseline.
func AdminPercentage(records roster.RecordSet, config adminconfig.HourConfig) map[string]float64 {
	totalHours := make(map[string]int)
	totalShifts := make(map[string]int)
	for _, r := range records {
		totalHours[r.Name] += AdminHoursFor(r, config)
		totalShifts[r.Name]++
	}

	out := make(map[string]float64, len(totalShifts))
	for name, shifts := range totalShifts {
		out[name] = percent(totalHours[name], shifts*adminconfig.MaxHours)
	}
	return out
}

// UsersWithShift returns the staff names having at least one record with
// that exact shift code, sorted.
func UsersWithShift(records roster.RecordSet, shiftCode string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.Shift == shiftCode {
			seen[r.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}
