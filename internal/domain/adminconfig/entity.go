package adminconfig

// HourConfig maps a shift code to the number of hours, out of the fixed
// 10-hour shift ceiling, counted as administrative time. Absent codes
// count as 0.
type HourConfig map[string]int

// MaxHours is the per-shift ceiling; every configured value must lie in
// [0, MaxHours].
const MaxHours = 10

// Clone returns an independent copy of the config.
func (c HourConfig) Clone() HourConfig {
	out := make(HourConfig, len(c))
	for code, hours := range c {
		out[code] = hours
	}
	return out
}

// Hours returns the configured admin hours for a shift code, 0 if the
// code is not configured.
func (c HourConfig) Hours(code string) int {
	return c[code]
}

// DefaultHourConfig is the built-in table. It is only a starting point;
// any concrete table can replace it at runtime.
func DefaultHourConfig() HourConfig {
	return HourConfig{
		"CST":          10,
		"HB IC PM":     3,
		"HB 21C PM":    3,
		"MIC":          5,
		"HB AM EDSTTA": 5,
		"HB IC AM":     5,
	}
}

// WeekdayGatedShifts are the codes whose configured hours count on
// Monday-Friday only; on Saturday and Sunday they contribute 0 no matter
// what the config says. The gate is structural, not configurable.
var WeekdayGatedShifts = []string{"HB AM EDSTTA", "HB IC AM"}

var weekdayGatedSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(WeekdayGatedShifts))
	for _, s := range WeekdayGatedShifts {
		m[s] = struct{}{}
	}
	return m
}()

// IsWeekdayGated reports whether a shift code is weekday-gated.
func IsWeekdayGated(code string) bool {
	_, ok := weekdayGatedSet[code]
	return ok
}
