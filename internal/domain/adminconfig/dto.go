package adminconfig

import (
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/validator"
)

type ConfigResponse struct {
	Config           HourConfig `json:"config"`
	WeekdayGated     []string   `json:"weekday_gated"`
	MaxHoursPerShift int        `json:"max_hours_per_shift"`
}

// ReplaceRequest replaces the whole config. Unlike import, it is strict:
// any out-of-range value rejects the request.
type ReplaceRequest struct {
	Config map[string]int `json:"config"`
}

func (r *ReplaceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Config) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "config",
			Message: "config is required",
		})
	}
	for code, hours := range r.Config {
		if validator.IsEmpty(code) {
			errs = append(errs, validator.ValidationError{
				Field:   "config",
				Message: "shift codes must not be empty",
			})
			continue
		}
		if hours < 0 || hours > MaxHours {
			errs = append(errs, validator.ValidationError{
				Field:   code,
				Message: ErrValueOutOfRange.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportRequest carries a previously exported flat code→hours mapping.
// Values arrive as raw JSON numbers so non-integer entries can be
// detected and dropped instead of failing the decode.
type ImportRequest struct {
	Entries map[string]float64 `json:"config"`
}

type ImportResponse struct {
	Imported int        `json:"imported"`
	Rejected int        `json:"rejected"`
	Config   HourConfig `json:"config"`
}

// ExportResponse is the round-trippable flat form:
// import(export(config)) == config for any valid config.
type ExportResponse struct {
	Config HourConfig `json:"config"`
}
