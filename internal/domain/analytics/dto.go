package analytics

import (
	"strings"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/validator"
)

// Mode selects how frequency results are reported.
type Mode string

const (
	ModeCount   Mode = "count"
	ModePercent Mode = "percent"
)

var ModeValues = []string{
	string(ModeCount),
	string(ModePercent),
}

// QueryFilter is the common filter block shared by the analytics
// queries: inclusive date range, staff subset, shift-code subset.
type QueryFilter struct {
	roster.RecordFilter

	Names          []string
	Shifts         []string
	ExcludeJuniors bool
}

func (f *QueryFilter) Validate() error {
	return f.RecordFilter.Validate()
}

type DistributionRequest struct {
	QueryFilter

	Mode Mode
}

func (r *DistributionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Mode == "" {
		r.Mode = ModeCount
	}
	if !validator.IsInSlice(string(r.Mode), ModeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: " + strings.Join(ModeValues, ", "),
		})
	}
	if err := r.QueryFilter.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DistributionResponse struct {
	Mode         Mode               `json:"mode"`
	TotalRecords int                `json:"total_records"`
	Distribution map[string]float64 `json:"distribution"`
}

type MedianRequest struct {
	QueryFilter
}

type MedianResponse struct {
	StaffCount int                `json:"staff_count"`
	Medians    map[string]float64 `json:"medians"`
}

type SplitRequest struct {
	QueryFilter

	Mode Mode
}

func (r *SplitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Mode == "" {
		r.Mode = ModeCount
	}
	if !validator.IsInSlice(string(r.Mode), ModeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: " + strings.Join(ModeValues, ", "),
		})
	}
	if err := r.QueryFilter.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SplitResponse struct {
	Mode    Mode    `json:"mode"`
	Weekday float64 `json:"weekday"`
	Weekend float64 `json:"weekend"`
}

type AdminPercentageRequest struct {
	QueryFilter
}

type StaffPercentage struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// AdminPercentageResponse lists one entry per staff member, sorted by
// name, the way the comparison chart consumes it.
type AdminPercentageResponse struct {
	Staff []StaffPercentage `json:"staff"`
}
