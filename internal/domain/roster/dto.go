package roster

import (
	"time"

	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/validator"
)

type ImportFromURLRequest struct {
	URL string `json:"url"`
}

func (r *ImportFromURLRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.URL) {
		errs = append(errs, validator.ValidationError{
			Field:   "url",
			Message: "url is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UploadResponse struct {
	SessionID   string `json:"session_id"`
	SourceName  string `json:"source_name"`
	RecordCount int    `json:"record_count"`
	StaffCount  int    `json:"staff_count"`
	DateFrom    string `json:"date_from,omitempty"`
	DateTo      string `json:"date_to,omitempty"`
	UploadedAt  string `json:"uploaded_at"`
}

type RecordResponse struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Shift string `json:"shift"`
}

type ListRecordsResponse struct {
	TotalCount int              `json:"total_count"`
	Records    []RecordResponse `json:"records"`
}

// RecordFilter bounds a record listing by an inclusive date range.
// Both bounds are optional.
type RecordFilter struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// Populated by Validate.
	Start *time.Time `json:"-"`
	End   *time.Time `json:"-"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		start, ok := validator.IsValidDate(f.StartDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		} else {
			f.Start = &start
		}
	}
	if f.EndDate != "" {
		end, ok := validator.IsValidDate(f.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else {
			f.End = &end
		}
	}
	if f.Start != nil && f.End != nil && f.End.Before(*f.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StaffFilter narrows the staff listing. WithShift keeps only staff who
// have at least one record with that exact shift code; ExcludeJuniors
// drops names containing "JNR".
type StaffFilter struct {
	ExcludeJuniors bool
	WithShift      string
}

type StaffResponse struct {
	TotalCount int      `json:"total_count"`
	Staff      []string `json:"staff"`
}
