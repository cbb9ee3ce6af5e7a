package response

import (
	"errors"
	"net/http"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/adminconfig"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/drive"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Roster domain errors
	switch {
	case errors.Is(err, roster.ErrMalformedGrid),
		errors.Is(err, roster.ErrEmptyDateRow),
		errors.Is(err, roster.ErrUnparseableDateToken):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, roster.ErrUnsupportedFileType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, roster.ErrNoRosterLoaded):
		NotFound(w, "No roster uploaded yet")
	case errors.Is(err, roster.ErrInvalidRequestData),
		errors.Is(err, adminconfig.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Retrieval errors
	case errors.Is(err, drive.ErrInvalidURL):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
