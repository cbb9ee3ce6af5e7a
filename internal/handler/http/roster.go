package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/shiftlens/shiftlens-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ImportFromURL(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService  roster.RosterService
	maxUploadBytes int64
}

func NewRosterHandler(rosterService roster.RosterService, maxUploadBytes int64) RosterHandler {
	return &rosterHandlerImpl{
		rosterService:  rosterService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload accepts a roster spreadsheet as multipart form field "file".
func (h *rosterHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.RequestEntityTooLarge(w, "Uploaded file is too large")
			return
		}
		response.BadRequest(w, "Expected a multipart upload with a 'file' field", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing 'file' field in upload", nil)
		return
	}
	defer file.Close()

	result, err := h.rosterService.UploadFile(r.Context(), header.Filename, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roster uploaded successfully", result)
}

func (h *rosterHandlerImpl) ImportFromURL(w http.ResponseWriter, r *http.Request) {
	var req roster.ImportFromURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.HandleError(w, roster.ErrInvalidRequestData)
		return
	}

	result, err := h.rosterService.ImportFromURL(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roster imported successfully", result)
}

func (h *rosterHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := roster.RecordFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.rosterService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *rosterHandlerImpl) ListStaff(w http.ResponseWriter, r *http.Request) {
	filter := roster.StaffFilter{
		ExcludeJuniors: r.URL.Query().Get("exclude_juniors") == "true",
		WithShift:      r.URL.Query().Get("with_shift"),
	}

	result, err := h.rosterService.ListStaff(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
