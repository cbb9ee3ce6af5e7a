package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/adminconfig"
	"github.com/shiftlens/shiftlens-backend-go/internal/handler/http/response"
)

type AdminConfigHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type adminConfigHandlerImpl struct {
	configService adminconfig.AdminConfigService
}

func NewAdminConfigHandler(configService adminconfig.AdminConfigService) AdminConfigHandler {
	return &adminConfigHandlerImpl{
		configService: configService,
	}
}

func (h *adminConfigHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *adminConfigHandlerImpl) Replace(w http.ResponseWriter, r *http.Request) {
	var req adminconfig.ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.HandleError(w, adminconfig.ErrInvalidRequestData)
		return
	}

	result, err := h.configService.Replace(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin hour config replaced", result)
}

func (h *adminConfigHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req adminconfig.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.HandleError(w, adminconfig.ErrInvalidRequestData)
		return
	}

	result, err := h.configService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin hour config imported", result)
}

func (h *adminConfigHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.Export(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
