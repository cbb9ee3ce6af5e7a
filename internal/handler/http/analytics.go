package http

import (
	"net/http"
	"strings"

	"github.com/shiftlens/shiftlens-backend-go/internal/domain/analytics"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/shiftlens/shiftlens-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	ShiftDistribution(w http.ResponseWriter, r *http.Request)
	MedianAcrossStaff(w http.ResponseWriter, r *http.Request)
	WeekdayWeekendSplit(w http.ResponseWriter, r *http.Request)
	AdminPercentage(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// queryFilter builds the common filter block from query parameters:
// start_date/end_date (YYYY-MM-DD, inclusive), names and shifts
// (comma-separated), exclude_juniors.
func queryFilter(r *http.Request) analytics.QueryFilter {
	q := r.URL.Query()
	return analytics.QueryFilter{
		RecordFilter: roster.RecordFilter{
			StartDate: q.Get("start_date"),
			EndDate:   q.Get("end_date"),
		},
		Names:          splitParam(q.Get("names")),
		Shifts:         splitParam(q.Get("shifts")),
		ExcludeJuniors: q.Get("exclude_juniors") == "true",
	}
}

// splitParam returns nil for an absent parameter, so "no filter" and
// "empty subset" stay distinguishable downstream.
func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *analyticsHandlerImpl) ShiftDistribution(w http.ResponseWriter, r *http.Request) {
	req := analytics.DistributionRequest{
		QueryFilter: queryFilter(r),
		Mode:        analytics.Mode(r.URL.Query().Get("mode")),
	}

	result, err := h.analyticsService.ShiftDistribution(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *analyticsHandlerImpl) MedianAcrossStaff(w http.ResponseWriter, r *http.Request) {
	req := analytics.MedianRequest{
		QueryFilter: queryFilter(r),
	}

	result, err := h.analyticsService.MedianAcrossStaff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *analyticsHandlerImpl) WeekdayWeekendSplit(w http.ResponseWriter, r *http.Request) {
	req := analytics.SplitRequest{
		QueryFilter: queryFilter(r),
		Mode:        analytics.Mode(r.URL.Query().Get("mode")),
	}

	result, err := h.analyticsService.WeekdayWeekendSplit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *analyticsHandlerImpl) AdminPercentage(w http.ResponseWriter, r *http.Request) {
	req := analytics.AdminPercentageRequest{
		QueryFilter: queryFilter(r),
	}

	result, err := h.analyticsService.AdminPercentage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
