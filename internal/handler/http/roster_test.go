package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shiftlens/shiftlens-backend-go/internal/config"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/adminconfig"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/analytics"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/drive"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/session"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/spreadsheet"
	adminConfigService "github.com/shiftlens/shiftlens-backend-go/internal/service/adminconfig"
	analyticsService "github.com/shiftlens/shiftlens-backend-go/internal/service/analytics"
	rosterService "github.com/shiftlens/shiftlens-backend-go/internal/service/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestMaxUpload = 1 << 20

// newTestRouter wires the real services against an in-memory session
// store. The anchor year is pinned so tests are stable regardless of
// when they run.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Env:                "test",
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
	}

	store := session.NewStore()
	normalizer := rosterService.NewNormalizer(roster.DefaultGridLayout(), 2024)
	rosterSvc := rosterService.NewRosterService(store, spreadsheet.NewReader(), drive.NewFetcher(handlerTestMaxUpload), normalizer)

	return NewRouter(
		cfg,
		NewRosterHandler(rosterSvc, handlerTestMaxUpload),
		NewAnalyticsHandler(analyticsService.NewAnalyticsService(store)),
		NewAdminConfigHandler(adminConfigService.NewAdminConfigService(store)),
	)
}

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func uploadCSV(t *testing.T, router *chi.Mux, csv string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "roster.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// testCSV resolves, with anchor year 2024, to Mon 2024-03-04 and
// Sat 2024-03-09.
const testCSV = `Roster Export
Name,Mon 04-Mar,Sat 09-Mar
,Mon 04-Mar,Sat 09-Mar
Alice,CST,HB IC AM
Bob JNR,OFF,CST
`

func TestRosterUpload_Success(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := uploadCSV(t, router, testCSV)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var result roster.UploadResponse
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "roster.csv", result.SourceName)
	assert.Equal(t, 3, result.RecordCount) // OFF never becomes a record
	assert.Equal(t, 2, result.StaffCount)
	assert.Equal(t, "2024-03-04", result.DateFrom)
	assert.Equal(t, "2024-03-09", result.DateTo)
}

func TestRosterUpload_MalformedGrid(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := uploadCSV(t, router, "just,one,row\n")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestRosterUpload_MissingFileField(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("not_file", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRecords_NoRosterYet(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRecords_DateRangeFilter(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, uploadCSV(t, router, testCSV).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster?start_date=2024-03-05&end_date=2024-03-09", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result roster.ListRecordsResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.Equal(t, 2, result.TotalCount)
	for _, r := range result.Records {
		assert.Equal(t, "2024-03-09", r.Date)
	}
}

func TestListRecords_InvalidDate(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, uploadCSV(t, router, testCSV).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster?start_date=04-03-2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListStaff_Filters(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, uploadCSV(t, router, testCSV).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster/staff?exclude_juniors=true&with_shift=CST", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result roster.StaffResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.Equal(t, []string{"Alice"}, result.Staff)
}

func TestShiftDistribution_Endpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, uploadCSV(t, router, testCSV).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/shift-distribution", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result analytics.DistributionResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, 2.0, result.Distribution["CST"])
	assert.Equal(t, 1.0, result.Distribution["HB IC AM"])
	assert.NotContains(t, result.Distribution, "OFF")
}

func TestAdminPercentage_Endpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, uploadCSV(t, router, testCSV).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/admin-percentage", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result analytics.AdminPercentageResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))

	// Alice: CST on Monday (10h) + HB IC AM on Saturday (gated to 0)
	// over 2 shifts * 10h = 50%. Bob JNR: one CST = 100%.
	require.Len(t, result.Staff, 2)
	assert.Equal(t, "Alice", result.Staff[0].Name)
	assert.InDelta(t, 50.0, result.Staff[0].Percentage, 1e-9)
	assert.Equal(t, "Bob JNR", result.Staff[1].Name)
	assert.InDelta(t, 100.0, result.Staff[1].Percentage, 1e-9)
}

func TestAdminConfig_ImportExportEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	importBody := `{"config":{"CST":10,"MIC":5.5,"HB IC PM":11}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin-config/import", strings.NewReader(importBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result adminconfig.ImportResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Rejected)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin-config/export", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var exported adminconfig.ExportResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &exported))
	assert.Equal(t, adminconfig.HourConfig{"CST": 10}, exported.Config)
}

func TestAdminConfig_ReplaceValidation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin-config", strings.NewReader(`{"config":{"CST":42}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "CST")
}

func TestImportFromURL_InvalidURL(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster/import-url", strings.NewReader(`{"url":"https://example.com/roster.xlsx"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReupload_ReplacesRecordSetWholesale(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, uploadCSV(t, router, testCSV).Code)

	second := `Roster Export
Name,Tue 05-Mar
,Tue 05-Mar
Carol,MIC
`
	require.Equal(t, http.StatusCreated, uploadCSV(t, router, second).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result roster.ListRecordsResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "Carol", result.Records[0].Name)
	assert.Equal(t, "MIC", result.Records[0].Shift)
}
