package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
	"github.com/sells-group/estate-cli/internal/store"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	return newRouter(registry.MustNew(), store.NewMemory(), nil)
}

func doJSON(t *testing.T, h http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouterHealth(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouterOutreachThenStatus(t *testing.T) {
	h := testRouter(t)

	rr := doJSON(t, h, http.MethodPost, "/v1/outreach", map[string]string{
		"platform":      "Google",
		"deceased_name": "Jane Doe",
		"executor_name": "John Doe",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var result model.OutreachResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	// No transport configured, so the content comes back in demo mode.
	assert.Equal(t, model.StatusDemo, result.Status)
	require.NotEmpty(t, result.CaseID)

	rr = doJSON(t, h, http.MethodGet, fmt.Sprintf("/v1/cases/%s", result.CaseID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var status model.CaseStatusReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, model.StatusSuccess, status.Status)
	assert.Equal(t, model.TierUnderReview, status.CurrentStatus)
}

func TestRouterCaseNotFound(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/v1/cases/NOPE_1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var status model.CaseStatusReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, model.StatusNotFound, status.Status)
}

func TestRouterInstructions(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/v1/instructions/google", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var report model.FormGuideReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, model.StatusSuccess, report.Status)
	assert.Equal(t, "Google", report.Platform)
}

func TestRouterPlatforms(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/v1/platforms", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var report model.PlatformOptionsReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Contains(t, report.SupportedPlatforms, "Facebook")
}

func TestRouterDiscover(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodPost, "/v1/discover", map[string]any{
		"deceased_name": "Jane Doe",
		"emails":        []string{"jane@google.com"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var report model.DiscoveryReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 3, report.TotalAssets)
}

func TestRouterLawyersQueryParams(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/v1/lawyers?zipcode=02110&radius=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var report model.LawyerMatchReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 1, report.LawyersFound)
	assert.Equal(t, 3, report.SearchRadiusMiles)
}

func TestRouterLawyersBadRadius(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/v1/lawyers?zipcode=02110&radius=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouterInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/outreach", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouterStateLaw(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodGet, "/v1/laws/california", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var report model.StateLawReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, model.StatusSuccess, report.Status)
	assert.NotEmpty(t, report.DigitalAssetLaw.LawName)
}

func TestRouterNotificationLetter(t *testing.T) {
	rr := doJSON(t, testRouter(t), http.MethodPost, "/v1/letters/notification", map[string]string{
		"platform":      "google.com",
		"deceased_name": "Jane Doe",
		"executor_name": "John Doe",
		"relationship":  "spouse",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var result model.LetterResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, model.StatusSuccess, result.Status)
	assert.Contains(t, result.LetterContent, "Jane Doe")
}
