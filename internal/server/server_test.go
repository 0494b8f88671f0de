package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *Server {
	return New(model.DefaultPhysics(), nil)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var body struct {
		Error APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestBoilerEndpoint(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/boiler", `{"length":5,"width":4,"height":6,"mode":"direct"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp BoilerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Feasible)
	assert.Equal(t, 4, resp.Layout.SpliterLayer)
	assert.Equal(t, 3, resp.Layout.HeatingElement)
	assert.Equal(t, int64(912000), resp.Layout.Production)
	assert.NotEmpty(t, resp.Plan)
}

func TestBoilerEndpointInfeasible(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/boiler", `{"length":3,"width":3,"height":4}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BoilerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Feasible)
}

func TestFissionEndpoint(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/fission", `{"length":5,"width":5,"height":8,"mode":"water"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp FissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 38, resp.Layout.AssemblyCount)
	assert.Equal(t, [][]int{{3, 5, 5}, {5, 0, 5}, {5, 5, 5}}, resp.Layout.Grid.Rows())
	assert.Contains(t, resp.Plan, "layer")
}

func TestCompareEndpoint(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/compare", `{"structure":"boiler","length":5,"width":4,"height":6}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Results []CompareEntry `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "Default", resp.Results[0].Scenario)
	assert.Equal(t, 912000.0, resp.Results[0].Value)
}

func TestInputErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		code string
	}{
		{"malformed json", "/api/v1/boiler", `{"length":`, ErrCodeBadRequest},
		{"missing height", "/api/v1/boiler", `{"length":5,"width":4}`, ErrCodeBadRequest},
		{"length too small", "/api/v1/boiler", `{"length":2,"width":4,"height":6}`, ErrCodeInvalidDimensions},
		{"height too large", "/api/v1/fission", `{"length":5,"width":5,"height":19}`, ErrCodeInvalidDimensions},
		{"unknown heating", "/api/v1/boiler", `{"length":5,"width":4,"height":6,"mode":"plasma"}`, ErrCodeUnknownMode},
		{"unknown cooling", "/api/v1/fission", `{"length":5,"width":5,"height":8,"mode":"lava"}`, ErrCodeUnknownMode},
		{"unknown structure", "/api/v1/compare", `{"structure":"turbine","length":5,"width":5,"height":8}`, ErrCodeUnknownMode},
	}
	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/v2/nothing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrCodeNotFound, decodeError(t, rec).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer()
	do(t, s, http.MethodPost, "/api/v1/boiler", `{"length":5,"width":4,"height":6}`)
	do(t, s, http.MethodPost, "/api/v1/fission", `{"length":5,"width":5,"height":8}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `reactorcalc_optimizations_total{feasible="true",mode="direct",structure="boiler"} 1`), body)
	assert.Contains(t, body, `reactorcalc_http_requests_total{method="POST",route="/api/v1/fission",status="200"} 1`)
	assert.Contains(t, body, "reactorcalc_fission_removals_count 1")
}
