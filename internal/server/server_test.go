package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nanstat/internal/logger"
)

func newTestEcho(t *testing.T, cfg Config) *echo.Echo {
	t.Helper()
	var sink strings.Builder
	s := New(cfg, logger.Text(&sink, logger.ParseLevel("debug")))
	s.newID = func() string { return "red_test" }
	e := echo.New()
	s.Register(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorType(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	return e["type"].(string)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	rec := doJSON(t, newTestEcho(t, Config{}), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestEchoLogsRequestsThroughServerLogger(t *testing.T) {
	t.Parallel()
	var sink strings.Builder
	s := New(Config{}, logger.Text(&sink, logger.ParseLevel("info")))
	rec := doJSON(t, s.Echo(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, sink.String(), "msg=request")
	assert.Contains(t, sink.String(), "method=GET")
	assert.Contains(t, sink.String(), "uri=/healthz")
}

func TestConfigureHTTPSetsReadTimeouts(t *testing.T) {
	t.Parallel()
	s := New(Config{ReadTimeout: 7 * time.Second}, nil)
	var srv http.Server
	require.NoError(t, s.configureHTTP(&srv))
	assert.Equal(t, 7*time.Second, srv.ReadHeaderTimeout)
	assert.Equal(t, 7*time.Second, srv.ReadTimeout)
}

func TestListOps(t *testing.T) {
	t.Parallel()
	rec := doJSON(t, newTestEcho(t, Config{}), http.MethodGet, "/v1/ops", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 9)
	first := data[0].(map[string]any)
	assert.Equal(t, "nanmean", first["name"])
	assert.Equal(t, false, first["uses_ddof"])
}

func TestReduceNanMeanScalar(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t, Config{})
	rec := doJSON(t, e, http.MethodPost, "/v1/reduce",
		`{"op":"nanmean","array":{"dtype":"float64","shape":[6],"data":[0,1,2,null,4,5]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "red_test", body["id"])
	assert.Equal(t, "nanmean", body["op"])
	assert.Equal(t, "default", body["axis"])
	result := body["result"].(map[string]any)
	assert.Equal(t, "float64", result["dtype"])
	assert.InDelta(t, 2.4, result["scalar"].(float64), 1e-12)
}

func TestReduceAlongAxis(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t, Config{})
	rec := doJSON(t, e, http.MethodPost, "/v1/reduce",
		`{"op":"nanmax","axis":1,"array":{"dtype":"float32","data":[[1,null,3],[null,null,2]]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decodeBody(t, rec)["result"].(map[string]any)
	assert.Equal(t, "float32", result["dtype"])
	assert.Equal(t, []any{float64(2)}, result["shape"])
	assert.Equal(t, []any{float64(3), float64(2)}, result["data"])
}

func TestReduceWholeArrayAxis(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t, Config{})
	for _, axis := range []string{`null`, `"none"`} {
		rec := doJSON(t, e, http.MethodPost, "/v1/reduce",
			`{"op":"nanmedian","axis":`+axis+`,"array":{"data":[[1,2],[3,null]]}}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "None", body["axis"])
		assert.Equal(t, float64(2), body["result"].(map[string]any)["scalar"])
	}
}

func TestReduceDefaultDDoFFromConfig(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t, Config{DefaultDDoF: 1})
	rec := doJSON(t, e, http.MethodPost, "/v1/reduce", `{"op":"nanvar","array":{"data":[1,2,3,null]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 1.0, decodeBody(t, rec)["result"].(map[string]any)["scalar"].(float64), 1e-12)

	rec = doJSON(t, e, http.MethodPost, "/v1/reduce", `{"op":"nanvar","ddof":0,"array":{"data":[1,2,3,null]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 2.0/3.0, decodeBody(t, rec)["result"].(map[string]any)["scalar"].(float64), 1e-12)
}

func TestReduceErrors(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t, Config{MaxBodyBytes: 256})

	cases := []struct {
		name   string
		body   string
		status int
		typ    string
	}{
		{"bad json", `{"op":`, http.StatusBadRequest, "invalid_request_error"},
		{"unknown op", `{"op":"nanfoo","array":{"data":[1]}}`, http.StatusBadRequest, "unknown_op"},
		{"missing array", `{"op":"nanmean"}`, http.StatusBadRequest, "invalid_request_error"},
		{"bad axis literal", `{"op":"nanmean","axis":"x","array":{"data":[1]}}`, http.StatusBadRequest, "invalid_request_error"},
		{"axis out of range", `{"op":"nanmean","axis":3,"array":{"data":[[1,2]]}}`, http.StatusBadRequest, "invalid_axis"},
		{"ddof 2", `{"op":"nanstd","ddof":2,"array":{"data":[1,2]}}`, http.StatusBadRequest, "invalid_ddof"},
		{"all nan argmin", `{"op":"nanargmin","array":{"data":[null,null]}}`, http.StatusUnprocessableEntity, "reduction_error"},
		{"too large", `{"op":"nanmean","array":{"data":[` + strings.Repeat("1,", 200) + `1]}}`, http.StatusBadRequest, "invalid_request_error"},
		{"empty shape wide output", `{"op":"nanmean","axis":1,"array":{"shape":[1000,0],"data":[]}}`, http.StatusBadRequest, "invalid_request_error"},
		{"overflowing shape", `{"op":"nanmean","axis":1,"array":{"shape":[4,4611686018427387904],"data":[]}}`, http.StatusBadRequest, "invalid_request_error"},
		{"null in int32", `{"op":"nanmean","array":{"dtype":"int32","data":[1,null,3]}}`, http.StatusBadRequest, "invalid_request_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, e, http.MethodPost, "/v1/reduce", tc.body)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			assert.Equal(t, tc.typ, errorType(t, rec))
		})
	}
}
