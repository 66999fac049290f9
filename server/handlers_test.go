package main

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meikuraledutech/wfgraph/internal/config"
)

const fixture = "../xmldoc/testdata/catalog_approval.xml"

func testApp() *fiber.App {
	cfg := &config.Config{
		Server:    config.ServerConfig{MaxUploadBytes: 1 << 20, CORSOrigins: []string{"*"}},
		Traversal: config.TraversalConfig{MaxDepth: 10},
	}
	return newApp(cfg, zap.NewNop())
}

func uploadRequest(t *testing.T, target, field, name string, body []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func fixtureRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	return uploadRequest(t, target, "file", "uploads/catalog_approval.xml", data)
}

func do(t *testing.T, req *http.Request, v any) int {
	t.Helper()
	resp, err := testApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), string(body))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	var got map[string]string
	status := do(t, httptest.NewRequest(http.MethodGet, "/health", nil), &got)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", got["status"])
}

func TestParse(t *testing.T) {
	var got SummaryResponse
	status := do(t, fixtureRequest(t, "/api/workflow/parse"), &got)

	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Success)
	assert.NotEmpty(t, got.RequestID)
	assert.Equal(t, "catalog_approval.xml", got.FileName)
	assert.Equal(t, "Catalog Approval", got.Summary.Name)
	assert.Equal(t, "Begin", got.Summary.StartActivity)
	assert.Equal(t, "a1", got.Version.StartActivityID)
	assert.Equal(t, 5, got.ActivityCount)
	assert.Equal(t, 2, got.StageCount)
	assert.Equal(t, 3, got.ConditionCount)
}

func TestDetails(t *testing.T) {
	var got DetailsResponse
	status := do(t, fixtureRequest(t, "/api/workflow/details"), &got)

	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Success)
	assert.Len(t, got.Activities, 5)
	assert.Len(t, got.Stages, 2)
	assert.Len(t, got.Conditions, 3)
	require.Len(t, got.Transitions["a2"], 2)
	assert.Equal(t, "t2", got.Transitions["a2"][0].ID)
	assert.Equal(t, "t3", got.Transitions["a2"][1].ID)
}

func TestActivities(t *testing.T) {
	var got ActivitiesResponse
	status := do(t, fixtureRequest(t, "/api/workflow/activities"), &got)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, got.Count)
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, got.Order)
	assert.Equal(t, "Manager Approval", got.Activities["a2"].Name)
}

type renderBody struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Lines   []struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	} `json:"lines"`
}

func TestPath(t *testing.T) {
	var got renderBody
	status := do(t, fixtureRequest(t, "/api/workflow/path"), &got)

	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Success)
	require.Len(t, got.Lines, 12)
	assert.Equal(t, "activity", got.Lines[0].Kind)
	assert.Equal(t, "Begin", got.Lines[0].Text)
	assert.Equal(t, "cycle", got.Lines[11].Kind)
	assert.Contains(t, got.Text, "Activity: Begin\n")
}

func TestPath_MaxDepthQuery(t *testing.T) {
	var got renderBody
	status := do(t, fixtureRequest(t, "/api/workflow/path?max_depth=1"), &got)

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, got.Text, "max depth reached")

	var bad ErrorResponse
	status = do(t, fixtureRequest(t, "/api/workflow/path?max_depth=zero"), &bad)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, bad.Success)
}

func TestVisualize(t *testing.T) {
	var got renderBody
	status := do(t, fixtureRequest(t, "/api/workflow/visualize"), &got)

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, got.Text, "├→ Fulfil Request\n")
	assert.Contains(t, got.Text, "(cycle detected)\n")
}

func TestUpload_MissingFile(t *testing.T) {
	var got ErrorResponse
	status := do(t, uploadRequest(t, "/api/workflow/parse", "document", "wf.xml", []byte("<unload/>")), &got)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, got.Success)
	assert.Equal(t, "no file provided", got.Error)
}

func TestUpload_DecodeFailure(t *testing.T) {
	for _, target := range []string{"/api/workflow/parse", "/api/workflow/details", "/api/workflow/visualize"} {
		t.Run(target, func(t *testing.T) {
			var got ErrorResponse
			status := do(t, uploadRequest(t, target, "file", "broken.xml", []byte("<<<>>>")), &got)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, got.Success)
			assert.Contains(t, got.Error, "broken.xml")
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/workflow/parse", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := testApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORS_UploadCarriesAllowOrigin(t *testing.T) {
	req := fixtureRequest(t, "/api/workflow/parse")
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := testApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_ConfiguredOrigin(t *testing.T) {
	cfg := &config.Config{
		Server:    config.ServerConfig{MaxUploadBytes: 1 << 20, CORSOrigins: []string{"http://localhost:3000"}},
		Traversal: config.TraversalConfig{MaxDepth: 10},
	}
	app := newApp(cfg, zap.NewNop())

	for origin, want := range map[string]string{
		"http://localhost:3000": "http://localhost:3000",
		"http://evil.test":      "",
	} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", origin)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, resp.Header.Get("Access-Control-Allow-Origin"), origin)
	}
}

func TestFrameworkErrorsUseEnvelope(t *testing.T) {
	app := testApp()
	app.Post("/oversized", func(c fiber.Ctx) error {
		return fiber.ErrRequestEntityTooLarge
	})

	tests := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{"unknown route", httptest.NewRequest(http.MethodGet, "/api/workflow/nope", nil), http.StatusNotFound},
		{"wrong method", httptest.NewRequest(http.MethodGet, "/api/workflow/parse", nil), http.StatusMethodNotAllowed},
		{"body too large", httptest.NewRequest(http.MethodPost, "/oversized", nil), http.StatusRequestEntityTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(tc.req)
			require.NoError(t, err)
			defer resp.Body.Close()

			var got ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.False(t, got.Success)
			assert.NotEmpty(t, got.Error)
		})
	}
}
