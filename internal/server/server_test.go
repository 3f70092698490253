package server

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"keywordlens/internal/analysis"
	"keywordlens/internal/config"
	"keywordlens/internal/metrics"
	"keywordlens/internal/research"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Env:                "development",
		BaseURL:            "http://localhost:3000",
		ViewsDir:           "../../views",
		StaticDir:          "../../static",
		SessionSecret:      "test-secret-that-is-long-enough-for-production",
		SessionIdleTimeout: 30 * time.Minute,
		SiteTitle:          "Advanced Keyword Analyzer",
	}
	catalog := config.DefaultCatalog()
	analyzer := analysis.New(
		research.NewRandomGenerator(catalog.Metrics, nil),
		research.NewExpander(catalog.Suffixes),
	)

	metrics.Init(nil, zap.NewNop())

	s := New(cfg, zap.NewNop())
	s.RegisterRoutes(nil, analyzer)
	return s
}

type testClient struct {
	t       *testing.T
	s       *Server
	cookies []*http.Cookie
}

func (ss *testClient) do(req *http.Request) (*http.Response, string) {
	ss.t.Helper()

	for _, c := range ss.cookies {
		req.AddCookie(c)
	}
	resp, err := ss.s.App.Test(req)
	require.NoError(ss.t, err)
	if fresh := resp.Cookies(); len(fresh) > 0 {
		ss.cookies = fresh
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(ss.t, err)
	return resp, string(body)
}

func (ss *testClient) postJSON(path, body string) (*http.Response, string) {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return ss.do(req)
}

func (ss *testClient) get(path string) (*http.Response, string) {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	return ss.do(req)
}

// History must survive encrypted session cookies being replayed across requests.
func TestEncryptedSessionHistoryRoundTrip(t *testing.T) {
	ss := &testClient{t: t, s: newTestServer(t)}

	resp, _ := ss.postJSON("/api/analyze", `{"keyword":"shoes"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, ss.cookies, "session cookie expected")

	ss.postJSON("/api/analyze", `{"keyword":"boots"}`)

	resp, body := ss.get("/api/history")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `["shoes","boots"]`, gjson.Get(body, "data.history").Raw)

	// A second client sees none of it.
	other := &testClient{t: t, s: ss.s}
	_, body = other.get("/api/history")
	assert.Equal(t, `[]`, gjson.Get(body, "data.history").Raw)
}

func TestDashboardFormFlow(t *testing.T) {
	ss := &testClient{t: t, s: newTestServer(t)}

	resp, body := ss.get("/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Advanced Keyword Analyzer")

	req, _ := http.NewRequest(http.MethodPost, "/analyze", strings.NewReader(url.Values{"keyword": {"shoes"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, body = ss.do(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "• shoes")
	assert.Contains(t, body, "shoes tutorial")

	resp, body = ss.get("/export")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, "Keyword,Monthly Volume,Competition,Difficulty,CPC\n"))
}

func TestErrorHandler(t *testing.T) {
	ss := &testClient{t: t, s: newTestServer(t)}

	resp, body := ss.get("/api/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", gjson.Get(body, "status").String())

	resp, body = ss.get("/export")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Analyze a keyword before downloading the CSV.")
}

func TestProbesAndMetrics(t *testing.T) {
	ss := &testClient{t: t, s: newTestServer(t)}

	resp, body := ss.get("/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", gjson.Get(body, "status").String())

	resp, body = ss.get("/readyz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "disabled", gjson.Get(body, "checks.database").String())
	assert.Equal(t, "memory", gjson.Get(body, "checks.sessions").String())

	ss.postJSON("/api/analyze", `{"keyword":"shoes"}`)
	resp, body = ss.get("/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `keywordlens_analyses_total{outcome="analyzed"}`)
	assert.Contains(t, body, "keywordlens_analysis_duration_seconds")
}

func TestDeriveEncryptionKey(t *testing.T) {
	key := deriveEncryptionKey("secret")
	raw, err := base64.StdEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
	assert.Equal(t, key, deriveEncryptionKey("secret"))
	assert.NotEqual(t, key, deriveEncryptionKey("other"))
}
