package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"affiliate-tracker/internal/config/configs"
)

func TestEnvJS(t *testing.T) {
	d := New(configs.Dashboard{BackendURL: "http://api:4000", PostbackBase: "https://track.example.com"})

	rec := httptest.NewRecorder()
	d.EnvJS(rec, httptest.NewRequest(http.MethodGet, "/env.js", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/javascript" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "window.__ENV = ") {
		t.Fatalf("unexpected env.js body: %q", body)
	}
	for _, want := range []string{`"backendUrl":"http://api:4000"`, `"postbackBase":"https://track.example.com"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("env.js missing %s: %q", want, body)
		}
	}
}

// TestOverviewPageEscapesTokens guards the overview tables against markup
// injection: click_id is an opaque caller-supplied string anyone can write
// via GET /click, so every cell must be built through textContent. An
// innerHTML assignment anywhere in the page would let a stored token like
// "<img src=x onerror=...>" execute in the operator's browser.
func TestOverviewPageEscapesTokens(t *testing.T) {
	b, err := staticFS.ReadFile("static/dashboard.html")
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	page := string(b)
	if strings.Contains(page, "innerHTML") {
		t.Fatalf("overview page assigns innerHTML; table cells must use textContent")
	}
	if !strings.Contains(page, "textContent") {
		t.Fatalf("overview page no longer builds cells via textContent")
	}
}

// TestOverviewPageMutationErrorBanners checks both mutate-then-reload flows
// surface a visible error instead of rejecting silently.
func TestOverviewPageMutationErrorBanners(t *testing.T) {
	b, err := staticFS.ReadFile("static/dashboard.html")
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	page := string(b)
	for _, want := range []string{"Failed to log click", "Failed to send postback"} {
		if !strings.Contains(page, want) {
			t.Fatalf("overview page missing %q error fallback", want)
		}
	}
}

func TestPagesServed(t *testing.T) {
	d := New(configs.Dashboard{})

	rec := httptest.NewRecorder()
	d.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Affiliate Dashboard") {
		t.Fatalf("index page not served: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	d.Overview(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Missing affiliate_id") {
		t.Fatalf("overview page not served: %d", rec.Code)
	}
}
