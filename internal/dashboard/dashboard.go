// Package dashboard serves the two-page affiliate dashboard embedded in the
// binary: an affiliate list and a per-affiliate overview with test controls
// for simulating clicks and postbacks. The pages are static; runtime
// configuration reaches them through the generated /env.js shim, which
// plays the role the NEXT_PUBLIC_* variables had when the dashboard was a
// separate frontend deployment.
package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"

	"affiliate-tracker/internal/config/configs"
)

// Dashboard holds the runtime configuration exposed to the pages.
type Dashboard struct {
	cfg configs.Dashboard
}

// New returns a Dashboard serving the embedded pages with the given config.
func New(cfg configs.Dashboard) *Dashboard {
	return &Dashboard{cfg: cfg}
}

// Index serves the affiliate list page.
func (d *Dashboard) Index(w http.ResponseWriter, r *http.Request) {
	d.servePage(w, "static/index.html")
}

// Overview serves the per-affiliate overview page. The page itself reads
// the affiliate_id query parameter and shows a missing-parameter message
// when it is absent.
func (d *Dashboard) Overview(w http.ResponseWriter, r *http.Request) {
	d.servePage(w, "static/dashboard.html")
}

// EnvJS writes the runtime configuration as a script setting window.__ENV.
// Empty base URLs make the pages call the origin that served them.
func (d *Dashboard) EnvJS(w http.ResponseWriter, r *http.Request) {
	env, err := json.Marshal(map[string]string{
		"backendUrl":   d.cfg.BackendURL,
		"postbackBase": d.cfg.PostbackBase,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/javascript")
	fmt.Fprintf(w, "window.__ENV = %s;\n", env)
}

func (d *Dashboard) servePage(w http.ResponseWriter, name string) {
	b, err := staticFS.ReadFile(name)
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}
