package configs

// Dashboard holds the base URLs the embedded dashboard pages use at runtime.
// Both default to empty, which makes the pages call the host that served
// them. They exist so the dashboard can point at an API deployed elsewhere,
// and so the postback URL format shown to affiliates can differ from the
// browser-facing address.
type Dashboard struct {
	// BackendURL is the base URL of the tracking API as seen from the
	// browser, without a trailing slash.
	BackendURL string `env:"BACKEND_URL"`
	// PostbackBase is the base URL advertised in the postback URL format,
	// without a trailing slash.
	PostbackBase string `env:"POSTBACK_BASE"`
}
