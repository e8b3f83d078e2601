package configs

import "time"

// HTTP defines configuration for the HTTP server. Besides the listen port it
// carries the CORS allow-list consumed by the router and the per-request
// deadline applied by the timeout middleware.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 4000,
	// matching the documented postback URL examples.
	Port uint16 `env:"PORT" envDefault:"4000"`

	// CORSOrigins is the list of origins allowed to call the API from a
	// browser. The default "*" permits all origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// RequestTimeout bounds the handling of a single request. Requests
	// exceeding it are answered with 504 by the timeout middleware.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}
