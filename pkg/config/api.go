package config

// APIConfig controls the HTTP server.
type APIConfig struct {
	// ListenAddr is the bind address for the HTTP server.
	ListenAddr string `yaml:"listen_addr"`

	// ClientRequestsPerSecond is the per-client request budget. Clients are
	// identified by the X-Client-ID header.
	ClientRequestsPerSecond float64 `yaml:"client_requests_per_second"`

	// ClientBurst is the per-client burst allowance.
	ClientBurst int `yaml:"client_burst"`

	// AnonymousRequestsPerSecond is the budget shared by all requests that
	// carry no client identity.
	AnonymousRequestsPerSecond float64 `yaml:"anonymous_requests_per_second"`

	// AnonymousBurst is the shared anonymous burst allowance.
	AnonymousBurst int `yaml:"anonymous_burst"`
}

// DefaultAPIConfig returns the built-in API defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		ListenAddr:                 ":8080",
		ClientRequestsPerSecond:    10,
		ClientBurst:                20,
		AnonymousRequestsPerSecond: 2,
		AnonymousBurst:             5,
	}
}
