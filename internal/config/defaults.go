package config

import "time"

// Defaults applied when no other source sets a value.
const (
	DefaultTokenIssuer         = "go-cred-pool"
	DefaultTokenDuration       = time.Hour
	DefaultVersion             = "dev"
	DefaultLogLevel            = "info"
	DefaultHTTPAddress         = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultBatchMaxItems       = 500
	DefaultHealthProbeInterval = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Batch: Batch{MaxItems: DefaultBatchMaxItems},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{HealthProbeInterval: DefaultHealthProbeInterval},
	}
}
