package config

import "time"

const (
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultProviderTimeout   = 10 * time.Second
	DefaultReadHeaderTimeout = 30 * time.Second

	// FrankfurterLatestURL is the fallback provider endpoint; it is not configurable.
	FrankfurterLatestURL = "https://api.frankfurter.app/latest"
)
