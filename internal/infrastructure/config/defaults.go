package config

import "time"

const (
	DefaultHTTPPort        = "8765"
	DefaultProvider        = "yahoo"
	DefaultUpstreamBaseURL = "https://query1.finance.yahoo.com"
	DefaultUpstreamAgent   = "Mozilla/5.0"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultFakePrice       = 100.0
)
