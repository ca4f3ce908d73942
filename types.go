package tombolos

import "time"

// DefaultAppName is the application name reported by the health endpoint
// when no name is configured.
const DefaultAppName = "Tombolos Web Map"

// Asset describes a single static file beneath the gateway's asset root.
// Assets are externally managed and read-only from the gateway's perspective.
type Asset struct {
	Path        string    `json:"path"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	ModTime     time.Time `json:"mod_time"`
}

// Health is the payload returned by the health endpoint. It is constant for
// the lifetime of the process and independent of filesystem state.
type Health struct {
	Status string `json:"status"`
	App    string `json:"app"`
}
