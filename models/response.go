package models

// ScrapeResponse is the response for POST /api/v1/scrape.
//
// The clinic fields are embedded at the top level so the body is a
// ClinicInfo plus bookkeeping. The endpoint answers 200 even when the
// target site could not be fetched: in that case every clinic field is
// empty and Error explains why. Clients prefill a review form from this
// shape and must never branch on transport status.
type ScrapeResponse struct {
	ClinicInfo

	// SourceURL is the normalized URL that was fetched.
	SourceURL string `json:"source_url"`

	// Timing provides duration breakdowns for the operation.
	Timing TimingInfo `json:"timing"`

	// CacheStatus indicates whether the response was served from cache.
	// Values: "hit", "miss", or empty (caching not requested).
	CacheStatus string `json:"cache_status,omitempty"`

	// Error describes a fetch or network failure. Empty on success.
	// Extraction misses are not errors; they leave fields empty instead.
	Error string `json:"error,omitempty"`
}

// PreviewResponse is the response for POST /api/v1/preview.
type PreviewResponse struct {
	// Success indicates whether the preview completed without errors.
	Success bool `json:"success"`

	// Content is the extracted main content in the requested format.
	Content string `json:"content"`

	// Metadata contains page metadata from the content extraction stage.
	Metadata Metadata `json:"metadata"`

	// Tokens provides token estimates before and after extraction.
	Tokens TokenInfo `json:"tokens"`

	// Timing provides duration breakdowns for the operation.
	Timing TimingInfo `json:"timing"`

	// Error is populated only when Success is false.
	Error *ErrorDetail `json:"error,omitempty"`
}

// Metadata holds page-level information extracted during a preview.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
	Language    string `json:"language,omitempty"`
	SourceURL   string `json:"source_url"`
}

// TokenInfo provides before/after token estimates for the preview pipeline.
type TokenInfo struct {
	// OriginalEstimate is the estimated token count of the raw HTML.
	OriginalEstimate int `json:"original_estimate"`

	// CleanedEstimate is the estimated token count of the extracted output.
	CleanedEstimate int `json:"cleaned_estimate"`

	// SavingsPercent is the percentage of tokens removed (0-100).
	SavingsPercent float64 `json:"savings_percent"`
}

// TimingInfo breaks down the time spent in each phase.
type TimingInfo struct {
	// TotalMs is the end-to-end duration in milliseconds.
	TotalMs int64 `json:"total_ms"`

	// FetchMs is the time spent fetching the target page.
	FetchMs int64 `json:"fetch_ms"`

	// ExtractMs is the time spent running the extraction pipeline.
	ExtractMs int64 `json:"extract_ms"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"` // "healthy"
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
