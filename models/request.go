package models

// ScrapeRequest is the payload for POST /api/v1/scrape.
type ScrapeRequest struct {
	// WebsiteURL is the clinic website to scrape. Required.
	// The scheme may be omitted; "https://" is assumed when absent.
	WebsiteURL string `json:"website_url" binding:"required"`

	// Timeout is the maximum duration in seconds for the page fetch.
	// Default: 10. Max: 60.
	Timeout int `json:"timeout,omitempty" binding:"omitempty,min=1,max=60"`

	// MaxAge enables the response cache for this request: a cached result
	// younger than MaxAge milliseconds is returned without re-fetching.
	// 0 (default) bypasses the cache entirely.
	MaxAge int `json:"max_age,omitempty" binding:"omitempty,min=0"`
}

// Defaults applies default values to unset fields.
func (r *ScrapeRequest) Defaults() {
	if r.Timeout == 0 {
		r.Timeout = 10
	}
}

// PreviewRequest is the payload for POST /api/v1/preview.
type PreviewRequest struct {
	// WebsiteURL is the page to preview. Required. Scheme may be omitted.
	WebsiteURL string `json:"website_url" binding:"required"`

	// OutputFormat controls the content format of the response.
	// Allowed: "markdown" (default), "html", "text".
	OutputFormat string `json:"output_format,omitempty" binding:"omitempty,oneof=markdown html text"`

	// CSSSelector optionally narrows the page to matching elements before
	// content extraction.
	CSSSelector string `json:"css_selector,omitempty"`

	// Timeout is the maximum duration in seconds for the page fetch.
	// Default: 10. Max: 60.
	Timeout int `json:"timeout,omitempty" binding:"omitempty,min=1,max=60"`
}

// Defaults applies default values to unset fields.
func (r *PreviewRequest) Defaults() {
	if r.OutputFormat == "" {
		r.OutputFormat = "markdown"
	}
	if r.Timeout == 0 {
		r.Timeout = 10
	}
}
