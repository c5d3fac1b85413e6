package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinivoz/sitescan/content"
	"github.com/clinivoz/sitescan/fetcher"
	"github.com/clinivoz/sitescan/models"
)

// Preview returns a handler for POST /api/v1/preview.
//
// Unlike /scrape, this endpoint uses ordinary HTTP error statuses: it
// feeds the review pane, not the form prefill, so clients handle failures
// normally.
func Preview(f Fetcher, pipeline *content.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		var req models.PreviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.PreviewResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}
		req.Defaults()

		sourceURL := fetcher.NormalizeURL(req.WebsiteURL)

		fetchStart := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(req.Timeout)*time.Second)
		defer cancel()

		page, err := f.Fetch(ctx, sourceURL)
		fetchMs := time.Since(fetchStart).Milliseconds()
		if err != nil {
			respondPreviewError(c, err, models.TimingInfo{
				TotalMs: time.Since(totalStart).Milliseconds(),
				FetchMs: fetchMs,
			})
			return
		}

		extractStart := time.Now()
		resp, err := pipeline.Preview(string(page.Body), sourceURL, req.OutputFormat, req.CSSSelector)
		extractMs := time.Since(extractStart).Milliseconds()
		if err != nil {
			respondPreviewError(c, err, models.TimingInfo{
				TotalMs:   time.Since(totalStart).Milliseconds(),
				FetchMs:   fetchMs,
				ExtractMs: extractMs,
			})
			return
		}

		resp.Timing = models.TimingInfo{
			TotalMs:   time.Since(totalStart).Milliseconds(),
			FetchMs:   fetchMs,
			ExtractMs: extractMs,
		}
		c.JSON(http.StatusOK, resp)
	}
}

// respondPreviewError maps a ScrapeError to an HTTP status and writes a
// structured JSON error response.
func respondPreviewError(c *gin.Context, err error, timing models.TimingInfo) {
	var scrapeErr *models.ScrapeError
	if !errors.As(err, &scrapeErr) {
		scrapeErr = models.NewScrapeError(models.ErrCodeInternal, err.Error(), err)
	}

	c.JSON(previewErrorStatus(scrapeErr), models.PreviewResponse{
		Success: false,
		Error:   scrapeErr.ToDetail(),
		Timing:  timing,
	})
}

// previewErrorStatus translates error codes to HTTP status codes.
func previewErrorStatus(e *models.ScrapeError) int {
	switch e.Code {
	case models.ErrCodeFetch, models.ErrCodeNetwork:
		return http.StatusBadGateway // 502
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
