package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinivoz/sitescan/cache"
	"github.com/clinivoz/sitescan/config"
	"github.com/clinivoz/sitescan/extract"
	"github.com/clinivoz/sitescan/fetcher"
	"github.com/clinivoz/sitescan/models"
	"github.com/clinivoz/sitescan/webhook"
)

// Fetcher retrieves one page with a single GET. Satisfied by
// *fetcher.Client; tests substitute stubs.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetcher.Result, error)
}

// Scrape returns a handler for POST /api/v1/scrape.
//
// Contract: the endpoint always answers 200 with a usable ClinicInfo
// shape, except for invalid input (400). When the target site cannot be
// fetched, every clinic field is empty and the error field explains why —
// the onboarding UI prefills a form from this payload and must never have
// to branch on transport status.
func Scrape(f Fetcher, cc *cache.Cache, whCfg config.WebhookConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		// ── 1. Parse request ────────────────────────────────────────
		var req models.ScrapeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			resp := models.ScrapeResponse{ClinicInfo: models.EmptyClinicInfo()}
			resp.Error = "website_url is required: " + err.Error()
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		req.Defaults()

		sourceURL := fetcher.NormalizeURL(req.WebsiteURL)

		// ── 1b. Cache lookup ────────────────────────────────────────
		if cc != nil && req.MaxAge > 0 {
			if cached, hit := cc.Get(cache.Key(sourceURL), req.MaxAge); hit {
				resp := *cached
				resp.CacheStatus = "hit"
				resp.Timing = models.TimingInfo{TotalMs: time.Since(totalStart).Milliseconds()}
				c.JSON(http.StatusOK, resp)
				return
			}
		}

		// ── 2. Fetch ────────────────────────────────────────────────
		fetchStart := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(req.Timeout)*time.Second)
		defer cancel()

		page, err := f.Fetch(ctx, sourceURL)
		fetchMs := time.Since(fetchStart).Milliseconds()

		if err != nil {
			// Fetch and network failures travel inside the payload, not
			// as transport errors.
			slog.Warn("scrape: fetch failed", "url", sourceURL, "error", err)

			resp := models.ScrapeResponse{
				ClinicInfo: models.EmptyClinicInfo(),
				SourceURL:  sourceURL,
				Timing: models.TimingInfo{
					TotalMs: time.Since(totalStart).Milliseconds(),
					FetchMs: fetchMs,
				},
				Error: fetchErrorMessage(err),
			}
			if whCfg.URL != "" {
				webhook.DeliverAsync(whCfg.URL, whCfg.Secret, &webhook.Event{
					Type:      "scrape.failed",
					SourceURL: sourceURL,
					Timestamp: time.Now().Unix(),
					Data:      gin.H{"error": resp.Error},
				})
			}
			c.JSON(http.StatusOK, resp)
			return
		}

		if !fetcher.LooksLikeHTML(page.Body) {
			slog.Warn("scrape: response does not look like HTML", "url", sourceURL)
		} else if fetcher.VisibleTextLength(page.Body) < 200 {
			slog.Warn("scrape: page has almost no visible text, likely a client-rendered shell",
				"url", sourceURL)
		}

		// ── 3. Extract ──────────────────────────────────────────────
		extractStart := time.Now()
		info := extract.Extract(string(page.Body))
		extractMs := time.Since(extractStart).Milliseconds()

		// ── 4. Assemble and respond ─────────────────────────────────
		resp := models.ScrapeResponse{
			ClinicInfo: info,
			SourceURL:  sourceURL,
			Timing: models.TimingInfo{
				TotalMs:   time.Since(totalStart).Milliseconds(),
				FetchMs:   fetchMs,
				ExtractMs: extractMs,
			},
		}

		// ── 5. Cache store + webhook ────────────────────────────────
		if cc != nil && req.MaxAge > 0 {
			stored := resp
			cc.Set(cache.Key(sourceURL), &stored)
			resp.CacheStatus = "miss"
		}
		if whCfg.URL != "" {
			webhook.DeliverAsync(whCfg.URL, whCfg.Secret, &webhook.Event{
				Type:      "scrape.completed",
				SourceURL: sourceURL,
				Timestamp: time.Now().Unix(),
				Data:      info,
			})
		}

		c.JSON(http.StatusOK, resp)
	}
}

// fetchErrorMessage renders the payload error string for a failed fetch.
func fetchErrorMessage(err error) string {
	var scrapeErr *models.ScrapeError
	if errors.As(err, &scrapeErr) {
		return scrapeErr.Message
	}
	return err.Error()
}
