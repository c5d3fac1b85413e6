package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/clinivoz/sitescan/cache"
	"github.com/clinivoz/sitescan/config"
	"github.com/clinivoz/sitescan/fetcher"
	"github.com/clinivoz/sitescan/models"
)

// stubFetcher satisfies Fetcher without touching the network.
type stubFetcher struct {
	result *fetcher.Result
	err    error
	calls  int
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (*fetcher.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newScrapeRouter(f Fetcher, cc *cache.Cache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/scrape", Scrape(f, cc, config.WebhookConfig{}))
	return r
}

func postScrape(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/scrape", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScrape_MissingWebsiteURL(t *testing.T) {
	r := newScrapeRouter(&stubFetcher{}, nil)

	w := postScrape(t, r, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.ScrapeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a descriptive error message")
	}
}

func TestScrape_NetworkFailureAnswers200(t *testing.T) {
	stub := &stubFetcher{
		err: models.NewScrapeError(models.ErrCodeNetwork, "could not reach https://clinica.example", nil),
	}
	r := newScrapeRouter(stub, nil)

	w := postScrape(t, r, `{"website_url": "clinica.example"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 — fetch failures must not surface as transport errors", w.Code)
	}

	var resp models.ScrapeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error == "" {
		t.Error("error field should describe the failure")
	}
	if resp.Name != "" || resp.Phone != "" || resp.Address != "" || resp.Schedule != "" {
		t.Errorf("clinic fields should be empty, got %+v", resp.ClinicInfo)
	}
	if len(resp.Specialties) != 0 {
		t.Errorf("Specialties = %v, want empty", resp.Specialties)
	}

	// Empty collections must encode as [] / {}, never null.
	body := w.Body.String()
	if !strings.Contains(body, `"specialties":[]`) {
		t.Errorf("body should carry an empty specialties array: %s", body)
	}
	if !strings.Contains(body, `"opening_hours":{}`) {
		t.Errorf("body should carry an empty opening_hours object: %s", body)
	}
}

func TestScrape_Success(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">{"@type": "Organization", "name": "Clínica Prueba", "telephone": "612345678"}</script>
</head><body><h1>Clínica Prueba</h1></body></html>`

	stub := &stubFetcher{
		result: &fetcher.Result{Body: []byte(page), FinalURL: "https://clinica.example", StatusCode: 200},
	}
	r := newScrapeRouter(stub, nil)

	w := postScrape(t, r, `{"website_url": "clinica.example"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.ScrapeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Name != "Clínica Prueba" {
		t.Errorf("Name = %q", resp.Name)
	}
	if resp.Phone != "+34612345678" {
		t.Errorf("Phone = %q", resp.Phone)
	}
	if resp.Error != "" {
		t.Errorf("Error = %q, want empty on success", resp.Error)
	}
	if resp.SourceURL != "https://clinica.example" {
		t.Errorf("SourceURL = %q", resp.SourceURL)
	}
}

func TestScrape_CacheHit(t *testing.T) {
	page := `<html><head><title>Clínica Caché</title></head></html>`
	stub := &stubFetcher{
		result: &fetcher.Result{Body: []byte(page), StatusCode: 200},
	}
	cc := cache.New(10)
	r := newScrapeRouter(stub, cc)

	first := postScrape(t, r, `{"website_url": "clinica.example", "max_age": 60000}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d", first.Code)
	}

	second := postScrape(t, r, `{"website_url": "clinica.example", "max_age": 60000}`)
	if second.Code != http.StatusOK {
		t.Fatalf("second status = %d", second.Code)
	}
	if stub.calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (second request should hit the cache)", stub.calls)
	}

	var resp models.ScrapeResponse
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.CacheStatus != "hit" {
		t.Errorf("CacheStatus = %q, want \"hit\"", resp.CacheStatus)
	}
	if resp.Name != "Clínica Caché" {
		t.Errorf("Name = %q", resp.Name)
	}
}
