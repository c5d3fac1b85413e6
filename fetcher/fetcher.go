package fetcher

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	tls2 "github.com/refraction-networking/utls"
	xproxy "golang.org/x/net/proxy"

	"github.com/clinivoz/sitescan/models"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// maxBodySize caps how much of a target page is read. Clinic sites are
// small; anything beyond this is not worth scanning.
const maxBodySize = 10 * 1024 * 1024 // 10 MB

// Result is the outcome of a successful page fetch.
type Result struct {
	// Body is the raw page content.
	Body []byte

	// FinalURL is the URL after following all redirects.
	FinalURL string

	// StatusCode is the HTTP status of the final response.
	StatusCode int
}

// Client performs single-attempt HTTP GETs against untrusted clinic
// websites, presenting a Chrome TLS fingerprint (utls) and desktop-browser
// headers so ordinary bot walls let the request through. Content is
// requested Spanish-first to match the target market.
//
// One GET per call, redirects followed, no retries.
type Client struct {
	defaultProxy string
	timeout      time.Duration
}

// New creates a fetch client. timeout is the fallback deadline for
// requests whose context carries none; a zero value falls back to 10s.
// Callers that set their own deadline (the per-request timeout knob)
// keep it.
func New(defaultProxy string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{defaultProxy: defaultProxy, timeout: timeout}
}

// NormalizeURL prefixes "https://" when the user-supplied URL has no scheme.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// Fetch retrieves targetURL once.
//
// Error contract:
//   - non-success HTTP status (>= 400) → *models.ScrapeError with ErrCodeFetch
//   - network-level failure (DNS, TLS, timeout, refused) → ErrCodeNetwork
//
// The caller decides whether those become transport errors or payload
// annotations; Fetch itself never retries.
func (c *Client) Fetch(ctx context.Context, targetURL string) (*Result, error) {
	targetURL = NormalizeURL(targetURL)

	// The config default only kicks in when the caller did not bound the
	// request itself; a caller-supplied deadline always wins.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	transport := &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialTLSChrome(ctx, network, addr, c.defaultProxy)
		},
	}
	if c.defaultProxy != "" {
		proxyURL, err := url.Parse(c.defaultProxy)
		if err == nil && (proxyURL.Scheme == "http" || proxyURL.Scheme == "https") {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	client := &http.Client{Transport: transport}
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeNetwork,
			fmt.Sprintf("invalid URL %q", targetURL), err)
	}
	req.Header.Set("User-Agent", chromeUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9,en;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeNetwork,
			fmt.Sprintf("could not reach %s", targetURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, models.NewScrapeError(models.ErrCodeFetch,
			fmt.Sprintf("HTTP %d fetching %s", resp.StatusCode, targetURL), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeNetwork,
			fmt.Sprintf("reading body from %s", targetURL), err)
	}

	return &Result{
		Body:       body,
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}, nil
}

// dialTLSChrome establishes a TLS connection using a Chrome fingerprint via utls.
func dialTLSChrome(ctx context.Context, network, addr, proxy string) (net.Conn, error) {
	var rawConn net.Conn
	var err error

	dialer := &net.Dialer{}

	if proxy != "" {
		proxyURL, parseErr := url.Parse(proxy)
		if parseErr == nil && (proxyURL.Scheme == "socks5" || proxyURL.Scheme == "socks5h") {
			socksDialer, socksErr := xproxy.FromURL(proxyURL, dialer)
			if socksErr != nil {
				return nil, fmt.Errorf("socks5 proxy: %w", socksErr)
			}
			cd, ok := socksDialer.(xproxy.ContextDialer)
			if !ok {
				return nil, fmt.Errorf("socks5 proxy: dialer does not support contexts")
			}
			rawConn, err = cd.DialContext(ctx, network, addr)
			if err != nil {
				return nil, fmt.Errorf("socks5 dial: %w", err)
			}
		}
	}

	if rawConn == nil {
		rawConn, err = dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
	}

	host, _, _ := net.SplitHostPort(addr)
	tlsConn := tls2.UClient(rawConn, &tls2.Config{
		ServerName:         host,
		InsecureSkipVerify: false,
	}, tls2.HelloChrome_Auto)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return nil, err
	}
	return tlsConn, nil
}
