// sitescan-mcp is a stdio MCP server that exposes the sitescan HTTP API as
// tools, so agent frontends can pull clinic facts and page previews during
// assisted onboarding sessions.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// scrapeRequest mirrors the sitescan API request model.
type scrapeRequest struct {
	WebsiteURL string `json:"website_url"`
}

// scrapeResponse mirrors the sitescan API response model.
type scrapeResponse struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Specialties []string `json:"specialties"`
	Schedule    string   `json:"schedule"`
	SourceURL   string   `json:"source_url"`
	Error       string   `json:"error"`
}

// previewRequest mirrors the sitescan preview request model.
type previewRequest struct {
	WebsiteURL   string `json:"website_url"`
	OutputFormat string `json:"output_format,omitempty"`
	CSSSelector  string `json:"css_selector,omitempty"`
}

// previewResponse mirrors the sitescan preview response model.
type previewResponse struct {
	Success  bool   `json:"success"`
	Content  string `json:"content"`
	Metadata *struct {
		Title     string `json:"title"`
		SourceURL string `json:"source_url"`
	} `json:"metadata"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func main() {
	apiURL := os.Getenv("SITESCAN_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	apiKey := os.Getenv("SITESCAN_API_KEY")

	s := server.NewMCPServer(
		"sitescan",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	scrapeClinicTool := mcp.NewTool("scrape_clinic",
		mcp.WithDescription("Extract structured clinic facts (name, phone, address, specialties, schedule) from a clinic website. Fields the heuristics cannot recover come back empty."),
		mcp.WithString("website_url",
			mcp.Required(),
			mcp.Description("The clinic website URL; the scheme may be omitted"),
		),
	)
	s.AddTool(scrapeClinicTool, handleScrapeClinic(apiURL, apiKey))

	previewTool := mcp.NewTool("preview_website",
		mcp.WithDescription("Fetch a clinic website and return its main content as markdown, html or text for human review."),
		mcp.WithString("website_url",
			mcp.Required(),
			mcp.Description("The website URL; the scheme may be omitted"),
		),
		mcp.WithString("output_format",
			mcp.Description("Output format: 'markdown' (default), 'html', or 'text'"),
			mcp.Enum("markdown", "html", "text"),
		),
		mcp.WithString("css_selector",
			mcp.Description("Optional CSS selector to narrow the page before extraction"),
		),
	)
	s.AddTool(previewTool, handlePreviewWebsite(apiURL, apiKey))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// apiPost sends a POST request to the sitescan API and returns the response body.
func apiPost(ctx context.Context, client *http.Client, apiURL, apiKey, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func handleScrapeClinic(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 90 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		websiteURL, err := request.RequireString("website_url")
		if err != nil {
			return mcp.NewToolResultError("website_url is required"), nil
		}

		respBody, err := apiPost(ctx, client, apiURL, apiKey, "/api/v1/scrape", scrapeRequest{WebsiteURL: websiteURL})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var scrapeResp scrapeResponse
		if err := json.Unmarshal(respBody, &scrapeResp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Source: %s\n", scrapeResp.SourceURL)
		fmt.Fprintf(&b, "Name: %s\n", orUnknown(scrapeResp.Name))
		fmt.Fprintf(&b, "Phone: %s\n", orUnknown(scrapeResp.Phone))
		fmt.Fprintf(&b, "Address: %s\n", orUnknown(scrapeResp.Address))
		fmt.Fprintf(&b, "Specialties: %s\n", orUnknown(strings.Join(scrapeResp.Specialties, ", ")))
		fmt.Fprintf(&b, "Schedule: %s\n", orUnknown(scrapeResp.Schedule))
		if scrapeResp.Error != "" {
			fmt.Fprintf(&b, "\nNote: the site could not be fetched (%s); all fields need manual entry.\n", scrapeResp.Error)
		}

		return mcp.NewToolResultText(b.String()), nil
	}
}

func handlePreviewWebsite(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 90 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		websiteURL, err := request.RequireString("website_url")
		if err != nil {
			return mcp.NewToolResultError("website_url is required"), nil
		}

		reqBody := previewRequest{
			WebsiteURL:   websiteURL,
			OutputFormat: request.GetString("output_format", ""),
			CSSSelector:  request.GetString("css_selector", ""),
		}

		respBody, err := apiPost(ctx, client, apiURL, apiKey, "/api/v1/preview", reqBody)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var preview previewResponse
		if err := json.Unmarshal(respBody, &preview); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if !preview.Success {
			errMsg := "preview failed"
			if preview.Error != nil {
				errMsg = fmt.Sprintf("[%s] %s", preview.Error.Code, preview.Error.Message)
			}
			return mcp.NewToolResultError(errMsg), nil
		}

		var result string
		if preview.Metadata != nil {
			result = fmt.Sprintf("Title: %s\nSource: %s\n\n", preview.Metadata.Title, preview.Metadata.SourceURL)
		}
		result += preview.Content

		return mcp.NewToolResultText(result), nil
	}
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not found)"
	}
	return s
}
