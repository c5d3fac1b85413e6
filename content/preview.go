// Package content produces a readable rendition of a clinic website for
// the human-review pane of the onboarding UI: the reviewer sees the page's
// main content next to the prefilled profile form.
package content

import (
	"log/slog"
	"math"
	nurl "net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	readability "github.com/go-shiori/go-readability"

	"github.com/clinivoz/sitescan/models"
)

// minContentLength is the minimum extracted text length (in characters)
// for readability output to be considered valid. Below this we assume the
// algorithm failed to locate the main content and fall back to raw HTML.
const minContentLength = 50

// Pipeline turns raw page HTML into reviewer-facing content:
//
//	Stage 1 (readability): extract main content, strip nav/footer/ads
//	Stage 2 (format):      convert to Markdown, or pass through html/text
//
// The Markdown converter is created once and reused (goroutine-safe).
type Pipeline struct {
	mdConverter *converter.Converter
}

// NewPipeline initialises the Pipeline with a pre-configured converter.
func NewPipeline() *Pipeline {
	return &Pipeline{mdConverter: newMarkdownConverter()}
}

// Preview runs the pipeline and returns a partial PreviewResponse
// (Content, Metadata, Tokens filled; Timing is left to the API layer).
// cssSelector, when non-empty, narrows the page before extraction.
func (p *Pipeline) Preview(rawHTML, sourceURL, format, cssSelector string) (*models.PreviewResponse, error) {
	originalTokens := EstimateTokens(rawHTML)

	if cssSelector != "" {
		filtered, err := ApplyCSSSelector(rawHTML, cssSelector)
		if err != nil {
			return nil, models.NewScrapeError(models.ErrCodeInvalidInput,
				"invalid css_selector", err)
		}
		rawHTML = filtered
	}

	article := extractArticle(rawHTML, sourceURL)

	var out string
	var err error
	switch format {
	case "html":
		out = article.Content
	case "text":
		out = article.TextContent
	default: // "markdown"
		out, err = toMarkdown(p.mdConverter, article.Content, sourceURL)
		if err != nil {
			return nil, models.NewScrapeError(models.ErrCodeExtraction,
				"markdown conversion failed", err)
		}
	}

	cleanedTokens := EstimateTokens(out)
	savings := 0.0
	if originalTokens > 0 {
		savings = float64(originalTokens-cleanedTokens) / float64(originalTokens) * 100
		savings = math.Round(savings*100) / 100
	}

	return &models.PreviewResponse{
		Success: true,
		Content: out,
		Metadata: models.Metadata{
			Title:       article.Title,
			Description: article.Excerpt,
			SiteName:    article.SiteName,
			Language:    article.Language,
			SourceURL:   sourceURL,
		},
		Tokens: models.TokenInfo{
			OriginalEstimate: originalTokens,
			CleanedEstimate:  cleanedTokens,
			SavingsPercent:   savings,
		},
	}, nil
}

// extractArticle runs the Mozilla Readability algorithm over rawHTML.
// The preview must never fail just because readability choked, so any
// failure (bad URL, extraction error, near-empty result) falls back to
// the raw HTML wrapped in an Article.
func extractArticle(rawHTML, sourceURL string) readability.Article {
	parsedURL, err := nurl.Parse(sourceURL)
	if err != nil {
		slog.Warn("preview: invalid source URL, using raw HTML", "url", sourceURL, "error", err)
		return fallbackArticle(rawHTML)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		slog.Warn("preview: readability failed, using raw HTML", "url", sourceURL, "error", err)
		return fallbackArticle(rawHTML)
	}

	if len(strings.TrimSpace(article.TextContent)) < minContentLength {
		slog.Warn("preview: extracted content too short, using raw HTML",
			"url", sourceURL, "length", len(article.TextContent))
		return fallbackArticle(rawHTML)
	}

	return article
}

func fallbackArticle(rawHTML string) readability.Article {
	return readability.Article{
		Content:     rawHTML,
		TextContent: rawHTML,
	}
}
