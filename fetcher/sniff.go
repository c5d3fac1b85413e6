package fetcher

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// VisibleTextLength returns the length of the visible text inside <body>,
// skipping <script>/<style>/<noscript> content. Pages with almost no
// visible text are usually client-rendered SPA shells, on which the
// pattern extractors cannot find anything; callers log a warning so the
// miss is explainable.
func VisibleTextLength(body []byte) int {
	tokenizer := html.NewTokenizer(bytes.NewReader(body))
	total := 0
	inBody := false
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return total
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == "body" {
				inBody = true
			}
			if tag == "script" || tag == "style" || tag == "noscript" {
				skipDepth++
			}
		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == "script" || tag == "style" || tag == "noscript" {
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if inBody && skipDepth == 0 {
				total += len(strings.TrimSpace(string(tokenizer.Text())))
			}
		}
	}
}

// LooksLikeHTML reports whether the fetched body parses as markup rather
// than, say, a PDF or a JSON API response someone pasted as their website.
func LooksLikeHTML(body []byte) bool {
	head := body
	if len(head) > 1024 {
		head = head[:1024]
	}
	lower := strings.ToLower(strings.TrimSpace(string(head)))
	return strings.HasPrefix(lower, "<!doctype html") ||
		strings.HasPrefix(lower, "<html") ||
		strings.Contains(lower, "<head") ||
		strings.Contains(lower, "<body")
}
