// Package ingestion loads job posting files for keyword extraction.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlExtensions lists file extensions that always go through HTML
// extraction.
var htmlExtensions = map[string]bool{".html": true, ".htm": true}

// postingSelectors are tried in order to locate the posting body on job
// board pages before falling back to the whole document body.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ReadJobPosting loads a job posting file. Plain text comes back exactly
// as stored so phrase matching sees the original spacing; HTML files are
// reduced to their visible posting text first.
func ReadJobPosting(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &LoadError{Path: path, Message: "job posting not found", Cause: err}
		}
		return "", nil, &LoadError{Path: path, Message: "failed to read job posting", Cause: err}
	}

	text := string(data)
	if isHTML(path, text) {
		text, err = ExtractPostingText(text)
		if err != nil {
			return "", nil, &LoadError{Path: path, Message: "failed to extract text from HTML", Cause: err}
		}
	}

	return text, NewMetadata(path, text), nil
}

// isHTML reports whether the file should go through HTML extraction,
// by extension or by sniffing the document prefix.
func isHTML(path, content string) bool {
	if htmlExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(content))
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// ExtractPostingText parses HTML and returns the visible posting text.
// Noise elements are dropped, then the first matching posting selector
// wins; pages without one fall back to the body element.
func ExtractPostingText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims lines and drops the empties left behind by markup.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
