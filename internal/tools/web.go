package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

const (
	webUserAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_7_2) AppleWebKit/537.36"
	maxRedirects    = 5
	defaultMaxChars = 20000
)

// validateURL checks that rawURL is http(s) with a host.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("only http/https allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing domain in URL")
	}
	return nil
}

// WebpageArgs carry the validated target of a webpage call.
type WebpageArgs struct {
	URL string
}

func (WebpageArgs) isArgs() {}

func (a WebpageArgs) String() string { return "fetch " + a.URL }

// WebpageTool fetches a web page and extracts its readable text.
// Grammar: CALL_TOOL fetch <url>
type WebpageTool struct {
	maxChars   int
	httpClient *http.Client
}

// NewWebpageTool creates a WebpageTool. maxChars caps the extracted text
// and timeoutSeconds bounds the whole fetch; non-positive values select
// the defaults (20000 chars, 30 seconds).
func NewWebpageTool(maxChars, timeoutSeconds int) *WebpageTool {
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	client := &http.Client{
		Timeout: time.Duration(timeoutSeconds) * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
	return &WebpageTool{maxChars: maxChars, httpClient: client}
}

func (t *WebpageTool) Name() string { return "webpage" }

func (t *WebpageTool) Description() string {
	return "Fetches a web page and returns its readable text. " +
		"Usage: CALL_TOOL fetch <url>, e.g. CALL_TOOL fetch https://example.com."
}

// Recognize matches the webpage grammar: the call token, the fetch
// keyword, and a single operand that parses as an http(s) URL. A malformed
// URL operand is not a call to this tool.
func (t *WebpageTool) Recognize(reply string) (Args, bool) {
	fields, ok := callFields(reply)
	if !ok || len(fields) != 3 || !strings.EqualFold(fields[1], "fetch") {
		return nil, false
	}
	if err := validateURL(fields[2]); err != nil {
		return nil, false
	}
	return WebpageArgs{URL: fields[2]}, true
}

func (t *WebpageTool) Execute(ctx context.Context, args Args) Outcome {
	wa, ok := args.(WebpageArgs)
	if !ok {
		return Failuref("webpage: unexpected arguments %T", args)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wa.URL, nil)
	if err != nil {
		return Failuref("Fetching %s failed: %v", wa.URL, err)
	}
	req.Header.Set("User-Agent", webUserAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return Failuref("Fetching %s failed: %v", wa.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Failuref("Fetching %s failed with status %d.", wa.URL, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failuref("Fetching %s failed: %v", wa.URL, err)
	}

	text := t.extract(bodyBytes, resp.Header.Get("Content-Type"), wa.URL)
	if text == "" {
		return Failuref("No readable content found at %s.", wa.URL)
	}
	if len(text) > t.maxChars {
		text = text[:t.maxChars] + "\n\n[content truncated]"
	}
	return Success(text)
}

// extract turns the response body into plain text: readable article text
// for HTML, pretty-printed JSON for JSON, and the raw body otherwise.
func (t *WebpageTool) extract(body []byte, contentType, rawURL string) string {
	switch {
	case strings.Contains(contentType, "application/json"):
		var jsonData any
		if err := json.Unmarshal(body, &jsonData); err == nil {
			formatted, _ := json.MarshalIndent(jsonData, "", "  ")
			return string(formatted)
		}
		return string(body)

	case strings.Contains(contentType, "text/html") || isHTMLPrefix(body):
		parsedURL, _ := url.Parse(rawURL)
		article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
		if err != nil {
			return stripHTMLTags(string(body))
		}
		text := normalizeWhitespace(article.TextContent)
		if article.Title != "" {
			text = article.Title + "\n\n" + text
		}
		return text

	default:
		return strings.TrimSpace(string(body))
	}
}

// isHTMLPrefix returns true if the body starts with an HTML declaration.
func isHTMLPrefix(b []byte) bool {
	prefix := strings.ToLower(strings.TrimSpace(string(b[:min(256, len(b))])))
	return strings.HasPrefix(prefix, "<!doctype") || strings.HasPrefix(prefix, "<html")
}

var (
	reScript   = regexp.MustCompile(`(?is)<script[\s\S]*?</script>`)
	reStyle    = regexp.MustCompile(`(?is)<style[\s\S]*?</style>`)
	reTags     = regexp.MustCompile(`<[^>]+>`)
	reSpaces   = regexp.MustCompile(`[ \t]+`)
	reNewlines = regexp.MustCompile(`\n{3,}`)
)

// stripHTMLTags removes all HTML tags and normalizes whitespace. Fallback
// for pages readability cannot parse.
func stripHTMLTags(text string) string {
	text = reScript.ReplaceAllString(text, "")
	text = reStyle.ReplaceAllString(text, "")
	text = reTags.ReplaceAllString(text, "")
	return normalizeWhitespace(text)
}

func normalizeWhitespace(text string) string {
	text = reSpaces.ReplaceAllString(text, " ")
	text = reNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
