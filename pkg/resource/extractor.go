package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Extractor fetches a study resource URL and pulls out its readable
// text so the generator prompt can reference the student's materials.
type Extractor struct {
	allow    map[string]bool
	maxBytes int
	httpc    *http.Client
}

// New builds an extractor from a comma-separated allow-list of hosts.
// An empty list disables URL fetching entirely.
func New(allowedDomains string) *Extractor {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	return &Extractor{
		allow:    allow,
		maxBytes: 1500000,
		httpc:    &http.Client{Timeout: 20 * time.Second},
	}
}

var urlRX = regexp.MustCompile(`https?://\S+`)

// ErrNotAllowed reports a URL outside the configured allow-list.
var ErrNotAllowed = errors.New("domain not allowed")

// Notes scans a free-form resources field for an allowed URL and returns
// its extracted text, capped for prompt use. Any failure returns "" so
// generation proceeds without enrichment.
func (e *Extractor) Notes(resources string) string {
	raw := urlRX.FindString(resources)
	if raw == "" {
		return ""
	}
	title, text, err := e.Extract(raw)
	if err != nil {
		log.Printf("[resource] extract %s: %v", raw, err)
		return ""
	}
	if len(text) > 6000 {
		text = text[:6000]
	}
	if title != "" {
		return title + "\n" + text
	}
	return text
}

// Extract fetches an allowed URL and returns its title and main text
// (headers, paragraphs and list items).
func (e *Extractor) Extract(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("bad url: %w", err)
	}
	host := strings.ToLower(u.Host)
	if !e.allow[host] {
		return "", "", fmt.Errorf("%w: %s", ErrNotAllowed, host)
	}

	resp, err := e.httpc.Get(raw)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(e.maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(e.maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	if strings.Contains(ct, "text/plain") {
		text := string(b)
		return guessTitleFromText(text), text, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	return title, cleanWhitespace(strings.Join(parts, "\n")), nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func guessTitleFromText(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
