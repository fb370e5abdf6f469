// Package page wraps a parsed HTML document and exposes the few queries the
// stream locator needs. Documents are parsed into a DOM with goquery, so
// nothing in the page is ever evaluated.
package page

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/geezee/YoutubeJS/internal/httputil"
)

// maxPageSize caps how much of a document is read.
const maxPageSize = 10 * 1024 * 1024

// Page is a loaded host document.
type Page struct {
	doc *goquery.Document
}

// New wraps an already parsed goquery document.
func New(doc *goquery.Document) *Page {
	return &Page{doc: doc}
}

// Load parses a document from r. contentType is the Content-Type header
// value, if any, and is used to pick the text encoding.
func Load(r io.Reader, contentType string) (*Page, error) {
	body, err := charset.NewReader(io.LimitReader(r, maxPageSize), contentType)
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return New(doc), nil
}

// Open loads a saved document from disk.
func Open(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	return Load(f, "")
}

// Fetch downloads and parses the document at pageURL. Only HTTPS is allowed.
func Fetch(client *http.Client, pageURL, userAgent string) (*Page, error) {
	resp, err := httputil.Get(client, pageURL, userAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, pageURL)
	}

	return Load(resp.Body, resp.Header.Get("Content-Type"))
}

// NativePlayers returns the number of <video> elements.
func (p *Page) NativePlayers() int {
	return p.doc.Find("video").Length()
}

// Script returns the text of the index-th <script> element in document
// order. ok is false when there is no such element.
func (p *Page) Script(index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	s := p.doc.Find("script").Eq(index)
	if s.Length() == 0 {
		return "", false
	}
	return s.Text(), true
}

// Body returns the serialized inner HTML of <body>.
func (p *Page) Body() string {
	html, err := p.doc.Find("body").Html()
	if err != nil {
		return ""
	}
	return html
}
