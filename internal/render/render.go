// Package render presents decoded streams as a terminal table, an HTML
// page or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/geezee/YoutubeJS/internal/media"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// DefaultTitle is the HTML page title.
const DefaultTitle = "YoutubeJS Downloader"

// DefaultLinkWidth is how many characters of a link the HTML page shows.
const DefaultLinkWidth = 100

// Renderer writes a list of streams to w. An empty list is rendered as an
// empty result, never as an error.
type Renderer interface {
	Render(w io.Writer, streams []media.Stream) error
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatHTML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (valid: text, html, json)", name)
	}
}

// New returns the renderer for a format. linkWidth applies to the HTML page.
func New(f Format, linkWidth int) Renderer {
	switch f {
	case FormatHTML:
		return &HTML{Title: DefaultTitle, LinkWidth: linkWidth}
	case FormatJSON:
		return JSON{}
	default:
		return Text{}
	}
}

// JSON writes the streams as an indented JSON array.
type JSON struct{}

func (JSON) Render(w io.Writer, streams []media.Stream) error {
	if streams == nil {
		streams = []media.Stream{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(streams)
}
