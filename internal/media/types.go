// Package media defines shared types for the youtubejs application.
package media

import "strconv"

// Variant identifies which page layout carries the stream map.
type Variant int

const (
	// NativePlayback pages expose a <video> element and keep the stream map
	// in an inline player script.
	NativePlayback Variant = iota
	// PluginBased pages embed the stream map in the plugin's flashvars.
	PluginBased
)

func (v Variant) String() string {
	switch v {
	case NativePlayback:
		return "native"
	case PluginBased:
		return "plugin"
	default:
		return "unknown"
	}
}

// Stream is one resolved entry of a page's stream map.
type Stream struct {
	FormatID int    `json:"itag"`              // Format identifier (itag)
	Quality  string `json:"quality,omitempty"` // Catalog label, empty when the itag is unknown
	URL      string `json:"url"`               // Signed download URL
}

// Label returns the quality label, falling back to the raw itag.
func (s Stream) Label() string {
	if s.Quality != "" {
		return s.Quality
	}
	return "Unknown format (itag " + strconv.Itoa(s.FormatID) + ")"
}
