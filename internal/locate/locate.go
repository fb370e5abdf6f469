// Package locate finds the encoded stream map inside a host document.
package locate

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/geezee/YoutubeJS/internal/media"
	"github.com/geezee/YoutubeJS/internal/patterns"
)

// DefaultScriptIndex is the position, in document order, of the player
// script on native playback pages.
const DefaultScriptIndex = 13

var (
	// ErrNotFound means the page matches neither known layout.
	ErrNotFound = errors.New("stream map not found")
	// ErrMalformedBlob means the stream map was found but could not be decoded.
	ErrMalformedBlob = errors.New("malformed stream map")
)

// Document is the read-only view of a loaded host page.
type Document interface {
	// NativePlayers returns the number of native playback elements.
	NativePlayers() int
	// Script returns the text of the index-th script element.
	Script(index int) (string, bool)
	// Body returns the serialized body content.
	Body() string
}

// DetectVariant reports which layout the document uses.
func DetectVariant(doc Document) media.Variant {
	if doc.NativePlayers() > 0 {
		return media.NativePlayback
	}
	return media.PluginBased
}

// ExtractBlob locates the stream map for set's variant and normalizes it
// so it can be split into records.
func ExtractBlob(doc Document, set *patterns.Set, scriptIndex int) (string, error) {
	var content, where string
	switch set.Variant {
	case media.NativePlayback:
		script, ok := doc.Script(scriptIndex)
		if !ok {
			return "", fmt.Errorf("%w: page has no script #%d", ErrNotFound, scriptIndex)
		}
		content, where = script, fmt.Sprintf("script #%d", scriptIndex)
	default:
		content, where = doc.Body(), "page body"
	}

	blob, ok := patterns.Capture(set.Blob, content)
	if !ok {
		return "", fmt.Errorf("%w: no %s stream map in %s", ErrNotFound, set.Variant, where)
	}

	if set.PercentEncoded() {
		decoded, err := url.PathUnescape(blob)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedBlob, err)
		}
		blob = decoded
	}

	return set.Unescape(blob), nil
}
