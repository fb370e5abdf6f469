// Package patterns holds the per-variant rules used to find and pick apart
// a page's stream map.
package patterns

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/geezee/YoutubeJS/internal/media"
)

// RecordSeparator splits a normalized stream map into candidate records.
const RecordSeparator = ","

// Rules are the uncompiled expressions of a Set. Empty fields keep the
// variant's default.
type Rules struct {
	Blob      string `toml:"blob"`
	FormatID  string `toml:"itag"`
	Signature string `toml:"sig"`
	URL       string `toml:"url"`
}

var (
	nativeRules = Rules{
		Blob:      `(?i)stream_map"\s?:\s?"(.[^"]+)"`,
		FormatID:  `itag=(\d+)`,
		Signature: `sig=(.[^\|]+)`,
		URL:       `url=(.*?)\|`,
	}

	// The blob group spans the whole match so the last record keeps its
	// trailing terminator, which the sig and url rules rely on.
	pluginRules = Rules{
		Blob:      `(?i)(stream_map=.[^&]*?(?:\\\\|&))`,
		FormatID:  `itag=(\d+)`,
		Signature: `sig=(.*?)&`,
		URL:       `url=(.*?)&`,
	}
)

// Set is a compiled, immutable rule set bound to one variant.
type Set struct {
	Variant   media.Variant
	Blob      *regexp.Regexp
	FormatID  *regexp.Regexp
	Signature *regexp.Regexp
	URL       *regexp.Regexp

	// Native blobs carry JSON-escaped ampersands; they become the field
	// terminator the native rules expect.
	fieldEscape     string
	fieldTerminator string

	// Plugin blobs are percent-encoded as a whole.
	percentEncoded bool
}

// Native returns the default set for pages with a <video> element.
func Native() *Set {
	s, err := Compile(media.NativePlayback, Rules{})
	if err != nil {
		panic(err)
	}
	return s
}

// Plugin returns the default set for plugin-based pages.
func Plugin() *Set {
	s, err := Compile(media.PluginBased, Rules{})
	if err != nil {
		panic(err)
	}
	return s
}

// Defaults returns the default rules for a variant.
func Defaults(v media.Variant) Rules {
	if v == media.NativePlayback {
		return nativeRules
	}
	return pluginRules
}

// Compile builds a Set for the variant, replacing defaults with any
// non-empty override.
func Compile(v media.Variant, override Rules) (*Set, error) {
	r := Defaults(v)
	if override.Blob != "" {
		r.Blob = override.Blob
	}
	if override.FormatID != "" {
		r.FormatID = override.FormatID
	}
	if override.Signature != "" {
		r.Signature = override.Signature
	}
	if override.URL != "" {
		r.URL = override.URL
	}

	s := &Set{Variant: v}
	var err error
	if s.Blob, err = compileRule("blob", r.Blob); err != nil {
		return nil, err
	}
	if s.FormatID, err = compileRule("itag", r.FormatID); err != nil {
		return nil, err
	}
	if s.Signature, err = compileRule("sig", r.Signature); err != nil {
		return nil, err
	}
	if s.URL, err = compileRule("url", r.URL); err != nil {
		return nil, err
	}

	switch v {
	case media.NativePlayback:
		s.fieldEscape = `\u0026`
		s.fieldTerminator = "|"
	case media.PluginBased:
		s.percentEncoded = true
	}
	return s, nil
}

func compileRule(name, expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling %s rule: %w", name, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%s rule %q has no capturing group", name, expr)
	}
	return re, nil
}

// PercentEncoded reports whether the located blob must be percent-decoded
// before it is split.
func (s *Set) PercentEncoded() bool {
	return s.percentEncoded
}

// Unescape rewrites the variant's escaped field separators. It is a no-op
// for variants without one.
func (s *Set) Unescape(blob string) string {
	if s.fieldEscape == "" {
		return blob
	}
	return strings.ReplaceAll(blob, s.fieldEscape, s.fieldTerminator)
}

// Capture returns the first group of re in text.
func Capture(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
