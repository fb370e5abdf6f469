// Package extract runs the stream map pipeline over a loaded page:
// detect the layout, locate the encoded map, decode it into streams.
package extract

import (
	"fmt"

	"github.com/geezee/YoutubeJS/internal/catalog"
	"github.com/geezee/YoutubeJS/internal/decode"
	"github.com/geezee/YoutubeJS/internal/locate"
	"github.com/geezee/YoutubeJS/internal/log"
	"github.com/geezee/YoutubeJS/internal/media"
	"github.com/geezee/YoutubeJS/internal/patterns"
)

// Extractor resolves a page into its list of signed streams.
type Extractor interface {
	Extract(doc locate.Document) (*Result, error)
}

// Result is the outcome of one run.
type Result struct {
	Variant media.Variant
	Streams []media.Stream
}

// Config is the immutable input of an Extractor.
type Config struct {
	ScriptIndex int
	Native      *patterns.Set
	Plugin      *patterns.Set
	Labels      decode.Labeler
}

// DefaultConfig returns the built-in rules and catalog.
func DefaultConfig() Config {
	return Config{
		ScriptIndex: locate.DefaultScriptIndex,
		Native:      patterns.Native(),
		Plugin:      patterns.Plugin(),
		Labels:      catalog.New(),
	}
}

type pipeline struct {
	cfg Config
}

// New returns an Extractor for cfg. Nil fields fall back to the defaults.
func New(cfg Config) Extractor {
	def := DefaultConfig()
	if cfg.Native == nil {
		cfg.Native = def.Native
	}
	if cfg.Plugin == nil {
		cfg.Plugin = def.Plugin
	}
	if cfg.Labels == nil {
		cfg.Labels = def.Labels
	}
	return &pipeline{cfg: cfg}
}

// Extract runs the pipeline. It fails only when the stream map cannot be
// located or decoded; an empty Streams slice is a valid result.
func (p *pipeline) Extract(doc locate.Document) (*Result, error) {
	variant := locate.DetectVariant(doc)
	set := p.cfg.Plugin
	if variant == media.NativePlayback {
		set = p.cfg.Native
	}
	log.WithField("variant", variant).Debug("detected page layout")

	blob, err := locate.ExtractBlob(doc, set, p.cfg.ScriptIndex)
	if err != nil {
		return nil, fmt.Errorf("locating stream map: %w", err)
	}
	log.Debugf("stream map: %d bytes", len(blob))

	streams := decode.Decode(blob, set, p.cfg.Labels)
	log.Debugf("decoded %d stream(s)", len(streams))

	return &Result{Variant: variant, Streams: streams}, nil
}
