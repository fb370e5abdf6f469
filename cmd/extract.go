package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/geezee/YoutubeJS/internal/config"
	"github.com/geezee/YoutubeJS/internal/extract"
	"github.com/geezee/YoutubeJS/internal/httputil"
	"github.com/geezee/YoutubeJS/internal/locate"
	"github.com/geezee/YoutubeJS/internal/log"
	"github.com/geezee/YoutubeJS/internal/media"
	"github.com/geezee/YoutubeJS/internal/page"
	"github.com/geezee/YoutubeJS/internal/render"
	"github.com/geezee/YoutubeJS/internal/ui"
)

// extractRun is the default command: youtubejs [file|url|-]
func extractRun(cmd *cobra.Command, args []string) error {
	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	doc, err := loadPage(source)
	if err != nil {
		return err
	}

	ext, err := newExtractor(cfg)
	if err != nil {
		return err
	}

	res, err := ext.Extract(doc)
	if err != nil {
		return describeFailure(err)
	}
	log.Debugf("%s page, %d stream(s)", res.Variant, len(res.Streams))

	if len(res.Streams) == 0 {
		fmt.Fprintln(os.Stderr, "No downloadable streams found.")
	}

	if flagPick {
		if len(res.Streams) == 0 {
			return nil
		}
		s, err := ui.PickStream(res.Streams)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.URL)
		return nil
	}

	if flagOutput != "" {
		return writeOutput(flagOutput, res.Streams)
	}

	format := resolveFormat(cfg.Format, isTerminal(os.Stdout))
	return render.New(format, cfg.LinkWidth).Render(cmd.OutOrStdout(), res.Streams)
}

// loadPage reads the host document from stdin, a file or an HTTPS URL.
func loadPage(source string) (*page.Page, error) {
	switch {
	case source == "-":
		log.Debugf("reading page from stdin")
		return page.Load(os.Stdin, "")
	case httputil.IsURL(source):
		log.Debugf("fetching page: %s", source)
		return page.Fetch(httputil.NewClient(), source, cfg.UserAgent)
	default:
		log.Debugf("opening page: %s", source)
		return page.Open(source)
	}
}

// newExtractor builds the pipeline from the merged configuration.
func newExtractor(c *config.Config) (extract.Extractor, error) {
	native, err := c.PatternSet(media.NativePlayback)
	if err != nil {
		return nil, fmt.Errorf("native patterns: %w", err)
	}
	plugin, err := c.PatternSet(media.PluginBased)
	if err != nil {
		return nil, fmt.Errorf("plugin patterns: %w", err)
	}

	ec := extract.DefaultConfig()
	ec.ScriptIndex = c.ScriptIndex
	ec.Native = native
	ec.Plugin = plugin
	return extract.New(ec), nil
}

// describeFailure turns a terminal pipeline error into the user-facing message.
func describeFailure(err error) error {
	switch {
	case errors.Is(err, locate.ErrNotFound):
		return fmt.Errorf("page structure not recognized: %w", err)
	case errors.Is(err, locate.ErrMalformedBlob):
		return fmt.Errorf("stream map could not be decoded: %w", err)
	default:
		return err
	}
}

// resolveFormat maps "auto" to text on a terminal and JSON otherwise.
func resolveFormat(name string, tty bool) render.Format {
	if strings.EqualFold(name, "auto") {
		if tty {
			return render.FormatText
		}
		return render.FormatJSON
	}
	f, err := render.ParseFormat(name)
	if err != nil {
		return render.FormatText
	}
	return f
}

// formatForFile picks the format of an --output file from cfg or its extension.
func formatForFile(name, path string) render.Format {
	if !strings.EqualFold(name, "auto") {
		return resolveFormat(name, false)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return render.FormatJSON
	case ".txt":
		return render.FormatText
	default:
		return render.FormatHTML
	}
}

// writeOutput renders streams into path, keeping the file inside its directory.
func writeOutput(path string, streams []media.Stream) error {
	target, err := httputil.SafeOutputPath(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	format := formatForFile(cfg.Format, target)
	if err := render.New(format, cfg.LinkWidth).Render(f, streams); err != nil {
		f.Close()
		os.Remove(target)
		return fmt.Errorf("writing %s output: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote: %s\n", target)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
