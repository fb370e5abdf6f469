// Package decode turns a located stream map into signed stream descriptors.
//
// Records that lack any of the itag, signature or url fields are routine in
// real pages and are dropped without error.
package decode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geezee/YoutubeJS/internal/log"
	"github.com/geezee/YoutubeJS/internal/media"
	"github.com/geezee/YoutubeJS/internal/patterns"
)

// signatureParam joins the decoded url and signature.
const signatureParam = "&signature="

// Labeler resolves an itag to its quality label.
type Labeler interface {
	Lookup(formatID int) (string, bool)
}

// Decode splits blob into records and returns one stream per complete
// record, in record order. The result is never nil.
func Decode(blob string, set *patterns.Set, labels Labeler) []media.Stream {
	streams := make([]media.Stream, 0)

	for i, record := range strings.Split(blob, patterns.RecordSeparator) {
		if record == "" {
			continue
		}

		s, reason := decodeRecord(record, set, labels)
		if reason != "" {
			log.WithField("record", i).Debugf("skipped: %s", reason)
			continue
		}
		streams = append(streams, s)
	}

	return streams
}

// decodeRecord returns a non-empty reason when the record yields no stream.
func decodeRecord(record string, set *patterns.Set, labels Labeler) (media.Stream, string) {
	itag, okItag := patterns.Capture(set.FormatID, record)
	sig, okSig := patterns.Capture(set.Signature, record)
	rawURL, okURL := patterns.Capture(set.URL, record)
	switch {
	case !okItag:
		return media.Stream{}, "no itag"
	case !okSig:
		return media.Stream{}, "no signature"
	case !okURL:
		return media.Stream{}, "no url"
	}

	formatID, err := strconv.Atoi(itag)
	if err != nil {
		return media.Stream{}, fmt.Sprintf("bad itag %q: %v", itag, err)
	}

	signature, err := percentDecode(sig)
	if err != nil {
		return media.Stream{}, fmt.Sprintf("bad signature: %v", err)
	}

	label, _ := labels.Lookup(formatID)
	return media.Stream{
		FormatID: formatID,
		Quality:  label,
		URL:      legacyUnescape(rawURL) + signatureParam + signature,
	}, ""
}
