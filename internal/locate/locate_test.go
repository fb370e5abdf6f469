package locate

import (
	"errors"
	"strings"
	"testing"

	"github.com/geezee/YoutubeJS/internal/media"
	"github.com/geezee/YoutubeJS/internal/patterns"
)

// fakeDoc is a synthetic Document.
type fakeDoc struct {
	videos  int
	scripts []string
	body    string
}

func (d fakeDoc) NativePlayers() int { return d.videos }

func (d fakeDoc) Script(i int) (string, bool) {
	if i < 0 || i >= len(d.scripts) {
		return "", false
	}
	return d.scripts[i], true
}

func (d fakeDoc) Body() string { return d.body }

// scriptsWith returns DefaultScriptIndex filler scripts followed by player.
func scriptsWith(player string) []string {
	scripts := make([]string, DefaultScriptIndex, DefaultScriptIndex+1)
	for i := range scripts {
		scripts[i] = "var filler = true;"
	}
	return append(scripts, player)
}

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		name string
		doc  fakeDoc
		want media.Variant
	}{
		{"video element", fakeDoc{videos: 1}, media.NativePlayback},
		{"several videos", fakeDoc{videos: 3, body: "stream_map=x&"}, media.NativePlayback},
		{"no video", fakeDoc{body: "stream_map=x&"}, media.PluginBased},
		{"empty document", fakeDoc{}, media.PluginBased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectVariant(tt.doc); got != tt.want {
				t.Errorf("DetectVariant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractBlobNative(t *testing.T) {
	player := `var ytplayer = {"args": {"url_encoded_fmt_stream_map": "itag=22\u0026url=http%3A%2F%2Fv.example%2Fa\u0026sig=A,itag=18\u0026sig=B", "title": "x"}};`
	doc := fakeDoc{videos: 1, scripts: scriptsWith(player)}

	blob, err := ExtractBlob(doc, patterns.Native(), DefaultScriptIndex)
	if err != nil {
		t.Fatalf("ExtractBlob() error: %v", err)
	}
	want := "itag=22|url=http%3A%2F%2Fv.example%2Fa|sig=A,itag=18|sig=B"
	if blob != want {
		t.Errorf("ExtractBlob() = %q, want %q", blob, want)
	}
}

func TestExtractBlobNativeCaseInsensitive(t *testing.T) {
	player := `{"FMT_STREAM_MAP" : "itag=5\u0026sig=Z"}`
	doc := fakeDoc{videos: 1, scripts: scriptsWith(player)}

	blob, err := ExtractBlob(doc, patterns.Native(), DefaultScriptIndex)
	if err != nil {
		t.Fatalf("ExtractBlob() error: %v", err)
	}
	if blob != "itag=5|sig=Z" {
		t.Errorf("ExtractBlob() = %q, want itag=5|sig=Z", blob)
	}
}

func TestExtractBlobNativeOnlyScansFixedScript(t *testing.T) {
	player := `{"stream_map": "itag=22\u0026sig=A"}`
	scripts := scriptsWith("var nothing;")
	scripts[2] = player

	doc := fakeDoc{videos: 1, scripts: scripts, body: player}
	if _, err := ExtractBlob(doc, patterns.Native(), DefaultScriptIndex); !errors.Is(err, ErrNotFound) {
		t.Errorf("ExtractBlob() error = %v, want ErrNotFound", err)
	}

	// A different index finds it.
	blob, err := ExtractBlob(doc, patterns.Native(), 2)
	if err != nil {
		t.Fatalf("ExtractBlob(index 2) error: %v", err)
	}
	if blob != "itag=22|sig=A" {
		t.Errorf("ExtractBlob(index 2) = %q", blob)
	}
}

func TestExtractBlobNativeMissingScript(t *testing.T) {
	doc := fakeDoc{videos: 1, scripts: []string{`{"stream_map": "itag=1"}`}}
	_, err := ExtractBlob(doc, patterns.Native(), DefaultScriptIndex)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ExtractBlob() error = %v, want ErrNotFound", err)
	}
}

func TestExtractBlobPlugin(t *testing.T) {
	body := `<embed flashvars="ttl=1&amp;url_encoded_fmt_stream_map=url%3Dhttp%253A%252F%252Fv.example%252Fa%26sig%3DA%26itag%3D22%2Citag%3D18&amp;fs=1">`
	doc := fakeDoc{body: body}

	blob, err := ExtractBlob(doc, patterns.Plugin(), DefaultScriptIndex)
	if err != nil {
		t.Fatalf("ExtractBlob() error: %v", err)
	}
	want := "stream_map=url=http%3A%2F%2Fv.example%2Fa&sig=A&itag=22,itag=18&"
	if blob != want {
		t.Errorf("ExtractBlob() = %q, want %q", blob, want)
	}
}

func TestExtractBlobPluginKeepsPlus(t *testing.T) {
	doc := fakeDoc{body: `stream_map=sig%3Da+b&`}
	blob, err := ExtractBlob(doc, patterns.Plugin(), DefaultScriptIndex)
	if err != nil {
		t.Fatalf("ExtractBlob() error: %v", err)
	}
	if blob != "stream_map=sig=a+b&" {
		t.Errorf("ExtractBlob() = %q", blob)
	}
}

func TestExtractBlobPluginMalformed(t *testing.T) {
	doc := fakeDoc{body: `stream_map=itag%3D22%2&`}
	_, err := ExtractBlob(doc, patterns.Plugin(), DefaultScriptIndex)
	if !errors.Is(err, ErrMalformedBlob) {
		t.Errorf("ExtractBlob() error = %v, want ErrMalformedBlob", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("malformed blob should not be reported as not found")
	}
}

func TestExtractBlobNotFound(t *testing.T) {
	tests := []struct {
		name string
		doc  fakeDoc
		set  *patterns.Set
	}{
		{"plugin body without map", fakeDoc{body: "<p>hello</p>"}, patterns.Plugin()},
		{"native script without map", fakeDoc{videos: 1, scripts: scriptsWith("var x = 1;")}, patterns.Native()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := ExtractBlob(tt.doc, tt.set, DefaultScriptIndex)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("ExtractBlob() error = %v, want ErrNotFound", err)
			}
			if blob != "" {
				t.Errorf("ExtractBlob() blob = %q on failure", blob)
			}
			if !strings.Contains(err.Error(), tt.set.Variant.String()) {
				t.Errorf("error %q should name the variant", err)
			}
		})
	}
}
