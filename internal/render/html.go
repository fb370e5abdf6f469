package render

import (
	"html/template"
	"io"

	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"

	"github.com/geezee/YoutubeJS/internal/media"
)

var pageTmpl = template.Must(template.New("page").Parse(`<html>
<head><title>{{.Title}}</title></head>
<body><table><tr><td><b>Quality</b></td><td><b>Link</b></td></tr>
{{- range .Rows}}
<tr><td>{{.Quality}}</td><td><a href="{{.URL}}" target="_blank">{{.Text}}...</a></td></tr>
{{- end}}
</table></body>
</html>
`))

// HTML writes a standalone page with one link per stream.
type HTML struct {
	Title     string
	LinkWidth int
}

type htmlRow struct {
	Quality string
	URL     string // filtered by html/template; unsafe schemes become #ZgotmplZ
	Text    string
}

func (h *HTML) Render(w io.Writer, streams []media.Stream) error {
	width := h.LinkWidth
	if width <= 0 {
		width = DefaultLinkWidth
	}

	rows := lo.Map(streams, func(s media.Stream, _ int) htmlRow {
		return htmlRow{
			Quality: s.Label(),
			URL:     s.URL,
			Text:    truncate.String(s.URL, uint(width)),
		}
	})

	return pageTmpl.Execute(w, struct {
		Title string
		Rows  []htmlRow
	}{h.Title, rows})
}
