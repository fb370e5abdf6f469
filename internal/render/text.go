package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"github.com/geezee/YoutubeJS/internal/media"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Text writes a bordered table for the terminal.
type Text struct{}

func (Text) Render(w io.Writer, streams []media.Stream) error {
	rows := lo.Map(streams, func(s media.Stream, _ int) []string {
		return []string{strconv.Itoa(s.FormatID), s.Label(), s.URL}
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ITAG", "QUALITY", "LINK").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
