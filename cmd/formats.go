package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/geezee/YoutubeJS/internal/catalog"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the known itags and their quality labels",
	Args:  cobra.NoArgs,
	RunE:  formatsRun,
}

func formatsRun(cmd *cobra.Command, args []string) error {
	c := catalog.New()

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ITAG", "QUALITY")
	for _, id := range c.IDs() {
		label, _ := c.Lookup(id)
		t.Row(strconv.Itoa(id), label)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
