// Package layout prints the form sections and the document regions they point to.
package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/myrjola/reportdesk/internal/report"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "layout",
	Title: "Form layout",
}

var Sections = &cobra.Command{
	Use:     "sections",
	GroupID: "layout",
	Short:   "List form sections",
	Long:    "Lists the form sections in order with their fields and document regions",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return PrintSections(cmd.OutOrStdout(), report.Sections())
	},
}

// PrintSections writes one block per section.
func PrintSections(w io.Writer, sections []report.Section) error {
	for _, s := range sections {
		v := s.Viewport()
		fields := make([]string, 0, len(s.Fields))
		for _, f := range s.Fields {
			fields = append(fields, string(f))
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n  region: top=%d left=%d width=%d height=%d zoom=%g\n  fields: %s\n",
			s.ID, s.Title, v.Top, v.Left, v.Width, v.Height, v.Zoom, strings.Join(fields, ", ")); err != nil {
			return err //nolint:wrapcheck // the writer is the terminal.
		}
	}
	return nil
}
