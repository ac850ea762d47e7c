// Package reportfile works with reports stored as YAML files, one field name per key.
package reportfile

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/export"
	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/summary"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var Group = &cobra.Group{
	ID:    "report",
	Title: "Report files",
}

var ErrInvalidReport = errors.NewSentinel("invalid report")

func init() {
	Summary.Flags().String("format", "md", "output format, md or pdf")
	Summary.Flags().String("out", "", "path to output file, stdout when empty")
	Summary.Flags().StringSlice("hide", nil, "highlight categories to leave out")
}

var Validate = &cobra.Command{
	Use:     "validate [report.yaml]",
	GroupID: "report",
	Short:   "Validate report",
	Long:    "Validates a report file the way the side-by-side form does on submit",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := Load(args[0])
		if err != nil {
			return err
		}
		errs := report.ValidateReport(r)
		if err = PrintErrors(cmd.OutOrStdout(), errs); err != nil {
			return err
		}
		if len(errs) > 0 {
			return errors.Wrap(ErrInvalidReport, "validate", slog.Int("errors", len(errs)))
		}
		return nil
	},
}

var Summary = &cobra.Command{
	Use:     "summary [report.yaml]",
	GroupID: "report",
	Short:   "Export summary",
	Long:    "Exports the summary of a report file as Markdown or PDF",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		format, err := flags.GetString("format")
		if err != nil {
			return errors.Wrap(err, "format flag")
		}
		outPath, err := flags.GetString("out")
		if err != nil {
			return errors.Wrap(err, "out flag")
		}
		hide, err := flags.GetStringSlice("hide")
		if err != nil {
			return errors.Wrap(err, "hide flag")
		}
		r, err := Load(args[0])
		if err != nil {
			return err
		}
		filters, err := hiddenFilters(hide)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outPath != "" {
			var file *os.File
			if file, err = os.Create(outPath); err != nil {
				return errors.Wrap(err, "create output file")
			}
			defer func() {
				_ = file.Close()
			}()
			out = file
		}
		return WriteSummary(out, format, summary.Render(r, filters, nil), time.Now())
	},
}

// Load reads a report file. Unknown field names are rejected.
func Load(path string) (report.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read report file", slog.String("path", path))
	}
	return Parse(data)
}

// Parse decodes a YAML mapping of field names to values.
func Parse(data []byte) (report.Report, error) {
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "decode report")
	}
	for name := range values {
		if _, err := report.ParseField(name); err != nil {
			return nil, err
		}
	}
	return report.New().Merge(values), nil
}

// WriteSummary exports view in the given format.
func WriteSummary(w io.Writer, format string, view summary.View, now time.Time) error {
	var err error
	switch format {
	case "md", "markdown":
		err = export.Markdown(w, view, now)
	case "pdf":
		err = export.PDF(w, view, now)
	default:
		return errors.New("unknown format", slog.String("format", format))
	}
	if err != nil {
		return errors.Wrap(err, "export summary", slog.String("format", format))
	}
	return nil
}

// PrintErrors lists the validation messages in field order.
func PrintErrors(w io.Writer, errs report.Errors) error {
	var b strings.Builder
	for _, f := range report.Fields() {
		if msg := errs.Get(f); msg != "" {
			fmt.Fprintf(&b, "%s: %s\n", f, msg)
		}
	}
	if len(errs) == 0 {
		b.WriteString("report is valid\n")
	}
	_, err := io.WriteString(w, b.String())
	return err //nolint:wrapcheck // the writer is the terminal.
}

func hiddenFilters(names []string) (summary.FilterSet, error) {
	var filters summary.FilterSet
	for _, name := range names {
		c, err := summary.ParseCategory(name)
		if err != nil {
			return filters, err
		}
		if filters.Active(c) {
			filters = filters.Toggle(c)
		}
	}
	return filters, nil
}
