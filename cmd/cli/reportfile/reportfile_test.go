package reportfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/myrjola/reportdesk/cmd/cli/reportfile"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/summary"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    report.Report
		wantErr error
	}{
		{
			name: "fields",
			data: "incidentDate: \"2024-01-01\"\nphone: (555) 123-4567\n",
			want: report.New().Set(report.IncidentDate, "2024-01-01").Set(report.Phone, "(555) 123-4567"),
		},
		{
			name:    "unknown field",
			data:    "nickname: Bob\n",
			wantErr: report.ErrUnknownField,
		},
		{
			name: "empty",
			data: "",
			want: report.New(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reportfile.Parse([]byte(tt.data))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Jane Roe\n"), 0o600))

	r, err := reportfile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "Jane Roe", r.Get(report.Name))

	_, err = reportfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestPrintErrors(t *testing.T) {
	var buf bytes.Buffer
	errs := report.Errors{report.Age: report.MsgAge, report.Phone: report.MsgPhone}
	require.NoError(t, reportfile.PrintErrors(&buf, errs))
	require.Equal(t, "phone: "+report.MsgPhone+"\nage: "+report.MsgAge+"\n", buf.String())

	buf.Reset()
	require.NoError(t, reportfile.PrintErrors(&buf, nil))
	require.Equal(t, "report is valid\n", buf.String())
}

func TestWriteSummary(t *testing.T) {
	view := summary.Render(report.New(), summary.FilterSet{}, nil)
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	var md bytes.Buffer
	require.NoError(t, reportfile.WriteSummary(&md, "md", view, now))
	require.Contains(t, md.String(), "# Police Report Summary")

	var pdf bytes.Buffer
	require.NoError(t, reportfile.WriteSummary(&pdf, "pdf", view, now))
	require.True(t, strings.HasPrefix(pdf.String(), "%PDF"))

	err := reportfile.WriteSummary(&bytes.Buffer{}, "docx", view, now)
	require.Error(t, err)
	require.False(t, errors.Is(err, reportfile.ErrInvalidReport))
}
